// Package text renders match events as plain text lines.
package text

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/KirkDiggler/duel/internal/domain/duel"
	"github.com/KirkDiggler/duel/internal/events"
)

const rendererID = "text-renderer"

type printfFunc func(w io.Writer, format string, args ...any) (int, error)

// Renderer writes match events to an output
type Renderer struct {
	printf         printfFunc
	out            io.Writer
	boostThreshold int
}

// RendererConfig holds configuration for the renderer
type RendererConfig struct {
	Output io.Writer
	// Language enables locale number formatting (1,500 in English).
	// Unset prints plain digits.
	Language language.Tag
	// Rules supplies the urgent heal threshold quoted in boost notices
	Rules *duel.Rules
}

// NewRenderer creates a renderer
func NewRenderer(cfg *RendererConfig) *Renderer {
	if cfg.Output == nil {
		panic("output is required")
	}

	printf := printfFunc(fmt.Fprintf)
	if cfg.Language != language.Und {
		p := message.NewPrinter(cfg.Language)
		printf = func(w io.Writer, format string, args ...any) (int, error) {
			return p.Fprintf(w, format, args...)
		}
	}

	rules := cfg.Rules
	if rules == nil {
		rules = duel.DefaultRules()
	}

	return &Renderer{
		printf:         printf,
		out:            cfg.Output,
		boostThreshold: rules.UrgentHeal.ThresholdPercent,
	}
}

// Attach subscribes the renderer to every match event on bus
func (r *Renderer) Attach(bus *events.Bus) {
	bus.Subscribe(r, events.EventTypeMatchStarted, events.EventTypeTurnPlayed, events.EventTypeMatchEnded)
}

func (r *Renderer) ID() string    { return rendererID }
func (r *Renderer) Priority() int { return events.PriorityRendering }

// HandleEvent implements events.EventListener
func (r *Renderer) HandleEvent(event events.Event) error {
	switch e := event.(type) {
	case *events.MatchStartedEvent:
		// The match header is only interesting in logs
		return nil
	case *events.TurnPlayedEvent:
		return r.renderTurn(e.Turn)
	case *events.MatchEndedEvent:
		_, err := r.printf(r.out, "Game over!\n")
		return err
	default:
		return fmt.Errorf("unsupported event type %s", event.GetType())
	}
}

func (r *Renderer) renderTurn(turn *duel.TurnEvent) error {
	if turn.Boosted {
		if _, err := r.printf(r.out, "%s HP below %d%%, increased chances to heal\n",
			turn.Actor, r.boostThreshold); err != nil {
			return err
		}
	}

	if _, err := r.printf(r.out, "%s decided to %s with %d points.\n",
		turn.Actor, turn.Action.Description(), turn.Amount); err != nil {
		return err
	}

	for _, standing := range turn.Standings {
		if _, err := r.printf(r.out, "%s: %d HP\n", standing.Name, standing.HP); err != nil {
			return err
		}
	}

	return nil
}

