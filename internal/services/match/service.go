package match

import (
	"context"
	"log"

	"github.com/KirkDiggler/duel/internal/dice"
	"github.com/KirkDiggler/duel/internal/domain/duel"
	duelerr "github.com/KirkDiggler/duel/internal/errors"
	"github.com/KirkDiggler/duel/internal/events"
	"github.com/KirkDiggler/duel/internal/uuid"
)

const (
	defaultPlayerName   = "Player"
	defaultComputerName = "Computer"
)

// Service defines the match service interface
type Service interface {
	// Run plays a full match and publishes every event on the bus
	Run(ctx context.Context, input *RunInput) (*RunResult, error)
}

// RunInput contains data for starting a match
type RunInput struct {
	MaxHP        int
	Rules        *duel.Rules // nil uses duel.DefaultRules
	PlayerName   string      // defaults to "Player"
	ComputerName string      // defaults to "Computer"
}

// RunResult is a finished match and every turn it took
type RunResult struct {
	Match  *duel.Match
	Turns  []*duel.TurnEvent
	Winner string
	Loser  string
}

type service struct {
	roller        dice.Roller
	eventBus      *events.Bus
	uuidGenerator uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Roller        dice.Roller
	EventBus      *events.Bus
	UUIDGenerator uuid.Generator
}

// NewService creates a new match service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Roller == nil {
		panic("roller is required")
	}

	svc := &service{
		roller:   cfg.Roller,
		eventBus: cfg.EventBus,
	}

	if svc.eventBus == nil {
		svc.eventBus = events.NewBus()
	}

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

// Run plays a full match
func (s *service) Run(ctx context.Context, input *RunInput) (*RunResult, error) {
	if input == nil {
		return nil, duelerr.InvalidArgument("input is required")
	}
	if input.MaxHP < 1 || input.MaxHP > duel.MaxHPLimit {
		return nil, duelerr.Validationf("max hp must be within [1,%d], got %d", duel.MaxHPLimit, input.MaxHP).
			WithMeta("max_hp", input.MaxHP)
	}

	rules := input.Rules
	if rules == nil {
		rules = duel.DefaultRules()
	}
	if err := rules.Validate(); err != nil {
		return nil, duelerr.Wrap(err, "invalid rules")
	}

	m, err := s.newMatch(input, rules)
	if err != nil {
		return nil, err
	}

	log.Printf("Starting match %s: %s vs %s at %d hp", m.ID, m.Player.Name, m.Computer.Name, input.MaxHP)

	if err := s.eventBus.Emit(events.NewMatchStartedEvent(m)); err != nil {
		return nil, duelerr.Wrap(err, "failed to publish match start")
	}

	result := &RunResult{Match: m}
	for !m.IsFinished() {
		if err := ctx.Err(); err != nil {
			return result, duelerr.Wrapf(err, "match %s interrupted after %d turns", m.ID, m.Turn)
		}

		turn, err := m.PlayTurn()
		if err != nil {
			return result, duelerr.Wrapf(err, "match %s", m.ID)
		}
		result.Turns = append(result.Turns, turn)

		if err := s.eventBus.Emit(events.NewTurnPlayedEvent(m.ID, turn)); err != nil {
			return result, duelerr.Wrapf(err, "failed to publish turn %d", turn.Turn)
		}
	}

	ended := events.NewMatchEndedEvent(m)
	result.Winner = ended.Winner
	result.Loser = ended.Loser

	log.Printf("Match %s finished after %d turns, winner %s", m.ID, m.Turn, result.Winner)

	if err := s.eventBus.Emit(ended); err != nil {
		return result, duelerr.Wrap(err, "failed to publish match end")
	}

	return result, nil
}

func (s *service) newMatch(input *RunInput, rules *duel.Rules) (*duel.Match, error) {
	playerName := input.PlayerName
	if playerName == "" {
		playerName = defaultPlayerName
	}
	computerName := input.ComputerName
	if computerName == "" {
		computerName = defaultComputerName
	}
	if playerName == computerName {
		return nil, duelerr.Validationf("combatant names must differ, both are %q", playerName)
	}

	player, err := duel.NewPlayer(playerName, input.MaxHP, rules, s.roller)
	if err != nil {
		return nil, duelerr.Wrap(err, "failed to create player")
	}

	computer, err := duel.NewComputer(computerName, input.MaxHP, rules, s.roller)
	if err != nil {
		return nil, duelerr.Wrap(err, "failed to create computer")
	}

	m, err := duel.NewMatch(&duel.MatchConfig{
		ID:       s.uuidGenerator.New(),
		Player:   player,
		Computer: computer,
		Roller:   s.roller,
	})
	if err != nil {
		return nil, duelerr.Wrap(err, "failed to create match")
	}

	return m, nil
}
