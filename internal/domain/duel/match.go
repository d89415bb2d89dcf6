package duel

import (
	"fmt"

	"github.com/KirkDiggler/duel/internal/dice"
	duelerr "github.com/KirkDiggler/duel/internal/errors"
)

// MatchStatus represents the current state of a match
type MatchStatus string

const (
	MatchStatusRunning  MatchStatus = "running"  // Both combatants still standing
	MatchStatusFinished MatchStatus = "finished" // One combatant reached 0 hp
)

// Action is what an actor does on its turn
type Action string

const (
	ActionAttackSmall Action = "attack_small"
	ActionAttackLarge Action = "attack_large"
	ActionHeal        Action = "heal"
)

// actions is the uniform pool a turn picks from
var actions = []Action{ActionAttackSmall, ActionAttackLarge, ActionHeal}

// Description is the phrase used when reporting the action
func (a Action) Description() string {
	switch a {
	case ActionAttackSmall:
		return "attack in small range"
	case ActionAttackLarge:
		return "attack in large range"
	case ActionHeal:
		return "heal"
	default:
		return string(a)
	}
}

// Standing is a combatant's hp after a turn
type Standing struct {
	Name  string `json:"name"`
	HP    int    `json:"hp"`
	MaxHP int    `json:"max_hp"`
}

// TurnEvent records one resolved turn
type TurnEvent struct {
	Turn   int    `json:"turn"`
	Actor  string `json:"actor"`
	Target string `json:"target"`
	Action Action `json:"action"`
	Amount int    `json:"amount"`

	// Set only for heals
	HealRange *Range `json:"heal_range,omitempty"`
	Boosted   bool   `json:"boosted,omitempty"`

	// Player first, computer second
	Standings []Standing `json:"standings"`
}

// Match owns two combatants and plays turns until one of them drops
type Match struct {
	ID       string      `json:"id"`
	Player   *Combatant  `json:"player"`
	Computer *Combatant  `json:"computer"`
	Status   MatchStatus `json:"status"`
	Turn     int         `json:"turn"` // Turns played so far

	roller dice.Roller
}

// MatchConfig holds everything needed to create a match
type MatchConfig struct {
	ID       string
	Player   *Combatant
	Computer *Combatant
	Roller   dice.Roller
}

// NewMatch creates a running match
func NewMatch(cfg *MatchConfig) (*Match, error) {
	if cfg == nil {
		return nil, duelerr.InvalidArgument("match config is required")
	}
	if cfg.Player == nil || cfg.Computer == nil {
		return nil, duelerr.InvalidArgument("match needs two combatants")
	}
	if cfg.Player == cfg.Computer {
		return nil, duelerr.InvalidArgument("a combatant cannot fight itself")
	}
	if cfg.Roller == nil {
		return nil, duelerr.InvalidArgument("roller is required")
	}

	m := &Match{
		ID:       cfg.ID,
		Player:   cfg.Player,
		Computer: cfg.Computer,
		Status:   MatchStatusRunning,
		roller:   cfg.Roller,
	}
	m.checkEnd()

	return m, nil
}

// IsFinished reports whether the match is over
func (m *Match) IsFinished() bool {
	return m.Status == MatchStatusFinished
}

// Winner returns the combatant still standing, or nil while running
func (m *Match) Winner() *Combatant {
	if !m.IsFinished() {
		return nil
	}
	if m.Player.IsAlive() {
		return m.Player
	}
	if m.Computer.IsAlive() {
		return m.Computer
	}
	return nil
}

// Loser returns the combatant at 0 hp, or nil while running
func (m *Match) Loser() *Combatant {
	if !m.IsFinished() {
		return nil
	}
	if !m.Player.IsAlive() {
		return m.Player
	}
	return m.Computer
}

// PlayTurn orders the combatants, picks an action and resolves it
func (m *Match) PlayTurn() (*TurnEvent, error) {
	if m.IsFinished() {
		return nil, duelerr.InvalidArgument("match is already finished").
			WithMeta("match_id", m.ID)
	}

	actor, opponent, err := m.rollOrder()
	if err != nil {
		return nil, err
	}

	idx, err := dice.Pick(m.roller, len(actions))
	if err != nil {
		return nil, duelerr.WrapWithCode(err, duelerr.CodeInternal, "failed to pick action")
	}
	action := actions[idx]

	event := &TurnEvent{
		Turn:   m.Turn + 1,
		Actor:  actor.Name,
		Action: action,
	}

	switch action {
	case ActionAttackSmall:
		event.Target = opponent.Name
		event.Amount, err = actor.AttackSmall(opponent)
	case ActionAttackLarge:
		event.Target = opponent.Name
		event.Amount, err = actor.AttackLarge(opponent)
	case ActionHeal:
		var healed *HealResult
		event.Target = actor.Name
		healed, err = actor.Heal()
		if err == nil {
			event.Amount = healed.Amount
			event.HealRange = &healed.Range
			event.Boosted = healed.Boosted
		}
	}
	if err != nil {
		return nil, duelerr.Wrapf(err, "turn %d", event.Turn)
	}

	m.Turn = event.Turn
	event.Standings = m.standings()
	m.checkEnd()

	return event, nil
}

// Play runs turns until the match is finished and returns them in order
func (m *Match) Play() ([]*TurnEvent, error) {
	var turns []*TurnEvent
	for !m.IsFinished() {
		event, err := m.PlayTurn()
		if err != nil {
			return turns, err
		}
		turns = append(turns, event)
	}
	return turns, nil
}

func (m *Match) String() string {
	return fmt.Sprintf("match %s [%s] turn %d: %s %d/%d, %s %d/%d", m.ID, m.Status, m.Turn,
		m.Player.Name, m.Player.HP, m.Player.MaxHP,
		m.Computer.Name, m.Computer.HP, m.Computer.MaxHP)
}

// rollOrder returns (actor, opponent), freshly randomized every turn
func (m *Match) rollOrder() (*Combatant, *Combatant, error) {
	first, err := dice.Pick(m.roller, 2)
	if err != nil {
		return nil, nil, duelerr.WrapWithCode(err, duelerr.CodeInternal, "failed to roll turn order")
	}
	if first == 0 {
		return m.Player, m.Computer, nil
	}
	return m.Computer, m.Player, nil
}

func (m *Match) standings() []Standing {
	return []Standing{
		{Name: m.Player.Name, HP: m.Player.HP, MaxHP: m.Player.MaxHP},
		{Name: m.Computer.Name, HP: m.Computer.HP, MaxHP: m.Computer.MaxHP},
	}
}

func (m *Match) checkEnd() {
	if !m.Player.IsAlive() || !m.Computer.IsAlive() {
		m.Status = MatchStatusFinished
	}
}
