package events

import (
	"github.com/KirkDiggler/duel/internal/domain/duel"
)

// MatchStartedEvent is emitted once, before the first turn
type MatchStartedEvent struct {
	BaseEvent
	Player   duel.Standing
	Computer duel.Standing
}

// TurnPlayedEvent is emitted after every resolved turn
type TurnPlayedEvent struct {
	BaseEvent
	Turn *duel.TurnEvent
}

// MatchEndedEvent is emitted once, after the turn that finished the match
type MatchEndedEvent struct {
	BaseEvent
	Turns  int
	Winner string
	Loser  string
}

// NewMatchStartedEvent describes a match before play
func NewMatchStartedEvent(m *duel.Match) *MatchStartedEvent {
	return &MatchStartedEvent{
		BaseEvent: BaseEvent{Type: EventTypeMatchStarted, MatchID: m.ID},
		Player:    duel.Standing{Name: m.Player.Name, HP: m.Player.HP, MaxHP: m.Player.MaxHP},
		Computer:  duel.Standing{Name: m.Computer.Name, HP: m.Computer.HP, MaxHP: m.Computer.MaxHP},
	}
}

// NewTurnPlayedEvent wraps a resolved turn
func NewTurnPlayedEvent(matchID string, turn *duel.TurnEvent) *TurnPlayedEvent {
	return &TurnPlayedEvent{
		BaseEvent: BaseEvent{Type: EventTypeTurnPlayed, MatchID: matchID},
		Turn:      turn,
	}
}

// NewMatchEndedEvent summarizes a finished match
func NewMatchEndedEvent(m *duel.Match) *MatchEndedEvent {
	event := &MatchEndedEvent{
		BaseEvent: BaseEvent{Type: EventTypeMatchEnded, MatchID: m.ID},
		Turns:     m.Turn,
	}
	if winner := m.Winner(); winner != nil {
		event.Winner = winner.Name
	}
	if loser := m.Loser(); loser != nil {
		event.Loser = loser.Name
	}
	return event
}
