package events_test

import (
	"errors"
	"testing"

	mockdice "github.com/KirkDiggler/duel/internal/dice/mock"
	"github.com/KirkDiggler/duel/internal/domain/duel"
	"github.com/KirkDiggler/duel/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus_TurnFlow(t *testing.T) {
	bus := events.NewBus()

	var seen []*duel.TurnEvent
	recorder := &testListener{
		id:       "recorder",
		priority: events.PriorityRecording,
		handler: func(e events.Event) error {
			if played, ok := e.(*events.TurnPlayedEvent); ok {
				seen = append(seen, played.Turn)
			}
			return nil
		},
	}
	bus.Subscribe(recorder, events.EventTypeTurnPlayed)

	turn := &duel.TurnEvent{Turn: 1, Actor: "Player", Target: "Computer", Action: duel.ActionAttackSmall, Amount: 20}
	require.NoError(t, bus.Emit(events.NewTurnPlayedEvent("match-1", turn)))

	// Not subscribed to match end
	require.NoError(t, bus.Emit(&events.MatchEndedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeMatchEnded, MatchID: "match-1"},
	}))

	require.Len(t, seen, 1)
	assert.Same(t, turn, seen[0])
}

func TestEventBus_Priority(t *testing.T) {
	bus := events.NewBus()

	// Track execution order
	var executionOrder []string
	track := func(name string, priority int) *testListener {
		return &testListener{
			id:       name,
			priority: priority,
			handler: func(e events.Event) error {
				executionOrder = append(executionOrder, name)
				return nil
			},
		}
	}

	// Subscribe out of order
	bus.Subscribe(track("low", 300), events.EventTypeTurnPlayed)
	bus.Subscribe(track("high", 100), events.EventTypeTurnPlayed)
	bus.Subscribe(track("medium", 200), events.EventTypeTurnPlayed)

	err := bus.Emit(events.NewTurnPlayedEvent("match-1", &duel.TurnEvent{}))
	require.NoError(t, err)

	// Lower priority number runs first
	assert.Equal(t, []string{"high", "medium", "low"}, executionOrder)
}

func TestEventBus_SubscribeMultipleTypes(t *testing.T) {
	bus := events.NewBus()

	var types []events.EventType
	listener := &testListener{
		id:       "all",
		priority: events.PriorityRendering,
		handler: func(e events.Event) error {
			types = append(types, e.GetType())
			return nil
		},
	}
	bus.Subscribe(listener, events.EventTypeMatchStarted, events.EventTypeTurnPlayed, events.EventTypeMatchEnded)

	require.NoError(t, bus.Emit(&events.MatchStartedEvent{BaseEvent: events.BaseEvent{Type: events.EventTypeMatchStarted}}))
	require.NoError(t, bus.Emit(events.NewTurnPlayedEvent("m", &duel.TurnEvent{})))
	require.NoError(t, bus.Emit(&events.MatchEndedEvent{BaseEvent: events.BaseEvent{Type: events.EventTypeMatchEnded}}))

	assert.Equal(t, []events.EventType{
		events.EventTypeMatchStarted,
		events.EventTypeTurnPlayed,
		events.EventTypeMatchEnded,
	}, types)
}

func TestEventBus_ListenerErrorStopsDelivery(t *testing.T) {
	bus := events.NewBus()

	var secondExecuted bool
	bus.Subscribe(&testListener{
		id:       "broken",
		priority: 100,
		handler:  func(events.Event) error { return errors.New("disk full") },
	}, events.EventTypeMatchEnded)
	bus.Subscribe(&testListener{
		id:       "second",
		priority: 200,
		handler: func(events.Event) error {
			secondExecuted = true
			return nil
		},
	}, events.EventTypeMatchEnded)

	err := bus.Emit(&events.MatchEndedEvent{BaseEvent: events.BaseEvent{Type: events.EventTypeMatchEnded}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "listener broken failed: disk full")
	assert.False(t, secondExecuted)
}

func TestEventBus_UnsubscribeAndClear(t *testing.T) {
	bus := events.NewBus()

	calls := 0
	listener := &testListener{
		id:       "counter",
		priority: 100,
		handler: func(events.Event) error {
			calls++
			return nil
		},
	}
	event := events.NewTurnPlayedEvent("m", &duel.TurnEvent{})

	bus.Subscribe(listener, events.EventTypeTurnPlayed)
	require.NoError(t, bus.Emit(event))

	bus.Unsubscribe(events.EventTypeTurnPlayed, "counter")
	require.NoError(t, bus.Emit(event))

	bus.Subscribe(listener, events.EventTypeTurnPlayed)
	bus.Clear()
	require.NoError(t, bus.Emit(event))

	assert.Equal(t, 1, calls)
}

func TestEventBus_UnsubscribeKeepsEqualPriorityOrder(t *testing.T) {
	bus := events.NewBus()

	var order []string
	for _, name := range []string{"a", "b", "c", "d"} {
		name := name
		bus.Subscribe(&testListener{
			id:       name,
			priority: 100,
			handler: func(events.Event) error {
				order = append(order, name)
				return nil
			},
		}, events.EventTypeTurnPlayed)
	}

	bus.Unsubscribe(events.EventTypeTurnPlayed, "a")
	require.NoError(t, bus.Emit(events.NewTurnPlayedEvent("m", &duel.TurnEvent{})))

	assert.Equal(t, []string{"b", "c", "d"}, order)
}

func TestNewMatchEndedEvent(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	player, err := duel.NewPlayer("Player", 10, nil, roller)
	require.NoError(t, err)
	computer, err := duel.NewComputer("Computer", 10, nil, roller)
	require.NoError(t, err)
	computer.HP = 0

	match, err := duel.NewMatch(&duel.MatchConfig{ID: "match-7", Player: player, Computer: computer, Roller: roller})
	require.NoError(t, err)

	started := events.NewMatchStartedEvent(match)
	assert.Equal(t, events.EventTypeMatchStarted, started.GetType())
	assert.Equal(t, duel.Standing{Name: "Player", HP: 10, MaxHP: 10}, started.Player)

	ended := events.NewMatchEndedEvent(match)
	assert.Equal(t, "match-7", ended.GetMatchID())
	assert.Equal(t, "Player", ended.Winner)
	assert.Equal(t, "Computer", ended.Loser)
}

// Test helper: simple event listener
type testListener struct {
	id       string
	priority int
	handler  func(events.Event) error
}

func (l *testListener) ID() string                       { return l.id }
func (l *testListener) Priority() int                    { return l.priority }
func (l *testListener) HandleEvent(e events.Event) error { return l.handler(e) }
