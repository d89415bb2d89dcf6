package events

// EventType represents the type of match event
type EventType string

// Event is the base interface for all match events
type Event interface {
	GetType() EventType
	GetMatchID() string
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type    EventType
	MatchID string
}

func (e *BaseEvent) GetType() EventType { return e.Type }
func (e *BaseEvent) GetMatchID() string { return e.MatchID }
