package events

// Event type constants
const (
	EventTypeMatchStarted EventType = "match_started"
	EventTypeTurnPlayed   EventType = "turn_played"
	EventTypeMatchEnded   EventType = "match_ended"
)

// Priority levels for listener order
const (
	PriorityRecording = 100 // Collect or audit events before anything renders them
	PriorityRendering = 200 // Write events to an output
)
