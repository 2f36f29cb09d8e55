package core

import "fmt"

// EventType represents the type of change in the vault.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a note observed in the store.
type Event struct {
	Type      EventType
	ID        string
	Timestamp int64 // Unix timestamp
}

// String renders the event for logs and event-stream consumers.
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.ID)
}
