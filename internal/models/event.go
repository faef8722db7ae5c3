package models

// Note event types published after successful mutations.
const (
	NoteEventCreated = "created"
	NoteEventUpdated = "updated"
	NoteEventDeleted = "deleted"
)

// NoteEvent is the audit record published to Kafka after a note mutation.
type NoteEvent struct {
	EventID   string `json:"event_id"`  // Unique event id
	Type      string `json:"type"`      // created, updated or deleted
	NoteID    int64  `json:"note_id"`   // Affected note
	OwnerID   int64  `json:"owner_id"`  // Note owner
	Timestamp int64  `json:"timestamp"` // Unix seconds
}
