package models

import "time"

// NoteDB represents a note record in the database
type NoteDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	Title     string    `json:"title" db:"title"`           // Note title
	Content   string    `json:"content" db:"content"`       // Note body
	OwnerID   int64     `json:"owner_id" db:"owner_id"`     // Owning user, FK users.id
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
