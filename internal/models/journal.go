package models

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry is one free-text reflection a user wrote for a program day.
type JournalEntry struct {
	ID        uuid.UUID `db:"id"`
	UserID    int64     `db:"user_id"`
	Day       int       `db:"day"`
	Prompt    string    `db:"prompt"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
