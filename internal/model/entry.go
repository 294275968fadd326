package model

import "time"

// Entry is an immutable record of one capture submission (voice or text).
// It exists for traceability only; scheduling never reads it. Created once,
// never updated.
type Entry struct {
	ID         string
	UserID     string
	Source     TaskSource // voice or text
	Transcript string
	Lang       *string
	CreatedAt  time.Time
}
