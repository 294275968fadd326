package repository

import (
	"time"

	"day-planner/internal/model"
)

// CreateEntryOptions holds parameters for inserting a new Entry.
type CreateEntryOptions struct {
	Source     model.TaskSource
	Transcript string
	Lang       *string
}

// CreateTaskOptions holds parameters for inserting a task captured under an
// entry. Time anchors are UTC instants, already validated upstream.
type CreateTaskOptions struct {
	EntryID     *string
	Title       string
	Note        *string
	StartAt     *time.Time
	EndAt       *time.Time
	DueAt       *time.Time
	Kind        model.TaskKind
	Status      model.TaskStatus
	EstimateMin *int
	Priority    *string
	Source      model.TaskSource
	Confidence  *float64
}
