package repository

import (
	"time"

	"day-planner/internal/model"
)

// CreateTaskOptions holds parameters for inserting a manually created task.
// Time anchors are UTC instants, already validated upstream.
type CreateTaskOptions struct {
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
}

// ListWindowOptions bounds one UTC day window, half-open [Start, End).
type ListWindowOptions struct {
	WindowStart time.Time
	WindowEnd   time.Time
}

// UpdateTaskOptions carries the full post-merge state of a task. Every
// column is written; the use case owns the merge.
type UpdateTaskOptions struct {
	ID          string
	Title       string
	Note        *string
	StartAt     *time.Time
	EndAt       *time.Time
	DueAt       *time.Time
	Kind        model.TaskKind
	Status      model.TaskStatus
	EstimateMin *int
	Priority    *string
}
