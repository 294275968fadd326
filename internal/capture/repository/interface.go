package repository

import (
	"context"

	"day-planner/internal/model"
)

// Repository is the composed interface for the capture domain data store.
type Repository interface {
	EntryRepository
	TaskRepository
}

// EntryRepository defines data access methods for the immutable Entry record.
type EntryRepository interface {
	CreateEntry(ctx context.Context, sc model.Scope, opt CreateEntryOptions) (model.Entry, error)
	GetOneEntry(ctx context.Context, sc model.Scope, id string) (model.Entry, error)
}

// TaskRepository defines the insert path for tasks created from a capture.
type TaskRepository interface {
	CreateTask(ctx context.Context, sc model.Scope, opt CreateTaskOptions) (model.Task, error)
}
