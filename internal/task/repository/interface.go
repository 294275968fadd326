package repository

import (
	"context"

	"day-planner/internal/model"
)

// Repository defines all data access methods for the Task entity.
type Repository interface {
	CreateTask(ctx context.Context, sc model.Scope, opt CreateTaskOptions) (model.Task, error)

	// GetOneTask returns the zero value (ID == "") when not found.
	GetOneTask(ctx context.Context, sc model.Scope, id string) (model.Task, error)

	// ListTasksInWindow returns every live task that could belong to the
	// given UTC window: any time anchor touching it, or no anchors and a
	// creation time inside it. Callers classify the rows precisely.
	ListTasksInWindow(ctx context.Context, sc model.Scope, opt ListWindowOptions) ([]model.Task, error)

	UpdateTask(ctx context.Context, sc model.Scope, opt UpdateTaskOptions) (model.Task, error)

	// DeleteTask marks the task deleted. Rows are never removed.
	DeleteTask(ctx context.Context, sc model.Scope, id string) error
}
