package postgre

import (
	"context"

	"github.com/google/uuid"

	repo "day-planner/internal/capture/repository"
	"day-planner/internal/model"
)

// CreateTask inserts one task produced by a capture and returns the created
// entity.
func (r *implRepository) CreateTask(ctx context.Context, sc model.Scope, opt repo.CreateTaskOptions) (model.Task, error) {
	const query = `
		INSERT INTO tasks (
			id, user_id, entry_id, title, note,
			start_at, end_at, due_at,
			kind, status, estimate_min, priority, source, confidence,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
		RETURNING id, user_id, entry_id, title, note,
			start_at, end_at, due_at,
			kind, status, estimate_min, priority, source, confidence,
			created_at, updated_at`

	var task model.Task
	err := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), sc.UserID, opt.EntryID, opt.Title, opt.Note,
		opt.StartAt, opt.EndAt, opt.DueAt,
		opt.Kind, opt.Status, opt.EstimateMin, opt.Priority, opt.Source, opt.Confidence,
	).Scan(
		&task.ID, &task.UserID, &task.EntryID, &task.Title, &task.Note,
		&task.StartAt, &task.EndAt, &task.DueAt,
		&task.Kind, &task.Status, &task.EstimateMin, &task.Priority, &task.Source, &task.Confidence,
		&task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return task, nil
}
