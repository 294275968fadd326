package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"day-planner/internal/model"
	repo "day-planner/internal/task/repository"
)

func scanTask(row interface{ Scan(...any) error }) (model.Task, error) {
	var task model.Task
	err := row.Scan(
		&task.ID, &task.UserID, &task.EntryID, &task.Title, &task.Note,
		&task.StartAt, &task.EndAt, &task.DueAt,
		&task.Kind, &task.Status, &task.EstimateMin, &task.Priority, &task.Source, &task.Confidence,
		&task.CreatedAt, &task.UpdatedAt,
	)
	return task, err
}

// CreateTask inserts a manually created task and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, sc model.Scope, opt repo.CreateTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		INSERT INTO tasks (
			id, user_id, title, note,
			start_at, end_at, due_at,
			kind, status, estimate_min, priority, source,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING %s`, taskColumns)

	task, err := scanTask(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), sc.UserID, opt.Title, opt.Note,
		opt.StartAt, opt.EndAt, opt.DueAt,
		opt.Kind, opt.Status, opt.EstimateMin, opt.Priority, opt.Source,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return task, nil
}

// GetOneTask retrieves one task by ID, scoped to the owning user.
// Returns zero-value Task (ID == "") when not found.
func (r *implRepository) GetOneTask(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE id = $1 AND user_id = $2`, taskColumns)

	task, err := scanTask(r.db.QueryRowContext(ctx, query, id, sc.UserID))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return task, nil
}

// ListTasksInWindow prefilters candidates for one UTC day window. The
// conditions are deliberately broader than the classification rules so no
// eligible row is missed; exact membership is decided in Go. The created_at
// arm carries no null guards: rows whose anchors match no timed rule (a task
// with start and due but no end) fall back to creation time, even when the
// anchors themselves lie outside the window.
func (r *implRepository) ListTasksInWindow(ctx context.Context, sc model.Scope, opt repo.ListWindowOptions) ([]model.Task, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM tasks
		WHERE user_id = $1
		  AND status <> 'deleted'
		  AND (
			(start_at IS NOT NULL AND start_at < $3 AND COALESCE(end_at, start_at) >= $2)
			OR (due_at IS NOT NULL AND due_at >= $2 AND due_at < $3)
			OR (created_at >= $2 AND created_at < $3)
		  )
		ORDER BY created_at ASC`, taskColumns)

	rows, err := r.db.QueryContext(ctx, query, sc.UserID, opt.WindowStart, opt.WindowEnd)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasksInWindow"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasksInWindow"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasksInWindow"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateTask writes the full post-merge state and returns the updated
// entity. Returns zero-value Task when not found.
func (r *implRepository) UpdateTask(ctx context.Context, sc model.Scope, opt repo.UpdateTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		UPDATE tasks
		SET title = $1, note = $2,
			start_at = $3, end_at = $4, due_at = $5,
			kind = $6, status = $7, estimate_min = $8, priority = $9,
			updated_at = NOW()
		WHERE id = $10 AND user_id = $11
		RETURNING %s`, taskColumns)

	task, err := scanTask(r.db.QueryRowContext(ctx, query,
		opt.Title, opt.Note,
		opt.StartAt, opt.EndAt, opt.DueAt,
		opt.Kind, opt.Status, opt.EstimateMin, opt.Priority,
		opt.ID, sc.UserID,
	))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return task, nil
}

// DeleteTask soft-deletes by status so history and day views of past
// captures stay reconstructable.
func (r *implRepository) DeleteTask(ctx context.Context, sc model.Scope, id string) error {
	const query = `
		UPDATE tasks
		SET status = 'deleted', updated_at = NOW()
		WHERE id = $1 AND user_id = $2`

	if _, err := r.db.ExecContext(ctx, query, id, sc.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
