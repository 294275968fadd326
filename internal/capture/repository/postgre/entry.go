package postgre

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	repo "day-planner/internal/capture/repository"
	"day-planner/internal/model"
)

// CreateEntry inserts a new immutable Entry row and returns the created
// entity.
func (r *implRepository) CreateEntry(ctx context.Context, sc model.Scope, opt repo.CreateEntryOptions) (model.Entry, error) {
	const query = `
		INSERT INTO entries (id, user_id, source, transcript, lang, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, user_id, source, transcript, lang, created_at`

	var entry model.Entry
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), sc.UserID, opt.Source, opt.Transcript, opt.Lang).Scan(
		&entry.ID, &entry.UserID, &entry.Source, &entry.Transcript, &entry.Lang, &entry.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEntry"), err)
		return model.Entry{}, repo.ErrFailedToInsert
	}
	return entry, nil
}

// GetOneEntry retrieves one Entry by ID, scoped to the owning user.
// Returns zero-value Entry (ID == "") when not found.
func (r *implRepository) GetOneEntry(ctx context.Context, sc model.Scope, id string) (model.Entry, error) {
	const query = `
		SELECT id, user_id, source, transcript, lang, created_at
		FROM entries
		WHERE id = $1 AND user_id = $2`

	var entry model.Entry
	err := r.db.QueryRowContext(ctx, query, id, sc.UserID).Scan(
		&entry.ID, &entry.UserID, &entry.Source, &entry.Transcript, &entry.Lang, &entry.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Entry{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneEntry"), err)
		return model.Entry{}, repo.ErrFailedToGet
	}
	return entry, nil
}
