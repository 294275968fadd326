package postgre

import (
	"database/sql"
	"fmt"

	"day-planner/internal/task/repository"
	"day-planner/pkg/log"
)

const taskColumns = `id, user_id, entry_id, title, note,
	start_at, end_at, due_at,
	kind, status, estimate_min, priority, source, confidence,
	created_at, updated_at`

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the task domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/postgre.%s", method)
}
