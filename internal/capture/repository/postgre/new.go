package postgre

import (
	"database/sql"
	"fmt"

	"day-planner/internal/capture/repository"
	"day-planner/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the capture domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("capture/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("capture/repository/postgre.%s", method)
}
