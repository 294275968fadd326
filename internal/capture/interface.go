package capture

import (
	"context"

	"day-planner/internal/model"
)

// UseCase defines the business logic interface for the capture domain.
type UseCase interface {
	// Capture extracts tasks from free-form text, normalizes them into
	// valid time shapes, and persists the entry with its tasks.
	Capture(ctx context.Context, sc model.Scope, input CaptureInput) (CaptureOutput, error)
}
