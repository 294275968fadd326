package task

import (
	"context"

	"day-planner/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// DayView resolves one local calendar day to a UTC window and classifies
	// every live item against it.
	DayView(ctx context.Context, sc model.Scope, input DayViewInput) (DayViewOutput, error)
}
