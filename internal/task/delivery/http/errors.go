package http

import (
	"errors"

	"day-planner/internal/schedule"
	"day-planner/internal/task"
	"day-planner/pkg/response"
)

// mapError translates domain/use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return response.NewHTTPError(404, "task not found")
	case errors.Is(err, task.ErrTitleRequired),
		errors.Is(err, task.ErrInvalidStatus),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrInvalidTime),
		errors.Is(err, task.ErrInvalidTimezone),
		errors.Is(err, task.ErrInvalidDayKey),
		errors.Is(err, schedule.ErrEventRequiresRange),
		errors.Is(err, schedule.ErrEventCannotHaveDeadline),
		errors.Is(err, schedule.ErrEndRequiresStart),
		errors.Is(err, schedule.ErrInvalidRange):
		return response.NewHTTPError(400, err.Error())
	default:
		return response.NewHTTPError(500, response.DefaultErrorMessage)
	}
}
