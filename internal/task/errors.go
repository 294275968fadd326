package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidTime     = errors.New("invalid time value")
	ErrInvalidTimezone = errors.New("invalid timezone")
	ErrInvalidDayKey   = errors.New("invalid day key")
)
