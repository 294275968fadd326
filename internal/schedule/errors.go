package schedule

import "errors"

// Validation failures surfaced to the caller as a rejected create/edit.
var (
	ErrEventRequiresRange      = errors.New("events require both start and end times")
	ErrEventCannotHaveDeadline = errors.New("events cannot have due dates")
	ErrEndRequiresStart        = errors.New("end time cannot be set without a start time")
	ErrInvalidRange            = errors.New("end time cannot be before start time")
)
