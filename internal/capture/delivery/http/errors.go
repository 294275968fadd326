package http

import (
	"day-planner/internal/capture"
	"day-planner/pkg/response"
)

// mapError translates domain/use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case capture.ErrEmptyInput:
		return response.NewHTTPError(400, "capture text is empty")
	case capture.ErrExtractFailed:
		return response.NewHTTPError(502, "could not understand the input")
	case capture.ErrEntryCreate:
		return response.NewHTTPError(500, response.DefaultErrorMessage)
	default:
		return response.NewHTTPError(500, response.DefaultErrorMessage)
	}
}
