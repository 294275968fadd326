package capture

import "errors"

// Domain-specific errors for the capture package.
var (
	ErrEmptyInput    = errors.New("capture text is empty")
	ErrExtractFailed = errors.New("extraction failed")
	ErrEntryCreate   = errors.New("failed to create entry")
)
