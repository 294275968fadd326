package extractor

import "context"

// IExtractor converts free-form capture text into the raw scheduling
// schema. Implemented by Client; mocked in use case tests.
type IExtractor interface {
	Extract(ctx context.Context, text, timezone, dayKey string) (RawSchema, error)
}
