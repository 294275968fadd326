package capture

import (
	"day-planner/internal/model"
	"day-planner/internal/schedule"
)

// CaptureInput is one capture submission (already transcribed when the
// source was voice).
type CaptureInput struct {
	Text     string
	Timezone string // IANA name; empty falls back to the configured default
	DayKey   string // optional reference-day override (YYYY-MM-DD)
	HadAudio bool
	Lang     string
}

// Normalized is the repaired, invariant-respecting form of one raw
// extracted task. SkipReason is non-empty when the item must not be
// persisted (and is reported back instead of being dropped silently).
type Normalized struct {
	Kind        model.TaskKind
	Title       string
	Note        *string
	Shape       schedule.TimeShape
	EstimateMin *int
	Priority    *string
	Confidence  *float64
	SkipReason  string
}

// SkippedItem reports an extracted item that could not be scheduled.
type SkippedItem struct {
	Title  string
	Reason string
}

// CaptureOutput is the result of a capture: the immutable entry, the tasks
// created under it, and anything the normalizer refused to persist.
type CaptureOutput struct {
	Entry   model.Entry
	Tasks   []model.Task
	Skipped []SkippedItem
	DayKey  string
}
