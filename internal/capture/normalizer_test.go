package capture_test

import (
	"testing"
	"time"

	"day-planner/internal/capture"
	"day-planner/internal/model"
	"day-planner/internal/schedule"
	"day-planner/pkg/extractor"
	"day-planner/pkg/tz"
)

const refDay = "2024-05-10"

func tokyoConverter(t *testing.T) *tz.Converter {
	t.Helper()
	c, err := tz.NewConverter("Asia/Tokyo")
	if err != nil {
		t.Fatalf("NewConverter: %v", err)
	}
	return c
}

func num(v float64) extractor.FlexNumber {
	return extractor.FlexNumber{Value: v, Known: true}
}

// End-of-day default: 2024-05-10T23:59+09:00 == 2024-05-10T14:59Z.
var tokyoEndOfDay = time.Date(2024, 5, 10, 14, 59, 0, 0, time.UTC)

func TestNormalizeTaskDefaults(t *testing.T) {
	conv := tokyoConverter(t)

	tests := []struct {
		name string
		time extractor.RawTime
	}{
		{name: "Type none", time: extractor.RawTime{Type: "none"}},
		{name: "Unknown type", time: extractor.RawTime{Type: "someday"}},
		{name: "Deadline with empty due", time: extractor.RawTime{Type: "deadline"}},
		{name: "Deadline with garbled due", time: extractor.RawTime{Type: "deadline", DueLocal: "whenever"}},
		{name: "Range with only an end", time: extractor.RawTime{Type: "range", EndLocal: "2024-05-10T15:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := capture.Normalize(extractor.RawTask{Kind: "task", Title: "do thing", Time: tt.time}, refDay, conv)
			if got.SkipReason != "" {
				t.Fatalf("unexpected skip: %q", got.SkipReason)
			}
			if got.Shape.Type() != schedule.ShapeDeadline {
				t.Fatalf("shape = %q, want deadline", got.Shape.Type())
			}
			if !got.Shape.Due.Equal(tokyoEndOfDay) {
				t.Errorf("due = %v, want %v", got.Shape.Due, tokyoEndOfDay)
			}
		})
	}
}

func TestNormalizeTaskRange(t *testing.T) {
	conv := tokyoConverter(t)

	t.Run("Start only", func(t *testing.T) {
		got := capture.Normalize(extractor.RawTask{
			Kind:  "task",
			Title: "deep work",
			Time:  extractor.RawTime{Type: "range", StartLocal: "2024-05-10T14:00"},
		}, refDay, conv)
		if got.Shape.Type() != schedule.ShapeRange || got.Shape.End != nil {
			t.Fatalf("want start-only range, got %+v", got.Shape)
		}
		want := time.Date(2024, 5, 10, 5, 0, 0, 0, time.UTC)
		if !got.Shape.Start.Equal(want) {
			t.Errorf("start = %v, want %v", got.Shape.Start, want)
		}
	})

	t.Run("Inverted end is dropped", func(t *testing.T) {
		got := capture.Normalize(extractor.RawTask{
			Kind:  "task",
			Title: "deep work",
			Time:  extractor.RawTime{Type: "range", StartLocal: "2024-05-10T15:00", EndLocal: "2024-05-10T14:00"},
		}, refDay, conv)
		if got.Shape.Start == nil || got.Shape.End != nil {
			t.Errorf("inverted end should be dropped, got %+v", got.Shape)
		}
	})

	t.Run("Full range kept", func(t *testing.T) {
		got := capture.Normalize(extractor.RawTask{
			Kind:  "task",
			Title: "deep work",
			Time:  extractor.RawTime{Type: "range", StartLocal: "2024-05-10T14:00", EndLocal: "2024-05-10T15:30"},
		}, refDay, conv)
		if got.Shape.Start == nil || got.Shape.End == nil {
			t.Fatalf("want full range, got %+v", got.Shape)
		}
	})
}

func TestNormalizeEvent(t *testing.T) {
	conv := tokyoConverter(t)

	t.Run("Valid range", func(t *testing.T) {
		got := capture.Normalize(extractor.RawTask{
			Kind:  "event",
			Title: "standup",
			Time:  extractor.RawTime{Type: "range", StartLocal: "2024-05-10T09:30", EndLocal: "2024-05-10T09:45"},
		}, refDay, conv)
		if got.SkipReason != "" {
			t.Fatalf("unexpected skip: %q", got.SkipReason)
		}
		if got.Kind != model.KindEvent || got.Shape.Type() != schedule.ShapeRange {
			t.Errorf("got kind=%v shape=%v", got.Kind, got.Shape.Type())
		}
	})

	t.Run("Missing end is reported, not persisted", func(t *testing.T) {
		got := capture.Normalize(extractor.RawTask{
			Kind:  "event",
			Title: "standup",
			Time:  extractor.RawTime{Type: "range", StartLocal: "2024-05-10T09:30"},
		}, refDay, conv)
		if got.SkipReason == "" {
			t.Fatal("expected a skip reason for an event without an end")
		}
	})

	t.Run("Estimate never set on events", func(t *testing.T) {
		got := capture.Normalize(extractor.RawTask{
			Kind:        "event",
			Title:       "standup",
			Time:        extractor.RawTime{Type: "range", StartLocal: "2024-05-10T09:30", EndLocal: "2024-05-10T10:00"},
			EstimateMin: num(30),
		}, refDay, conv)
		if got.EstimateMin != nil {
			t.Errorf("estimate = %v, want nil", *got.EstimateMin)
		}
	})
}

func TestNormalizeKindCoercion(t *testing.T) {
	conv := tokyoConverter(t)

	for _, raw := range []string{"", "task", "EVENT", "meeting", "reminder"} {
		got := capture.Normalize(extractor.RawTask{Kind: raw, Title: "x", Time: extractor.RawTime{Type: "none"}}, refDay, conv)
		if got.Kind != model.KindTask {
			t.Errorf("kind %q coerced to %q, want task", raw, got.Kind)
		}
	}
}

func TestNormalizeEstimateRounding(t *testing.T) {
	conv := tokyoConverter(t)

	tests := []struct {
		name  string
		raw   extractor.FlexNumber
		want  int
		unset bool
	}{
		{name: "Exact multiple", raw: num(25), want: 25},
		{name: "Rounds up", raw: num(23), want: 25},
		{name: "Rounds down", raw: num(26), want: 25},
		{name: "Floor of five", raw: num(2), want: 5},
		{name: "Zero dropped", raw: num(0), unset: true},
		{name: "Negative dropped", raw: num(-10), unset: true},
		{name: "Unknown dropped", raw: extractor.FlexNumber{}, unset: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := capture.Normalize(extractor.RawTask{
				Kind:        "task",
				Title:       "x",
				Time:        extractor.RawTime{Type: "none"},
				EstimateMin: tt.raw,
			}, refDay, conv)
			if tt.unset {
				if got.EstimateMin != nil {
					t.Errorf("estimate = %v, want nil", *got.EstimateMin)
				}
				return
			}
			if got.EstimateMin == nil || *got.EstimateMin != tt.want {
				t.Errorf("estimate = %v, want %d", got.EstimateMin, tt.want)
			}
		})
	}
}

func TestNormalizeTimeOfDayPhrases(t *testing.T) {
	conv := tokyoConverter(t)

	tests := []struct {
		name  string
		local string
		want  time.Time // UTC
	}{
		{name: "Morning", local: "morning", want: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)},
		{name: "Noon", local: "noon", want: time.Date(2024, 5, 10, 3, 0, 0, 0, time.UTC)},
		{name: "Evening", local: "evening", want: time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)},
		{name: "Night", local: "night", want: time.Date(2024, 5, 10, 11, 0, 0, 0, time.UTC)},
		{name: "Date plus phrase", local: "2024-05-12Tevening", want: time.Date(2024, 5, 12, 8, 0, 0, 0, time.UTC)},
		{name: "Bare clock", local: "14:00", want: time.Date(2024, 5, 10, 5, 0, 0, 0, time.UTC)},
		{name: "Single digit clock", local: "9:30", want: time.Date(2024, 5, 10, 0, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := capture.Normalize(extractor.RawTask{
				Kind:  "task",
				Title: "x",
				Time:  extractor.RawTime{Type: "range", StartLocal: tt.local},
			}, refDay, conv)
			if got.Shape.Start == nil {
				t.Fatalf("start not resolved for %q", tt.local)
			}
			if !got.Shape.Start.Equal(tt.want) {
				t.Errorf("start = %v, want %v", got.Shape.Start, tt.want)
			}
		})
	}
}

func TestNormalizeMetadata(t *testing.T) {
	conv := tokyoConverter(t)

	got := capture.Normalize(extractor.RawTask{
		Kind:       "task",
		Title:      "  trim me  ",
		Note:       "a note",
		Time:       extractor.RawTime{Type: "none"},
		Priority:   "high",
		Confidence: num(1.7),
	}, refDay, conv)

	if got.Title != "trim me" {
		t.Errorf("title = %q", got.Title)
	}
	if got.Note == nil || *got.Note != "a note" {
		t.Errorf("note = %v", got.Note)
	}
	if got.Priority == nil || *got.Priority != "high" {
		t.Errorf("priority = %v", got.Priority)
	}
	if got.Confidence == nil || *got.Confidence != 1 {
		t.Errorf("confidence should clamp to 1, got %v", got.Confidence)
	}

	invalid := capture.Normalize(extractor.RawTask{Kind: "task", Title: "x", Priority: "urgent"}, refDay, conv)
	if invalid.Priority != nil {
		t.Errorf("unknown priority kept: %v", *invalid.Priority)
	}

	untitled := capture.Normalize(extractor.RawTask{Kind: "task", Title: "   "}, refDay, conv)
	if untitled.SkipReason == "" {
		t.Error("expected skip reason for missing title")
	}
}
