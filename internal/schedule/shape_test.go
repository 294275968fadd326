package schedule_test

import (
	"errors"
	"testing"
	"time"

	"day-planner/internal/model"
	"day-planner/internal/schedule"
	"day-planner/pkg/tz"
)

func mustConverter(t *testing.T, name string) *tz.Converter {
	t.Helper()
	c, err := tz.NewConverter(name)
	if err != nil {
		t.Fatalf("NewConverter(%q): %v", name, err)
	}
	return c
}

func TestBuildTimeShape(t *testing.T) {
	tokyo := mustConverter(t, "Asia/Tokyo")

	tests := []struct {
		name       string
		kind       model.TaskKind
		startLocal string
		endLocal   string
		dueLocal   string
		wantType   schedule.ShapeType
		wantErr    error
	}{
		{
			name:       "Event with full range",
			kind:       model.KindEvent,
			startLocal: "2024-05-10T14:00",
			endLocal:   "2024-05-10T15:00",
			wantType:   schedule.ShapeRange,
		},
		{
			name:     "Event missing start",
			kind:     model.KindEvent,
			endLocal: "2024-05-10T15:00",
			wantErr:  schedule.ErrEventRequiresRange,
		},
		{
			name:       "Event missing end",
			kind:       model.KindEvent,
			startLocal: "2024-05-10T14:00",
			wantErr:    schedule.ErrEventRequiresRange,
		},
		{
			name:       "Event with deadline",
			kind:       model.KindEvent,
			startLocal: "2024-05-10T14:00",
			endLocal:   "2024-05-10T15:00",
			dueLocal:   "2024-05-10T18:00",
			wantErr:    schedule.ErrEventCannotHaveDeadline,
		},
		{
			name:     "Task end without start",
			kind:     model.KindTask,
			endLocal: "2024-05-10T15:00",
			wantErr:  schedule.ErrEndRequiresStart,
		},
		{
			name:       "Task start only",
			kind:       model.KindTask,
			startLocal: "2024-05-10T14:00",
			wantType:   schedule.ShapeRange,
		},
		{
			name:     "Task deadline only",
			kind:     model.KindTask,
			dueLocal: "2024-05-10T18:00",
			wantType: schedule.ShapeDeadline,
		},
		{
			name:     "Task with nothing",
			kind:     model.KindTask,
			wantType: schedule.ShapeNone,
		},
		{
			name:       "Inverted range rejected",
			kind:       model.KindTask,
			startLocal: "2024-05-10T15:00",
			endLocal:   "2024-05-10T14:00",
			wantErr:    schedule.ErrInvalidRange,
		},
		{
			name:       "Zero duration range accepted",
			kind:       model.KindEvent,
			startLocal: "2024-05-10T14:00",
			endLocal:   "2024-05-10T14:00",
			wantType:   schedule.ShapeRange,
		},
		{
			name:       "Unparseable local fails loudly",
			kind:       model.KindTask,
			startLocal: "tomorrow-ish",
			wantErr:    tz.ErrInvalidLocalTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, err := schedule.BuildTimeShape(tt.kind, tt.startLocal, tt.endLocal, tt.dueLocal, tokyo)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("BuildTimeShape: %v", err)
			}
			if shape.Type() != tt.wantType {
				t.Errorf("Type() = %q, want %q", shape.Type(), tt.wantType)
			}
		})
	}
}

// The event-requires-range rule holds no matter what else is supplied.
func TestEventRequiresRangeRegardless(t *testing.T) {
	utc := mustConverter(t, "UTC")

	for _, due := range []string{"", "2024-05-10T18:00"} {
		_, err := schedule.BuildTimeShape(model.KindEvent, "", "2024-05-10T15:00", due, utc)
		if !errors.Is(err, schedule.ErrEventRequiresRange) {
			t.Errorf("due=%q: error = %v, want ErrEventRequiresRange", due, err)
		}
	}
}

func TestBuildTimeShapeConvertsToUTC(t *testing.T) {
	tokyo := mustConverter(t, "Asia/Tokyo")

	shape, err := schedule.BuildTimeShape(model.KindEvent, "2024-05-10T09:00", "2024-05-10T10:30", "", tokyo)
	if err != nil {
		t.Fatalf("BuildTimeShape: %v", err)
	}
	wantStart := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 5, 10, 1, 30, 0, 0, time.UTC)
	if !shape.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v", shape.Start, wantStart)
	}
	if !shape.End.Equal(wantEnd) {
		t.Errorf("End = %v, want %v", shape.End, wantEnd)
	}
}

func TestNewShapeSharedGatekeeper(t *testing.T) {
	start := time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)

	if _, err := schedule.NewShape(model.KindTask, &start, &end, nil); !errors.Is(err, schedule.ErrInvalidRange) {
		t.Errorf("error = %v, want ErrInvalidRange", err)
	}
	if _, err := schedule.NewShape(model.KindEvent, &start, nil, nil); !errors.Is(err, schedule.ErrEventRequiresRange) {
		t.Errorf("error = %v, want ErrEventRequiresRange", err)
	}
}
