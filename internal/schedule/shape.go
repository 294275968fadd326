package schedule

import (
	"time"

	"day-planner/internal/model"
	"day-planner/pkg/tz"
)

// ShapeType tags the temporal variant of an item.
type ShapeType string

const (
	ShapeNone     ShapeType = "none"
	ShapeRange    ShapeType = "range"
	ShapeDeadline ShapeType = "deadline"
)

// TimeShape is the validated temporal state of a task or event. All
// instants are UTC. Invariants (End never without Start, events always a
// full range, deadlines never on events) hold for every value produced by
// NewShape or BuildTimeShape; no other construction path exists for
// write flows.
type TimeShape struct {
	Start *time.Time
	End   *time.Time
	Due   *time.Time
}

// Type derives the variant tag. A shape with a start is a range regardless
// of any due time riding along on a legacy row.
func (s TimeShape) Type() ShapeType {
	switch {
	case s.Start != nil:
		return ShapeRange
	case s.Due != nil:
		return ShapeDeadline
	default:
		return ShapeNone
	}
}

// NewShape validates UTC instants against the kind invariants and returns
// the canonical shape. This is the single gatekeeper shared by the capture
// path and the direct-edit path.
func NewShape(kind model.TaskKind, start, end, due *time.Time) (TimeShape, error) {
	if kind == model.KindEvent {
		if start == nil || end == nil {
			return TimeShape{}, ErrEventRequiresRange
		}
		if due != nil {
			return TimeShape{}, ErrEventCannotHaveDeadline
		}
	}
	if kind == model.KindTask && start == nil && end != nil {
		return TimeShape{}, ErrEndRequiresStart
	}
	if start != nil && end != nil && end.Before(*start) {
		return TimeShape{}, ErrInvalidRange
	}
	return TimeShape{Start: start, End: end, Due: due}, nil
}

// BuildTimeShape converts naive local timestamps (empty string = absent)
// through the given converter and validates them via NewShape. Unparseable
// local strings fail loudly here; silent repair belongs to the capture
// normalizer, not to this gatekeeper.
func BuildTimeShape(kind model.TaskKind, startLocal, endLocal, dueLocal string, conv *tz.Converter) (TimeShape, error) {
	start, err := toInstant(startLocal, conv)
	if err != nil {
		return TimeShape{}, err
	}
	end, err := toInstant(endLocal, conv)
	if err != nil {
		return TimeShape{}, err
	}
	due, err := toInstant(dueLocal, conv)
	if err != nil {
		return TimeShape{}, err
	}
	return NewShape(kind, start, end, due)
}

func toInstant(local string, conv *tz.Converter) (*time.Time, error) {
	if local == "" {
		return nil, nil
	}
	t, err := conv.ToUTC(local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
