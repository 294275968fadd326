package capture

import (
	"math"
	"regexp"
	"strings"
	"time"

	"day-planner/internal/model"
	"day-planner/internal/schedule"
	"day-planner/pkg/extractor"
	"day-planner/pkg/tz"
)

// Fixed anchors for natural time-of-day phrases. A lookup table, never
// inferred.
var timeOfDayAnchors = map[string]string{
	"morning": "09:00",
	"noon":    "12:00",
	"evening": "17:00",
	"night":   "20:00",
}

var clockOnlyRe = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

// Normalize repairs one raw extracted task into a valid shape. It is total:
// it never fails, applying the default-time policy instead. Missing or
// garbled time information on a task falls back to a same-day deadline at
// 23:59 local ("every task defaults to a same-day deadline unless otherwise
// specified"). Events that cannot be fully time-boxed are marked with a
// SkipReason so the caller reports them instead of persisting an invalid
// event.
func Normalize(raw extractor.RawTask, refDayKey string, conv *tz.Converter) Normalized {
	kind := model.NormalizeKind(raw.Kind)

	n := Normalized{
		Kind:       kind,
		Title:      strings.TrimSpace(raw.Title),
		Note:       optionalString(raw.Note),
		Priority:   normalizePriority(raw.Priority),
		Confidence: normalizeConfidence(raw.Confidence),
	}
	if n.Title == "" {
		n.SkipReason = "missing title"
		return n
	}

	start := parseLocal(raw.Time.StartLocal, refDayKey, conv)
	end := parseLocal(raw.Time.EndLocal, refDayKey, conv)
	due := parseLocal(raw.Time.DueLocal, refDayKey, conv)

	if kind == model.KindEvent {
		if start == nil || end == nil {
			n.SkipReason = "event requires both start and end times"
			return n
		}
		if end.Before(*start) {
			n.SkipReason = "event ends before it starts"
			return n
		}
		shape, err := schedule.NewShape(kind, start, end, nil)
		if err != nil {
			n.SkipReason = err.Error()
			return n
		}
		n.Shape = shape
		return n
	}

	// kind = task from here on.
	n.EstimateMin = normalizeEstimate(raw.EstimateMin)

	switch raw.Time.Type {
	case "range":
		if start == nil {
			// An end without a start carries no usable anchor.
			break
		}
		if end != nil && end.Before(*start) {
			end = nil
		}
		if shape, err := schedule.NewShape(kind, start, end, nil); err == nil {
			n.Shape = shape
			return n
		}
	case "deadline":
		if due != nil {
			if shape, err := schedule.NewShape(kind, nil, nil, due); err == nil {
				n.Shape = shape
				return n
			}
		}
	}

	// Default policy: same-day deadline at end of the reference day.
	n.Shape = defaultDeadline(refDayKey, conv)
	return n
}

// defaultDeadline builds the 23:59-local deadline shape for the reference
// day. If even that conversion fails the shape stays none and the item
// surfaces as unscheduled on its capture day.
func defaultDeadline(refDayKey string, conv *tz.Converter) schedule.TimeShape {
	due, err := conv.ToUTC(refDayKey + "T23:59")
	if err != nil {
		return schedule.TimeShape{}
	}
	return schedule.TimeShape{Due: &due}
}

// parseLocal resolves a raw local timestamp string to a UTC instant.
// Accepted forms: full naive timestamps, bare clock times (anchored to the
// reference day), time-of-day phrases, and date + phrase combinations.
// Anything else is treated as absent.
func parseLocal(value, refDayKey string, conv *tz.Converter) *time.Time {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil
	}

	candidates := make([]string, 0, 2)
	lower := strings.ToLower(v)
	switch {
	case timeOfDayAnchors[lower] != "":
		candidates = append(candidates, refDayKey+"T"+timeOfDayAnchors[lower])
	case clockOnlyRe.MatchString(v):
		candidates = append(candidates, refDayKey+"T"+pad2(v))
	default:
		candidates = append(candidates, v)
		if idx := strings.IndexByte(v, 'T'); idx > 0 {
			if anchor := timeOfDayAnchors[strings.ToLower(v[idx+1:])]; anchor != "" {
				candidates = append(candidates, v[:idx]+"T"+anchor)
			}
		}
	}

	for _, candidate := range candidates {
		if t, err := conv.ToUTC(candidate); err == nil {
			return &t
		}
	}
	return nil
}

// pad2 normalizes "9:00" to "09:00".
func pad2(clock string) string {
	if len(clock) == 4 {
		return "0" + clock
	}
	return clock
}

// normalizeEstimate rounds to the nearest multiple of 5 minutes with a
// floor of 5. Non-positive or unknown values are dropped.
func normalizeEstimate(raw extractor.FlexNumber) *int {
	if !raw.Known || raw.Value <= 0 {
		return nil
	}
	rounded := int(math.Round(raw.Value/5)) * 5
	if rounded < 5 {
		rounded = 5
	}
	return &rounded
}

func normalizePriority(raw string) *string {
	switch raw {
	case "low", "mid", "high":
		return &raw
	}
	return nil
}

func normalizeConfidence(raw extractor.FlexNumber) *float64 {
	if !raw.Known {
		return nil
	}
	v := raw.Value
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return &v
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
