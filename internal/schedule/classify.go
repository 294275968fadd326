package schedule

import (
	"sort"
	"time"

	"day-planner/internal/model"
)

// Bucket is the display category an item is classified into.
type Bucket string

const (
	BucketScheduledEvent Bucket = "scheduled-event"
	BucketScheduledTask  Bucket = "scheduled-task"
	BucketStartOnly      Bucket = "start-only"
	BucketDeadline       Bucket = "deadline"
	BucketUnscheduled    Bucket = "unscheduled"
)

// Classification is the result of bucketing one item against a day window.
type Classification struct {
	Bucket   Bucket
	Overlaps bool
	SortKey  time.Time // start, else due, else creation instant
}

// Classify buckets a task against the half-open window
// [windowStart, windowEnd). Pure and deterministic: same task and window
// always yield the same result. First matching bucket rule wins:
//
//  1. event with start+end        -> scheduled-event
//  2. task with start+end         -> scheduled-task (timeboxed)
//  3. task with only a start      -> start-only (untimed pane)
//  4. task with only a due        -> deadline
//  5. anything else               -> unscheduled
//
// Items with no time anchor at all surface on the day they were captured.
func Classify(t model.Task, windowStart, windowEnd time.Time) Classification {
	bucket := bucketOf(t)

	var overlaps bool
	switch bucket {
	case BucketScheduledEvent, BucketScheduledTask:
		// Half-open on both sides: ending exactly at windowStart or
		// starting exactly at windowEnd is not an overlap.
		overlaps = t.StartAt.Before(windowEnd) && t.EndAt.After(windowStart)
	case BucketStartOnly:
		overlaps = inWindow(*t.StartAt, windowStart, windowEnd)
	case BucketDeadline:
		overlaps = inWindow(*t.DueAt, windowStart, windowEnd)
	case BucketUnscheduled:
		overlaps = inWindow(t.CreatedAt, windowStart, windowEnd)
	}

	return Classification{
		Bucket:   bucket,
		Overlaps: overlaps,
		SortKey:  sortKeyOf(t),
	}
}

func bucketOf(t model.Task) Bucket {
	switch {
	case t.Kind == model.KindEvent && t.StartAt != nil && t.EndAt != nil:
		return BucketScheduledEvent
	case t.Kind == model.KindTask && t.StartAt != nil && t.EndAt != nil:
		return BucketScheduledTask
	case t.Kind == model.KindTask && t.StartAt != nil && t.EndAt == nil && t.DueAt == nil:
		return BucketStartOnly
	case t.Kind == model.KindTask && t.StartAt == nil && t.EndAt == nil && t.DueAt != nil:
		return BucketDeadline
	default:
		return BucketUnscheduled
	}
}

func sortKeyOf(t model.Task) time.Time {
	switch {
	case t.StartAt != nil:
		return *t.StartAt
	case t.DueAt != nil:
		return *t.DueAt
	default:
		return t.CreatedAt
	}
}

func inWindow(instant, windowStart, windowEnd time.Time) bool {
	return !instant.Before(windowStart) && instant.Before(windowEnd)
}

// Classified pairs a task with its classification for display ordering.
type Classified struct {
	Task model.Task
	Classification
}

// SortForDisplay orders items ascending by sort key, items without a
// resolvable key last. The sort is stable so creation order breaks ties.
func SortForDisplay(items []Classified) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].SortKey, items[j].SortKey
		if a.IsZero() {
			return false
		}
		if b.IsZero() {
			return true
		}
		return a.Before(b)
	})
}
