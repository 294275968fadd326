package usecase

import (
	"context"
	"errors"
	"time"

	"day-planner/internal/model"
	"day-planner/internal/schedule"
	"day-planner/internal/task"
	repo "day-planner/internal/task/repository"
	"day-planner/pkg/tz"
)

// DayView resolves one local calendar day to its UTC window, fetches every
// candidate row, and classifies each against the window. The window is
// computed from local midnights, so DST-irregular days keep their true
// length and no item is lost or duplicated across consecutive days.
func (uc *implUseCase) DayView(ctx context.Context, sc model.Scope, input task.DayViewInput) (task.DayViewOutput, error) {
	conv, err := uc.resolveConverter(input.Timezone)
	if err != nil {
		return task.DayViewOutput{}, err
	}

	dayKey := input.DayKey
	if dayKey == "" {
		dayKey = conv.DayKeyOf(time.Now())
	}
	window, err := conv.DayWindowForKey(dayKey)
	if err != nil {
		if errors.Is(err, tz.ErrInvalidDayKey) {
			return task.DayViewOutput{}, task.ErrInvalidDayKey
		}
		return task.DayViewOutput{}, err
	}

	rows, err := uc.repo.ListTasksInWindow(ctx, sc, repo.ListWindowOptions{
		WindowStart: window.StartUTC,
		WindowEnd:   window.EndUTC,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DayView ListTasksInWindow: %v", err)
		return task.DayViewOutput{}, err
	}

	buckets := map[schedule.Bucket][]schedule.Classified{}
	for _, t := range rows {
		cl := schedule.Classify(t, window.StartUTC, window.EndUTC)
		if !cl.Overlaps {
			// Prefiltered candidate that misses the window, e.g. a range
			// ending exactly at local midnight.
			continue
		}
		buckets[cl.Bucket] = append(buckets[cl.Bucket], schedule.Classified{Task: t, Classification: cl})
	}

	prevKey, _ := tz.PreviousDayKey(window.DayKey)
	nextKey, _ := tz.NextDayKey(window.DayKey)

	return task.DayViewOutput{
		DayKey:         window.DayKey,
		PrevDayKey:     prevKey,
		NextDayKey:     nextKey,
		Timezone:       conv.Name(),
		WindowStart:    window.StartUTC,
		WindowEnd:      window.EndUTC,
		Events:         sortedTasks(buckets[schedule.BucketScheduledEvent]),
		ScheduledTasks: sortedTasks(buckets[schedule.BucketScheduledTask]),
		StartOnly:      sortedTasks(buckets[schedule.BucketStartOnly]),
		Deadlines:      sortedTasks(buckets[schedule.BucketDeadline]),
		Unscheduled:    sortedTasks(buckets[schedule.BucketUnscheduled]),
	}, nil
}

func sortedTasks(items []schedule.Classified) []model.Task {
	if len(items) == 0 {
		return nil
	}
	schedule.SortForDisplay(items)
	tasks := make([]model.Task, len(items))
	for i, it := range items {
		tasks[i] = it.Task
	}
	return tasks
}
