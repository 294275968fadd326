package usecase

import (
	"context"
	"strings"
	"time"

	"day-planner/internal/model"
	"day-planner/internal/schedule"
	"day-planner/internal/task"
	repo "day-planner/internal/task/repository"
	"day-planner/pkg/tz"
)

// Update applies a partial update. Absent fields keep their stored value;
// present fields overwrite, a present nil clears. The merged time state must
// satisfy the shape invariants or the whole update is rejected, so a stored
// task can never be edited into an invalid one. That includes the merged
// state inherited from the row: flipping a task with a stored deadline to an
// event fails unless the same request clears the due time.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.UpdateOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, sc, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTask: %v", err)
		return task.UpdateOutput{}, err
	}
	if existing.ID == "" || existing.Status == model.StatusDeleted {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}

	conv, err := uc.resolveConverter(input.Timezone)
	if err != nil {
		return task.UpdateOutput{}, err
	}

	title := existing.Title
	if input.Title != nil {
		title = strings.TrimSpace(*input.Title)
		if title == "" {
			return task.UpdateOutput{}, task.ErrTitleRequired
		}
	}

	kind := existing.Kind
	if input.Kind != nil {
		kind = model.NormalizeKind(*input.Kind)
	}

	status := existing.Status
	if input.Status != nil {
		if !model.IsValidStatus(*input.Status) {
			return task.UpdateOutput{}, task.ErrInvalidStatus
		}
		status = model.TaskStatus(*input.Status)
	}

	note := existing.Note
	if input.NoteSet {
		note = trimmedOrNil(input.Note)
	}

	estimate := existing.EstimateMin
	if input.EstimateSet {
		estimate = input.EstimateMin
	}

	priority := existing.Priority
	if input.PrioritySet {
		if !validPriority(input.Priority) {
			return task.UpdateOutput{}, task.ErrInvalidPriority
		}
		priority = input.Priority
	}

	start, err := uc.mergeInstant(existing.StartAt, input.StartLocal, input.StartSet, conv)
	if err != nil {
		return task.UpdateOutput{}, err
	}
	end, err := uc.mergeInstant(existing.EndAt, input.EndLocal, input.EndSet, conv)
	if err != nil {
		return task.UpdateOutput{}, err
	}
	due, err := uc.mergeInstant(existing.DueAt, input.DueLocal, input.DueSet, conv)
	if err != nil {
		return task.UpdateOutput{}, err
	}
	shape, err := schedule.NewShape(kind, start, end, due)
	if err != nil {
		return task.UpdateOutput{}, err
	}

	updated, err := uc.repo.UpdateTask(ctx, sc, repo.UpdateTaskOptions{
		ID:          input.ID,
		Title:       title,
		Note:        note,
		StartAt:     shape.Start,
		EndAt:       shape.End,
		DueAt:       shape.Due,
		Kind:        kind,
		Status:      status,
		EstimateMin: estimate,
		Priority:    priority,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateOutput{}, err
	}
	if updated.ID == "" {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}
	return task.UpdateOutput{Task: updated}, nil
}

// mergeInstant resolves one time field of a partial update: keep the stored
// instant when the field is absent, clear it on nil or empty, convert
// otherwise.
func (uc *implUseCase) mergeInstant(stored *time.Time, local *string, set bool, conv *tz.Converter) (*time.Time, error) {
	if !set {
		return stored, nil
	}
	if local == nil || *local == "" {
		return nil, nil
	}
	t, err := conv.ToUTC(*local)
	if err != nil {
		return nil, task.ErrInvalidTime
	}
	return &t, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
