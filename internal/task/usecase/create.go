package usecase

import (
	"context"
	"strings"

	"day-planner/internal/model"
	"day-planner/internal/schedule"
	"day-planner/internal/task"
	repo "day-planner/internal/task/repository"
)

// Create validates and persists one manually entered task or event.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.CreateOutput{}, task.ErrTitleRequired
	}
	if !validPriority(input.Priority) {
		return task.CreateOutput{}, task.ErrInvalidPriority
	}

	conv, err := uc.resolveConverter(input.Timezone)
	if err != nil {
		return task.CreateOutput{}, err
	}

	kind := model.NormalizeKind(input.Kind)
	shape, err := schedule.BuildTimeShape(kind, input.StartLocal, input.EndLocal, input.DueLocal, conv)
	if err != nil {
		return task.CreateOutput{}, mapTimeError(err)
	}

	created, err := uc.repo.CreateTask(ctx, sc, repo.CreateTaskOptions{
		Title:       title,
		Note:        input.Note,
		StartAt:     shape.Start,
		EndAt:       shape.End,
		DueAt:       shape.Due,
		Kind:        kind,
		Status:      model.DefaultStatus(kind),
		EstimateMin: input.EstimateMin,
		Priority:    input.Priority,
		Source:      model.SourceManual,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateOutput{}, err
	}
	return task.CreateOutput{Task: created}, nil
}
