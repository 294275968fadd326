package usecase

import (
	"context"

	"day-planner/internal/model"
	"day-planner/internal/task"
)

// Detail retrieves a single task by ID. Returns ErrTaskNotFound when absent
// or soft-deleted.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	found, err := uc.repo.GetOneTask(ctx, sc, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return task.DetailOutput{}, err
	}
	if found.ID == "" || found.Status == model.StatusDeleted {
		return task.DetailOutput{}, task.ErrTaskNotFound
	}
	return task.DetailOutput{Task: found}, nil
}

// Delete soft-deletes a task. Returns ErrTaskNotFound when absent.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneTask(ctx, sc, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTask: %v", err)
		return err
	}
	if existing.ID == "" || existing.Status == model.StatusDeleted {
		return task.ErrTaskNotFound
	}
	if err := uc.repo.DeleteTask(ctx, sc, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}
