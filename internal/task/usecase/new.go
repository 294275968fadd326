package usecase

import (
	"errors"

	"day-planner/internal/task"
	"day-planner/internal/task/repository"
	"day-planner/pkg/log"
	"day-planner/pkg/tz"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	l         log.Logger
	repo      repository.Repository
	defaultTZ string
}

// New creates a new task UseCase implementation.
func New(l log.Logger, repo repository.Repository, defaultTZ string) *implUseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		defaultTZ: defaultTZ,
	}
}

// resolveConverter builds the converter for a request. An explicitly given
// timezone must be valid; only an absent one falls back to the configured
// default, then UTC.
func (uc *implUseCase) resolveConverter(timezone string) (*tz.Converter, error) {
	if timezone != "" {
		conv, err := tz.NewConverter(timezone)
		if err != nil {
			return nil, task.ErrInvalidTimezone
		}
		return conv, nil
	}
	if uc.defaultTZ != "" {
		if conv, err := tz.NewConverter(uc.defaultTZ); err == nil {
			return conv, nil
		}
	}
	conv, _ := tz.NewConverter("UTC")
	return conv, nil
}

func validPriority(p *string) bool {
	if p == nil {
		return true
	}
	switch *p {
	case "low", "mid", "high":
		return true
	}
	return false
}

func mapTimeError(err error) error {
	if errors.Is(err, tz.ErrInvalidLocalTime) {
		return task.ErrInvalidTime
	}
	return err
}
