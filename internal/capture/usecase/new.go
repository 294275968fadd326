package usecase

import (
	"context"

	"day-planner/internal/capture/repository"
	"day-planner/pkg/extractor"
	"day-planner/pkg/gcalendar"
	"day-planner/pkg/log"
)

// Calendar is the slice of the Google Calendar client the capture flow
// needs. Mirroring is best-effort and optional.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// implUseCase is the private implementation of capture.UseCase.
type implUseCase struct {
	l         log.Logger
	repo      repository.Repository
	llm       extractor.IExtractor
	calendar  Calendar
	defaultTZ string
}

// New creates a new capture UseCase implementation. calendar may be nil when
// mirroring is disabled.
func New(l log.Logger, repo repository.Repository, llm extractor.IExtractor, calendar Calendar, defaultTZ string) *implUseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		llm:       llm,
		calendar:  calendar,
		defaultTZ: defaultTZ,
	}
}
