package usecase

import (
	"context"
	"strings"
	"time"

	"day-planner/internal/capture"
	repo "day-planner/internal/capture/repository"
	"day-planner/internal/model"
	"day-planner/pkg/gcalendar"
	"day-planner/pkg/tz"
)

// Capture runs the full pipeline: resolve the caller's timezone and
// reference day, extract structured tasks from the text, repair each one
// into a valid time shape, then persist the entry and its tasks. Items the
// normalizer refused are reported back, never silently dropped.
func (uc *implUseCase) Capture(ctx context.Context, sc model.Scope, input capture.CaptureInput) (capture.CaptureOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return capture.CaptureOutput{}, capture.ErrEmptyInput
	}

	conv := uc.resolveConverter(ctx, input.Timezone)
	dayKey := uc.resolveDayKey(ctx, conv, input.DayKey)

	raw, err := uc.llm.Extract(ctx, text, conv.Name(), dayKey)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Capture Extract: %v", err)
		return capture.CaptureOutput{}, capture.ErrExtractFailed
	}

	source := model.SourceText
	if input.HadAudio {
		source = model.SourceVoice
	}

	entry, err := uc.repo.CreateEntry(ctx, sc, repo.CreateEntryOptions{
		Source:     source,
		Transcript: text,
		Lang:       uc.resolveLang(input.Lang, raw.Language),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Capture CreateEntry: %v", err)
		return capture.CaptureOutput{}, capture.ErrEntryCreate
	}

	out := capture.CaptureOutput{Entry: entry, DayKey: dayKey}
	for _, rawTask := range raw.Tasks {
		n := capture.Normalize(rawTask, dayKey, conv)
		if n.SkipReason != "" {
			out.Skipped = append(out.Skipped, capture.SkippedItem{Title: strings.TrimSpace(rawTask.Title), Reason: n.SkipReason})
			continue
		}

		task, err := uc.repo.CreateTask(ctx, sc, repo.CreateTaskOptions{
			EntryID:     &entry.ID,
			Title:       n.Title,
			Note:        n.Note,
			StartAt:     n.Shape.Start,
			EndAt:       n.Shape.End,
			DueAt:       n.Shape.Due,
			Kind:        n.Kind,
			Status:      model.DefaultStatus(n.Kind),
			EstimateMin: n.EstimateMin,
			Priority:    n.Priority,
			Source:      source,
			Confidence:  n.Confidence,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Capture CreateTask %q: %v", n.Title, err)
			out.Skipped = append(out.Skipped, capture.SkippedItem{Title: n.Title, Reason: "could not be saved"})
			continue
		}
		out.Tasks = append(out.Tasks, task)

		if uc.calendar != nil && task.Kind == model.KindEvent {
			uc.mirrorEvent(ctx, task, conv)
		}
	}

	return out, nil
}

// resolveConverter picks the timezone for this capture. Order: the caller's
// timezone, the configured default, UTC. An unknown name never fails the
// capture.
func (uc *implUseCase) resolveConverter(ctx context.Context, timezone string) *tz.Converter {
	for _, name := range []string{timezone, uc.defaultTZ} {
		if name == "" {
			continue
		}
		conv, err := tz.NewConverter(name)
		if err == nil {
			return conv
		}
		uc.l.Warnf(ctx, "uc.Capture: unknown timezone %q, falling back", name)
	}
	conv, _ := tz.NewConverter("UTC")
	return conv
}

// resolveDayKey uses the caller's override when it parses, otherwise the
// current day in the resolved timezone.
func (uc *implUseCase) resolveDayKey(ctx context.Context, conv *tz.Converter, override string) string {
	if override != "" {
		if _, err := conv.DayWindowForKey(override); err == nil {
			return override
		}
		uc.l.Warnf(ctx, "uc.Capture: invalid day key %q, using today", override)
	}
	return conv.DayKeyOf(time.Now())
}

func (uc *implUseCase) resolveLang(inputLang, detected string) *string {
	lang := inputLang
	if lang == "" {
		lang = detected
	}
	if lang == "" {
		return nil
	}
	return &lang
}

// mirrorEvent pushes a persisted event to the user's calendar. Failures are
// logged and swallowed: the local store stays the source of truth.
func (uc *implUseCase) mirrorEvent(ctx context.Context, task model.Task, conv *tz.Converter) {
	if task.StartAt == nil || task.EndAt == nil {
		return
	}
	description := ""
	if task.Note != nil {
		description = *task.Note
	}
	_, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		Summary:     task.Title,
		Description: description,
		StartTime:   *task.StartAt,
		EndTime:     *task.EndAt,
		Timezone:    conv.Name(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Capture mirror event %q: %v", task.Title, err)
	}
}
