package http

import (
	"errors"
	"time"

	"day-planner/internal/capture"
	"day-planner/internal/model"
)

// --- Request DTOs ---

type captureReq struct {
	Text     string `json:"text"     binding:"required"`
	Timezone string `json:"timezone" binding:"omitempty,max=64"`
	DayKey   string `json:"dayKey"   binding:"omitempty,len=10"`
	HadAudio bool   `json:"hadAudio"`
	Lang     string `json:"lang"     binding:"omitempty,max=16"`
}

func (r captureReq) validate() error {
	if len(r.Text) > 8000 {
		return errors.New("text is too long")
	}
	return nil
}

func (r captureReq) toInput() capture.CaptureInput {
	return capture.CaptureInput{
		Text:     r.Text,
		Timezone: r.Timezone,
		DayKey:   r.DayKey,
		HadAudio: r.HadAudio,
		Lang:     r.Lang,
	}
}

// --- Response DTOs ---

type entryResp struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	Transcript string    `json:"transcript"`
	Lang       *string   `json:"lang,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type taskResp struct {
	ID          string     `json:"id"`
	EntryID     *string    `json:"entryId,omitempty"`
	Title       string     `json:"title"`
	Note        *string    `json:"note,omitempty"`
	StartAt     *time.Time `json:"startAt,omitempty"`
	EndAt       *time.Time `json:"endAt,omitempty"`
	DueAt       *time.Time `json:"dueAt,omitempty"`
	Kind        string     `json:"kind"`
	Status      string     `json:"status"`
	EstimateMin *int       `json:"estimateMin,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	Source      string     `json:"source"`
	Confidence  *float64   `json:"confidence,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		EntryID:     t.EntryID,
		Title:       t.Title,
		Note:        t.Note,
		StartAt:     t.StartAt,
		EndAt:       t.EndAt,
		DueAt:       t.DueAt,
		Kind:        string(t.Kind),
		Status:      string(t.Status),
		EstimateMin: t.EstimateMin,
		Priority:    t.Priority,
		Source:      string(t.Source),
		Confidence:  t.Confidence,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type skippedResp struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

type captureResp struct {
	Entry   entryResp     `json:"entry"`
	Tasks   []taskResp    `json:"tasks"`
	Skipped []skippedResp `json:"skipped,omitempty"`
	DayKey  string        `json:"dayKey"`
}

func (h *handler) newCaptureResp(out capture.CaptureOutput) captureResp {
	resp := captureResp{
		Entry: entryResp{
			ID:         out.Entry.ID,
			Source:     string(out.Entry.Source),
			Transcript: out.Entry.Transcript,
			Lang:       out.Entry.Lang,
			CreatedAt:  out.Entry.CreatedAt,
		},
		Tasks:  make([]taskResp, len(out.Tasks)),
		DayKey: out.DayKey,
	}
	for i, t := range out.Tasks {
		resp.Tasks[i] = newTaskResp(t)
	}
	for _, s := range out.Skipped {
		resp.Skipped = append(resp.Skipped, skippedResp{Title: s.Title, Reason: s.Reason})
	}
	return resp
}
