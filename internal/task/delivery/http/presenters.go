package http

import (
	"encoding/json"
	"errors"
	"time"

	"day-planner/internal/model"
	"day-planner/internal/task"
	"day-planner/pkg/tz"
)

// --- Request DTOs ---

type createReq struct {
	Title       string  `json:"title"       binding:"required,max=500"`
	Note        *string `json:"note"        binding:"omitempty,max=4000"`
	Kind        string  `json:"kind"        binding:"omitempty,oneof=task event"`
	StartAt     string  `json:"startAt"     binding:"omitempty,max=32"`
	EndAt       string  `json:"endAt"       binding:"omitempty,max=32"`
	DueAt       string  `json:"dueAt"       binding:"omitempty,max=32"`
	Timezone    string  `json:"timezone"    binding:"omitempty,max=64"`
	EstimateMin *int    `json:"estimateMin" binding:"omitempty,min=1,max=1440"`
	Priority    *string `json:"priority"    binding:"omitempty,oneof=low mid high"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:       r.Title,
		Note:        r.Note,
		Kind:        r.Kind,
		StartLocal:  r.StartAt,
		EndLocal:    r.EndAt,
		DueLocal:    r.DueAt,
		Timezone:    r.Timezone,
		EstimateMin: r.EstimateMin,
		Priority:    r.Priority,
	}
}

// updateReq distinguishes absent fields from explicit nulls, which is what
// makes clearing a time anchor possible over a merge-style PATCH. Raw
// messages stay nil when the key is missing from the body.
type updateReq struct {
	ID       string `json:"-"`
	Timezone string `json:"timezone"`

	Title  *string `json:"title"`
	Kind   *string `json:"kind"`
	Status *string `json:"status"`

	Note        json.RawMessage `json:"note"`
	StartAt     json.RawMessage `json:"startAt"`
	EndAt       json.RawMessage `json:"endAt"`
	DueAt       json.RawMessage `json:"dueAt"`
	EstimateMin json.RawMessage `json:"estimateMin"`
	Priority    json.RawMessage `json:"priority"`
}

func (r updateReq) toInput() (task.UpdateInput, error) {
	input := task.UpdateInput{
		ID:       r.ID,
		Timezone: r.Timezone,
		Title:    r.Title,
		Kind:     r.Kind,
		Status:   r.Status,
	}

	var err error
	if input.Note, input.NoteSet, err = stringField(r.Note); err != nil {
		return input, err
	}
	if input.StartLocal, input.StartSet, err = stringField(r.StartAt); err != nil {
		return input, err
	}
	if input.EndLocal, input.EndSet, err = stringField(r.EndAt); err != nil {
		return input, err
	}
	if input.DueLocal, input.DueSet, err = stringField(r.DueAt); err != nil {
		return input, err
	}
	if input.EstimateMin, input.EstimateSet, err = intField(r.EstimateMin); err != nil {
		return input, err
	}
	if input.Priority, input.PrioritySet, err = stringField(r.Priority); err != nil {
		return input, err
	}
	return input, nil
}

func stringField(raw json.RawMessage) (*string, bool, error) {
	if raw == nil {
		return nil, false, nil
	}
	if string(raw) == "null" {
		return nil, true, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, true, errors.New("expected a string or null")
	}
	return &s, true, nil
}

func intField(raw json.RawMessage) (*int, bool, error) {
	if raw == nil {
		return nil, false, nil
	}
	if string(raw) == "null" {
		return nil, true, nil
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, true, errors.New("expected a number or null")
	}
	return &n, true, nil
}

// --- Response DTOs ---

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

	// Wall-clock display strings in the day view's timezone.
	StartClock string `json:"startClock,omitempty"`
	EndClock   string `json:"endClock,omitempty"`
	DueClock   string `json:"dueClock,omitempty"`
}

func newTaskResp(t model.Task, conv *tz.Converter) taskResp {
	resp := taskResp{
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
	if conv != nil {
		if t.StartAt != nil {
			resp.StartClock = conv.Clock(*t.StartAt)
		}
		if t.EndAt != nil {
			resp.EndClock = conv.Clock(*t.EndAt)
		}
		if t.DueAt != nil {
			resp.DueClock = conv.Clock(*t.DueAt)
		}
	}
	return resp
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(t model.Task) detailResp {
	return detailResp{Task: newTaskResp(t, nil)}
}

type dayViewResp struct {
	DayKey      string    `json:"dayKey"`
	PrevDayKey  string    `json:"prevDayKey"`
	NextDayKey  string    `json:"nextDayKey"`
	Timezone    string    `json:"timezone"`
	WindowStart time.Time `json:"windowStart"`
	WindowEnd   time.Time `json:"windowEnd"`

	Events         []taskResp `json:"events"`
	ScheduledTasks []taskResp `json:"scheduledTasks"`
	StartOnly      []taskResp `json:"startOnly"`
	Deadlines      []taskResp `json:"deadlines"`
	Unscheduled    []taskResp `json:"unscheduled"`
}

func (h *handler) newDayViewResp(out task.DayViewOutput) dayViewResp {
	conv, _ := tz.NewConverter(out.Timezone)

	group := func(tasks []model.Task) []taskResp {
		resps := make([]taskResp, len(tasks))
		for i, t := range tasks {
			resps[i] = newTaskResp(t, conv)
		}
		return resps
	}

	return dayViewResp{
		DayKey:         out.DayKey,
		PrevDayKey:     out.PrevDayKey,
		NextDayKey:     out.NextDayKey,
		Timezone:       out.Timezone,
		WindowStart:    out.WindowStart,
		WindowEnd:      out.WindowEnd,
		Events:         group(out.Events),
		ScheduledTasks: group(out.ScheduledTasks),
		StartOnly:      group(out.StartOnly),
		Deadlines:      group(out.Deadlines),
		Unscheduled:    group(out.Unscheduled),
	}
}
