package task

import (
	"time"

	"day-planner/internal/model"
)

// CreateInput creates one task or event by hand. Local timestamps are naive
// wall-clock strings ("2006-01-02T15:04") interpreted in Timezone.
type CreateInput struct {
	Title       string
	Note        *string
	Kind        string
	StartLocal  string
	EndLocal    string
	DueLocal    string
	Timezone    string
	EstimateMin *int
	Priority    *string
}

// CreateOutput wraps the created task.
type CreateOutput struct {
	Task model.Task
}

// UpdateInput applies a partial update. The Set flags distinguish "field
// absent, keep the stored value" from "field present, overwrite or clear".
// A present field with a nil value clears it.
type UpdateInput struct {
	ID       string
	Timezone string

	Title  *string
	Kind   *string
	Status *string

	Note    *string
	NoteSet bool

	StartLocal *string
	StartSet   bool
	EndLocal   *string
	EndSet     bool
	DueLocal   *string
	DueSet     bool

	EstimateMin *int
	EstimateSet bool
	Priority    *string
	PrioritySet bool
}

// UpdateOutput wraps the updated task.
type UpdateOutput struct {
	Task model.Task
}

// DetailOutput wraps one task.
type DetailOutput struct {
	Task model.Task
}

// DayViewInput selects one local calendar day. An empty DayKey means today
// in the given timezone.
type DayViewInput struct {
	DayKey   string
	Timezone string
}

// DayViewOutput is one resolved local day: its UTC window, navigation keys,
// and every live item grouped the way the planner renders them. Each group
// is sorted for display.
type DayViewOutput struct {
	DayKey      string
	PrevDayKey  string
	NextDayKey  string
	Timezone    string
	WindowStart time.Time
	WindowEnd   time.Time

	Events         []model.Task
	ScheduledTasks []model.Task
	StartOnly      []model.Task
	Deadlines      []model.Task
	Unscheduled    []model.Task
}
