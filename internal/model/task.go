package model

import "time"

// TaskKind distinguishes schedulable items. Events always carry a full
// start/end range and never a due time; tasks may carry any time shape.
type TaskKind string

const (
	KindTask  TaskKind = "task"
	KindEvent TaskKind = "event"
)

// NormalizeKind coerces arbitrary input to a valid kind. Anything that is
// not exactly "event" becomes a task.
func NormalizeKind(raw string) TaskKind {
	if raw == string(KindEvent) {
		return KindEvent
	}
	return KindTask
}

// TaskStatus is the lifecycle state of a task or event.
type TaskStatus string

const (
	StatusTodo    TaskStatus = "todo"
	StatusPending TaskStatus = "pending"
	StatusDone    TaskStatus = "done"
	StatusDeleted TaskStatus = "deleted"
)

// IsValidStatus reports whether the value is a known lifecycle state.
func IsValidStatus(raw string) bool {
	switch TaskStatus(raw) {
	case StatusTodo, StatusPending, StatusDone, StatusDeleted:
		return true
	}
	return false
}

// DefaultStatus returns the initial status for a freshly created item:
// events start pending, tasks start todo.
func DefaultStatus(kind TaskKind) TaskStatus {
	if kind == KindEvent {
		return StatusPending
	}
	return StatusTodo
}

// TaskSource records how an item entered the system.
type TaskSource string

const (
	SourceManual TaskSource = "manual"
	SourceVoice  TaskSource = "voice"
	SourceText   TaskSource = "text"
)

// Task is the schedulable unit persisted in the tasks table.
// StartAt/EndAt/DueAt are UTC instants; nil means the field is unset.
// EndAt is never set without StartAt, and events always carry both.
type Task struct {
	ID          string
	UserID      string
	EntryID     *string // owning capture entry, nil for direct creation
	Title       string
	Note        *string
	StartAt     *time.Time
	EndAt       *time.Time
	DueAt       *time.Time
	Kind        TaskKind
	Status      TaskStatus
	EstimateMin *int
	Priority    *string // low | mid | high
	Source      TaskSource
	Confidence  *float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
