package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"day-planner/internal/capture"
	"day-planner/internal/capture/repository"
	"day-planner/internal/capture/usecase"
	"day-planner/internal/model"
	"day-planner/pkg/extractor"
	"day-planner/pkg/gcalendar"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockExtractor struct {
	schema   extractor.RawSchema
	fail     bool
	gotTZ    string
	gotDay   string
	gotText  string
	numCalls int
}

func (m *mockExtractor) Extract(ctx context.Context, text, timezone, dayKey string) (extractor.RawSchema, error) {
	m.numCalls++
	m.gotText = text
	m.gotTZ = timezone
	m.gotDay = dayKey
	if m.fail {
		return extractor.RawSchema{}, errors.New("llm error")
	}
	return m.schema, nil
}

type mockRepo struct {
	entryFail  bool
	taskFail   map[string]bool // by title
	tasks      []repository.CreateTaskOptions
	entryCount int
}

func (m *mockRepo) CreateEntry(ctx context.Context, sc model.Scope, opt repository.CreateEntryOptions) (model.Entry, error) {
	m.entryCount++
	if m.entryFail {
		return model.Entry{}, repository.ErrFailedToInsert
	}
	return model.Entry{ID: "entry-1", UserID: sc.UserID, Source: opt.Source, Transcript: opt.Transcript, Lang: opt.Lang}, nil
}

func (m *mockRepo) GetOneEntry(ctx context.Context, sc model.Scope, id string) (model.Entry, error) {
	return model.Entry{}, nil
}

func (m *mockRepo) CreateTask(ctx context.Context, sc model.Scope, opt repository.CreateTaskOptions) (model.Task, error) {
	if m.taskFail[opt.Title] {
		return model.Task{}, repository.ErrFailedToInsert
	}
	m.tasks = append(m.tasks, opt)
	return model.Task{
		ID:      "task-1",
		UserID:  sc.UserID,
		EntryID: opt.EntryID,
		Title:   opt.Title,
		StartAt: opt.StartAt,
		EndAt:   opt.EndAt,
		DueAt:   opt.DueAt,
		Kind:    opt.Kind,
		Status:  opt.Status,
	}, nil
}

type mockCalendar struct {
	created []gcalendar.CreateEventRequest
	fail    bool
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.fail {
		return nil, errors.New("cal error")
	}
	m.created = append(m.created, req)
	return &gcalendar.Event{ID: "ev-1", Summary: req.Summary}, nil
}

var scope = model.Scope{UserID: "user-1"}

func captureInput() capture.CaptureInput {
	return capture.CaptureInput{
		Text:     "tomorrow morning standup, finish report by 5pm",
		Timezone: "Asia/Tokyo",
		DayKey:   "2024-05-10",
	}
}

func twoItemSchema() extractor.RawSchema {
	return extractor.RawSchema{
		Tasks: []extractor.RawTask{
			{
				Kind:  "event",
				Title: "standup",
				Time:  extractor.RawTime{Type: "range", StartLocal: "2024-05-10T09:30", EndLocal: "2024-05-10T09:45"},
			},
			{
				Kind:  "task",
				Title: "finish report",
				Time:  extractor.RawTime{Type: "deadline", DueLocal: "2024-05-10T17:00"},
			},
		},
		Language: "en",
	}
}

func TestCapture(t *testing.T) {
	llm := &mockExtractor{schema: twoItemSchema()}
	repo := &mockRepo{}
	cal := &mockCalendar{}
	uc := usecase.New(&mockLogger{}, repo, llm, cal, "UTC")

	out, err := uc.Capture(context.Background(), scope, captureInput())
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}

	if llm.gotTZ != "Asia/Tokyo" || llm.gotDay != "2024-05-10" {
		t.Errorf("extractor called with tz=%q day=%q", llm.gotTZ, llm.gotDay)
	}
	if out.Entry.ID != "entry-1" || out.DayKey != "2024-05-10" {
		t.Errorf("out.Entry.ID=%q DayKey=%q", out.Entry.ID, out.DayKey)
	}
	if len(out.Tasks) != 2 || len(out.Skipped) != 0 {
		t.Fatalf("tasks=%d skipped=%d, want 2/0", len(out.Tasks), len(out.Skipped))
	}

	event := repo.tasks[0]
	if event.Kind != model.KindEvent || event.Status != model.StatusPending {
		t.Errorf("event kind=%v status=%v", event.Kind, event.Status)
	}
	wantStart := time.Date(2024, 5, 10, 0, 30, 0, 0, time.UTC)
	if event.StartAt == nil || !event.StartAt.Equal(wantStart) {
		t.Errorf("event start = %v, want %v", event.StartAt, wantStart)
	}
	if event.EntryID == nil || *event.EntryID != "entry-1" {
		t.Errorf("event entryID = %v", event.EntryID)
	}

	task := repo.tasks[1]
	if task.Kind != model.KindTask || task.Status != model.StatusTodo {
		t.Errorf("task kind=%v status=%v", task.Kind, task.Status)
	}
	wantDue := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
	if task.DueAt == nil || !task.DueAt.Equal(wantDue) {
		t.Errorf("task due = %v, want %v", task.DueAt, wantDue)
	}

	// Only the event reaches the calendar.
	if len(cal.created) != 1 || cal.created[0].Summary != "standup" {
		t.Fatalf("calendar created = %+v", cal.created)
	}
	if cal.created[0].Timezone != "Asia/Tokyo" {
		t.Errorf("calendar timezone = %q", cal.created[0].Timezone)
	}
}

func TestCaptureEmptyText(t *testing.T) {
	llm := &mockExtractor{}
	uc := usecase.New(&mockLogger{}, &mockRepo{}, llm, nil, "UTC")

	_, err := uc.Capture(context.Background(), scope, capture.CaptureInput{Text: "   "})
	if !errors.Is(err, capture.ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
	if llm.numCalls != 0 {
		t.Error("extractor should not be called for empty text")
	}
}

func TestCaptureExtractFailure(t *testing.T) {
	repo := &mockRepo{}
	uc := usecase.New(&mockLogger{}, repo, &mockExtractor{fail: true}, nil, "UTC")

	_, err := uc.Capture(context.Background(), scope, captureInput())
	if !errors.Is(err, capture.ErrExtractFailed) {
		t.Fatalf("err = %v, want ErrExtractFailed", err)
	}
	if repo.entryCount != 0 {
		t.Error("entry should not be created when extraction fails")
	}
}

func TestCaptureEntryFailure(t *testing.T) {
	uc := usecase.New(&mockLogger{}, &mockRepo{entryFail: true}, &mockExtractor{schema: twoItemSchema()}, nil, "UTC")

	_, err := uc.Capture(context.Background(), scope, captureInput())
	if !errors.Is(err, capture.ErrEntryCreate) {
		t.Fatalf("err = %v, want ErrEntryCreate", err)
	}
}

func TestCaptureReportsSkippedItems(t *testing.T) {
	schema := twoItemSchema()
	schema.Tasks = append(schema.Tasks, extractor.RawTask{
		Kind:  "event",
		Title: "fuzzy meeting",
		Time:  extractor.RawTime{Type: "range", StartLocal: "sometime"},
	})
	uc := usecase.New(&mockLogger{}, &mockRepo{}, &mockExtractor{schema: schema}, nil, "UTC")

	out, err := uc.Capture(context.Background(), scope, captureInput())
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if len(out.Tasks) != 2 {
		t.Errorf("tasks = %d, want 2", len(out.Tasks))
	}
	if len(out.Skipped) != 1 || out.Skipped[0].Title != "fuzzy meeting" {
		t.Fatalf("skipped = %+v", out.Skipped)
	}
}

func TestCaptureContinuesPastTaskFailure(t *testing.T) {
	uc := usecase.New(&mockLogger{}, &mockRepo{taskFail: map[string]bool{"standup": true}}, &mockExtractor{schema: twoItemSchema()}, nil, "UTC")

	out, err := uc.Capture(context.Background(), scope, captureInput())
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if len(out.Tasks) != 1 || out.Tasks[0].Title != "finish report" {
		t.Fatalf("tasks = %+v", out.Tasks)
	}
	if len(out.Skipped) != 1 || out.Skipped[0].Title != "standup" {
		t.Fatalf("skipped = %+v", out.Skipped)
	}
}

func TestCaptureTimezoneFallback(t *testing.T) {
	llm := &mockExtractor{schema: extractor.RawSchema{}}
	uc := usecase.New(&mockLogger{}, &mockRepo{}, llm, nil, "Europe/Paris")

	input := captureInput()
	input.Timezone = "Not/AZone"
	if _, err := uc.Capture(context.Background(), scope, input); err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if llm.gotTZ != "Europe/Paris" {
		t.Errorf("fallback timezone = %q, want Europe/Paris", llm.gotTZ)
	}
}

func TestCaptureCalendarFailureIsNotFatal(t *testing.T) {
	uc := usecase.New(&mockLogger{}, &mockRepo{}, &mockExtractor{schema: twoItemSchema()}, &mockCalendar{fail: true}, "UTC")

	out, err := uc.Capture(context.Background(), scope, captureInput())
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if len(out.Tasks) != 2 {
		t.Errorf("tasks = %d, want 2", len(out.Tasks))
	}
}
