package usecase_test

import (
	"context"

	"day-planner/internal/model"
	"day-planner/internal/task"
	repo "day-planner/internal/task/repository"
	"day-planner/internal/task/usecase"
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

type mockRepo struct {
	tasks    map[string]model.Task
	listRows []model.Task
	created  *repo.CreateTaskOptions
	updated  *repo.UpdateTaskOptions
	deleted  []string
}

func (m *mockRepo) CreateTask(ctx context.Context, sc model.Scope, opt repo.CreateTaskOptions) (model.Task, error) {
	m.created = &opt
	return model.Task{
		ID:      "task-new",
		UserID:  sc.UserID,
		Title:   opt.Title,
		Note:    opt.Note,
		StartAt: opt.StartAt,
		EndAt:   opt.EndAt,
		DueAt:   opt.DueAt,
		Kind:    opt.Kind,
		Status:  opt.Status,
	}, nil
}

func (m *mockRepo) GetOneTask(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	return m.tasks[id], nil
}

func (m *mockRepo) ListTasksInWindow(ctx context.Context, sc model.Scope, opt repo.ListWindowOptions) ([]model.Task, error) {
	return m.listRows, nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, sc model.Scope, opt repo.UpdateTaskOptions) (model.Task, error) {
	m.updated = &opt
	existing := m.tasks[opt.ID]
	return model.Task{
		ID:      opt.ID,
		UserID:  sc.UserID,
		Title:   opt.Title,
		Note:    opt.Note,
		StartAt: opt.StartAt,
		EndAt:   opt.EndAt,
		DueAt:   opt.DueAt,
		Kind:    opt.Kind,
		Status:  opt.Status,

		CreatedAt: existing.CreatedAt,
	}, nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, sc model.Scope, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

var scope = model.Scope{UserID: "user-1"}

func ptr[T any](v T) *T { return &v }

func newUC(r *mockRepo) task.UseCase {
	return usecase.New(&mockLogger{}, r, "UTC")
}
