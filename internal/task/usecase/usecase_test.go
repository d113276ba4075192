package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"assistant-tools/internal/model"
	"assistant-tools/internal/task"
	"assistant-tools/internal/task/repository/memory"
	"assistant-tools/internal/task/usecase"
	"assistant-tools/pkg/datemath"
)

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

// tickingClock advances one minute per reading so created_at values differ.
type tickingClock struct {
	now time.Time
}

func (c *tickingClock) Now() time.Time {
	c.now = c.now.Add(time.Minute)
	return c.now
}

func newTestUseCase(t *testing.T) task.UseCase {
	t.Helper()
	clock := &tickingClock{now: time.Date(2026, time.October, 19, 8, 0, 0, 0, time.Local)}
	resolver, err := datemath.NewTaskResolver(clock.Now)
	if err != nil {
		t.Fatalf("NewTaskResolver: %v", err)
	}
	return usecase.New(&mockLogger{}, memory.New(), resolver)
}

func mustCreate(t *testing.T, uc task.UseCase, in task.CreateTaskInput) model.Task {
	t.Helper()
	out, err := uc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create(%+v): %v", in, err)
	}
	return out.Task
}

func titles(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func strPtr(s string) *string { return &s }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Title required", func(t *testing.T) {
		uc := newTestUseCase(t)
		_, err := uc.Create(ctx, task.CreateTaskInput{Priority: "high"})
		if !errors.Is(err, task.ErrTitleRequired) {
			t.Fatalf("expected ErrTitleRequired, got %v", err)
		}
		out, _ := uc.List(ctx, task.ListTasksInput{})
		if len(out.Tasks) != 0 {
			t.Errorf("store should be empty, got %d", len(out.Tasks))
		}
	})

	t.Run("Defaults", func(t *testing.T) {
		uc := newTestUseCase(t)
		tk := mustCreate(t, uc, task.CreateTaskInput{Title: "Write report"})

		if tk.ID == "" || tk.Priority != model.PriorityMedium || tk.Completed {
			t.Errorf("unexpected defaults: %+v", tk)
		}
		if tk.DueDate != nil || tk.Description != nil || tk.Assignee != nil {
			t.Errorf("expected nil optionals: %+v", tk)
		}
		if tk.Tags == nil || len(tk.Tags) != 0 {
			t.Errorf("tags = %#v, want empty", tk.Tags)
		}
		if tk.CreatedAt.IsZero() {
			t.Errorf("created_at not set")
		}
	})

	t.Run("Due date phrases", func(t *testing.T) {
		uc := newTestUseCase(t)
		tests := []struct {
			in   string
			want *time.Time
		}{
			{"2025-12-01", ptrTime(day(2025, time.December, 1))},
			{"tomorrow", ptrTime(day(2026, time.October, 20))},
			{"next week", ptrTime(day(2026, time.October, 26))},
			{"someday", nil},
		}
		for _, tt := range tests {
			tk := mustCreate(t, uc, task.CreateTaskInput{Title: tt.in, DueDate: tt.in})
			switch {
			case tt.want == nil && tk.DueDate != nil:
				t.Errorf("%q: due = %v, want none", tt.in, *tk.DueDate)
			case tt.want != nil && (tk.DueDate == nil || !tk.DueDate.Equal(*tt.want)):
				t.Errorf("%q: due = %v, want %v", tt.in, tk.DueDate, *tt.want)
			}
		}
	})

	t.Run("Unique ids", func(t *testing.T) {
		uc := newTestUseCase(t)
		seen := map[string]bool{}
		for i := 0; i < 20; i++ {
			tk := mustCreate(t, uc, task.CreateTaskInput{Title: "t"})
			if seen[tk.ID] {
				t.Fatalf("duplicate id %s", tk.ID)
			}
			seen[tk.ID] = true
		}
	})
}

func ptrTime(t time.Time) *time.Time { return &t }

func TestListFilters(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t)

	mustCreate(t, uc, task.CreateTaskInput{Title: "a", Priority: "high", Assignee: strPtr("ana"), Tags: []string{"work"}, DueDate: "2025-01-01"})
	mustCreate(t, uc, task.CreateTaskInput{Title: "b", Priority: "low", Completed: true, Tags: []string{"home"}, DueDate: "2025-01-03"})
	mustCreate(t, uc, task.CreateTaskInput{Title: "c", Priority: "high", Assignee: strPtr("bo"), Tags: []string{"work", "urgent"}})

	tests := []struct {
		name  string
		input task.ListTasksInput
		want  string
	}{
		{"Completed", task.ListTasksInput{Completed: model.Some(true), SortDir: "asc"}, "b"},
		{"Incomplete", task.ListTasksInput{Completed: model.Some(false), SortDir: "asc"}, "a,c"},
		{"Priority", task.ListTasksInput{Priority: model.Some("high"), SortDir: "asc"}, "a,c"},
		{"Assignee", task.ListTasksInput{Assignee: model.Some(strPtr("bo"))}, "c"},
		{"Unassigned", task.ListTasksInput{Assignee: model.Some[*string](nil)}, "b"},
		{"Tag", task.ListTasksInput{Tag: model.Some("work"), SortDir: "asc"}, "a,c"},
		{"Due before excludes undated", task.ListTasksInput{DueDateBefore: "2025-01-02"}, "a"},
		{"Due after inclusive", task.ListTasksInput{DueDateAfter: "2025-01-03"}, "b"},
		{"Unresolved bound is skipped", task.ListTasksInput{DueDateBefore: "whenever", SortDir: "asc"}, "a,b,c"},
		{"Combined", task.ListTasksInput{Priority: model.Some("high"), Tag: model.Some("urgent")}, "c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.List(ctx, tt.input)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if got := strings.Join(titles(out.Tasks), ","); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestListSorting(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t)

	mustCreate(t, uc, task.CreateTaskInput{Title: "jan1", Priority: "low", DueDate: "2025-01-01"})
	mustCreate(t, uc, task.CreateTaskInput{Title: "none", Priority: "urgent"})
	mustCreate(t, uc, task.CreateTaskInput{Title: "jan3", Priority: "high", DueDate: "2025-01-03"})

	tests := []struct {
		name string
		by   string
		dir  string
		want string
	}{
		{"Default is newest first", "", "", "jan3,none,jan1"},
		{"Created asc", "created_at", "asc", "jan1,none,jan3"},
		{"Due asc puts undated last", "due_date", "asc", "jan1,jan3,none"},
		{"Due desc puts undated last", "due_date", "desc", "jan3,jan1,none"},
		{"Due direction is case-insensitive", "due_date", "ASC", "jan1,jan3,none"},
		{"Priority asc", "priority", "asc", "jan3,jan1,none"},
		{"Priority desc", "priority", "desc", "none,jan1,jan3"},
		{"Unknown key keeps insertion order", "title", "asc", "jan1,none,jan3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.List(ctx, task.ListTasksInput{SortBy: tt.by, SortDir: tt.dir})
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if got := strings.Join(titles(out.Tasks), ","); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t)
	tk := mustCreate(t, uc, task.CreateTaskInput{Title: "draft", Assignee: strPtr("ana"), DueDate: "2025-05-01", Tags: []string{"x"}})

	out, err := uc.Update(ctx, task.UpdateTaskInput{
		ID:        tk.ID,
		Title:     model.Some("final"),
		Completed: model.Some(true),
		Assignee:  model.Some[*string](nil),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	got := out.Task
	if got.Title != "final" || !got.Completed || got.Assignee != nil {
		t.Errorf("unexpected update: %+v", got)
	}
	if got.DueDate == nil || !got.DueDate.Equal(*tk.DueDate) || len(got.Tags) != 1 || !got.CreatedAt.Equal(tk.CreatedAt) {
		t.Errorf("untouched fields changed: %+v", got)
	}

	out, err = uc.Update(ctx, task.UpdateTaskInput{ID: tk.ID, DueDate: model.Some("")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if out.Task.DueDate != nil {
		t.Errorf("expected due date to be cleared, got %v", out.Task.DueDate)
	}

	detail, err := uc.Detail(ctx, tk.ID)
	if err != nil || detail.Task.Title != "final" || detail.Task.DueDate != nil {
		t.Errorf("Detail = %+v, %v", detail.Task, err)
	}

	if _, err := uc.Update(ctx, task.UpdateTaskInput{ID: "nope", Title: model.Some("x")}); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
	if _, err := uc.Update(ctx, task.UpdateTaskInput{}); !errors.Is(err, task.ErrTaskIDRequired) {
		t.Errorf("expected ErrTaskIDRequired, got %v", err)
	}
}

func TestDeleteAndMarkCompleted(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t)
	tk := mustCreate(t, uc, task.CreateTaskInput{Title: "t"})

	for i := 0; i < 2; i++ {
		out, err := uc.MarkCompleted(ctx, tk.ID)
		if err != nil {
			t.Fatalf("MarkCompleted #%d: %v", i+1, err)
		}
		if !out.Task.Completed {
			t.Errorf("MarkCompleted #%d: completed = false", i+1)
		}
	}

	if _, err := uc.MarkCompleted(ctx, "missing"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
	if _, err := uc.Delete(ctx, "missing"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}

	out, err := uc.Delete(ctx, tk.ID)
	if err != nil || out.Task.ID != tk.ID {
		t.Fatalf("Delete = %+v, %v", out.Task, err)
	}
	list, _ := uc.List(ctx, task.ListTasksInput{})
	if len(list.Tasks) != 0 {
		t.Errorf("expected empty store, got %d", len(list.Tasks))
	}
}

func TestSummarize(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty store", func(t *testing.T) {
		out, err := newTestUseCase(t).Summarize(ctx)
		if err != nil {
			t.Fatalf("Summarize: %v", err)
		}
		if out.Summary != (task.Summary{}) {
			t.Errorf("expected zero summary, got %+v", out.Summary)
		}
	})

	t.Run("Buckets", func(t *testing.T) {
		uc := newTestUseCase(t)
		// Today is 2026-10-19.
		mustCreate(t, uc, task.CreateTaskInput{Title: "overdue", Priority: "high", DueDate: "2026-10-18"})
		mustCreate(t, uc, task.CreateTaskInput{Title: "today", Priority: "high", DueDate: "2026-10-19 18:00"})
		mustCreate(t, uc, task.CreateTaskInput{Title: "week edge", Priority: "low", DueDate: "2026-10-26"})
		mustCreate(t, uc, task.CreateTaskInput{Title: "later", DueDate: "2026-10-27"})
		mustCreate(t, uc, task.CreateTaskInput{Title: "done", DueDate: "2026-10-01", Completed: true})
		mustCreate(t, uc, task.CreateTaskInput{Title: "undated", Priority: "someday"})

		out, err := uc.Summarize(ctx)
		if err != nil {
			t.Fatalf("Summarize: %v", err)
		}
		want := task.Summary{
			TotalTasks:           6,
			CompletedTasks:       1,
			IncompleteTasks:      5,
			CompletionPercentage: 16.7,
			PriorityCounts:       task.PriorityCounts{High: 2, Medium: 2, Low: 1},
			Overdue:              1,
			DueToday:             1,
			DueThisWeek:          1,
		}
		if out.Summary != want {
			t.Errorf("got %+v\nwant %+v", out.Summary, want)
		}
	})
}
