package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"assistant-tools/internal/model"
	"assistant-tools/internal/task/repository"
)

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	t := model.Task{
		ID:          uuid.NewString(),
		Title:       opt.Title,
		Description: opt.Description,
		DueDate:     opt.DueDate,
		Priority:    opt.Priority,
		Completed:   opt.Completed,
		Assignee:    opt.Assignee,
		Tags:        opt.Tags,
		CreatedAt:   opt.CreatedAt,
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	t = t.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks = append(r.tasks, t)
	return t.Clone(), nil
}

func (r *implRepository) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(opt.ID); i >= 0 {
		return r.tasks[i].Clone(), nil
	}
	return model.Task{}, nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if matches(t, opt) {
			out = append(out, t.Clone())
		}
	}
	return out, nil
}

func (r *implRepository) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(opt.ID)
	if i < 0 {
		return model.Task{}, fmt.Errorf("%w: task %s", repository.ErrNotFound, opt.ID)
	}

	t := r.tasks[i]
	opt.Title.Apply(&t.Title)
	opt.Description.Apply(&t.Description)
	opt.DueDate.Apply(&t.DueDate)
	opt.Priority.Apply(&t.Priority)
	opt.Completed.Apply(&t.Completed)
	opt.Assignee.Apply(&t.Assignee)
	opt.Tags.Apply(&t.Tags)
	if t.Tags == nil {
		t.Tags = []string{}
	}

	r.tasks[i] = t.Clone()
	return t.Clone(), nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Task{}, fmt.Errorf("%w: task %s", repository.ErrNotFound, id)
	}

	t := r.tasks[i]
	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	return t, nil
}

// indexOf must be called with the lock held.
func (r *implRepository) indexOf(id string) int {
	for i, t := range r.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func matches(t model.Task, opt repository.ListTasksOptions) bool {
	if opt.Completed.Set && t.Completed != opt.Completed.Value {
		return false
	}
	if opt.Priority.Set && t.Priority != opt.Priority.Value {
		return false
	}
	if opt.Assignee.Set && !sameString(t.Assignee, opt.Assignee.Value) {
		return false
	}
	if opt.Tag.Set && !slices.Contains(t.Tags, opt.Tag.Value) {
		return false
	}
	if opt.DueBefore != nil && (t.DueDate == nil || t.DueDate.After(*opt.DueBefore)) {
		return false
	}
	if opt.DueAfter != nil && (t.DueDate == nil || t.DueDate.Before(*opt.DueAfter)) {
		return false
	}
	return true
}

func sameString(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
