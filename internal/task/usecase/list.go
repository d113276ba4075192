package usecase

import (
	"context"
	"sort"
	"strings"

	"assistant-tools/internal/model"
	"assistant-tools/internal/task"
	repo "assistant-tools/internal/task/repository"
)

// List filters then sorts tasks. Sorting is stable, so ties keep insertion
// order.
func (uc *implUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	opt := repo.ListTasksOptions{
		Completed: input.Completed,
		Priority:  input.Priority,
		Assignee:  input.Assignee,
		Tag:       input.Tag,
	}

	var err error
	if opt.DueBefore, err = uc.resolveDue(input.DueDateBefore); err != nil {
		return task.ListTasksOutput{}, err
	}
	if opt.DueAfter, err = uc.resolveDue(input.DueDateAfter); err != nil {
		return task.ListTasksOutput{}, err
	}

	tasks, err := uc.repo.ListTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.List ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}

	sortTasks(tasks, input.SortBy, input.SortDir)
	return task.ListTasksOutput{Tasks: tasks}, nil
}

func sortTasks(tasks []model.Task, by, dir string) {
	if by == "" {
		by = task.SortByCreatedAt
	}
	desc := !strings.EqualFold(strings.TrimSpace(dir), task.SortAsc)

	var less func(a, b model.Task) bool
	switch by {
	case task.SortByDueDate:
		// Undated tasks go last in both directions.
		less = func(a, b model.Task) bool {
			switch {
			case a.DueDate == nil:
				return false
			case b.DueDate == nil:
				return true
			case desc:
				return a.DueDate.After(*b.DueDate)
			default:
				return a.DueDate.Before(*b.DueDate)
			}
		}
	case task.SortByPriority:
		less = func(a, b model.Task) bool {
			ra, rb := model.PriorityRank(a.Priority), model.PriorityRank(b.Priority)
			if desc {
				return ra > rb
			}
			return ra < rb
		}
	case task.SortByCreatedAt:
		less = func(a, b model.Task) bool {
			if desc {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.CreatedAt.Before(b.CreatedAt)
		}
	default:
		return
	}

	sort.SliceStable(tasks, func(i, j int) bool { return less(tasks[i], tasks[j]) })
}
