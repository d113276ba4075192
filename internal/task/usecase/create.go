package usecase

import (
	"context"

	"assistant-tools/internal/model"
	"assistant-tools/internal/task"
	repo "assistant-tools/internal/task/repository"
)

// Create validates and stores a new task.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	if input.Title == "" {
		return task.CreateTaskOutput{}, task.ErrTitleRequired
	}

	due, err := uc.resolveDue(input.DueDate)
	if err != nil {
		return task.CreateTaskOutput{}, err
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     due,
		Priority:    priority,
		Completed:   input.Completed,
		Assignee:    input.Assignee,
		Tags:        input.Tags,
		CreatedAt:   uc.resolver.Now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create CreateTask: %v", err)
		return task.CreateTaskOutput{}, err
	}

	return task.CreateTaskOutput{Task: t}, nil
}
