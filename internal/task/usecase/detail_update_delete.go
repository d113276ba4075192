package usecase

import (
	"context"
	"time"

	"assistant-tools/internal/model"
	"assistant-tools/internal/task"
	repo "assistant-tools/internal/task/repository"
)

// Detail retrieves a single task by ID.
func (uc *implUseCase) Detail(ctx context.Context, id string) (task.DetailTaskOutput, error) {
	t, err := uc.existing(ctx, id)
	if err != nil {
		return task.DetailTaskOutput{}, err
	}
	return task.DetailTaskOutput{Task: t}, nil
}

// Update overwrites the supplied fields only.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	if _, err := uc.existing(ctx, input.ID); err != nil {
		return task.UpdateTaskOutput{}, err
	}

	opt := repo.UpdateTaskOptions{
		ID:          input.ID,
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Completed:   input.Completed,
		Assignee:    input.Assignee,
		Tags:        input.Tags,
	}
	if input.DueDate.Set {
		due, err := uc.resolveDue(input.DueDate.Value)
		if err != nil {
			return task.UpdateTaskOutput{}, err
		}
		opt.DueDate = model.Some[*time.Time](due)
	}

	t, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Update UpdateTask: %v", err)
		return task.UpdateTaskOutput{}, mapRepoError(err, input.ID)
	}
	return task.UpdateTaskOutput{Task: t}, nil
}

// Delete removes a task and returns its last state.
func (uc *implUseCase) Delete(ctx context.Context, id string) (task.DeleteTaskOutput, error) {
	if id == "" {
		return task.DeleteTaskOutput{}, task.ErrTaskIDRequired
	}

	t, err := uc.repo.DeleteTask(ctx, id)
	if err != nil {
		err = mapRepoError(err, id)
		uc.l.Warnf(ctx, "task.usecase.Delete DeleteTask: %v", err)
		return task.DeleteTaskOutput{}, err
	}
	return task.DeleteTaskOutput{Task: t}, nil
}

// MarkCompleted forces completed to true regardless of its prior value.
func (uc *implUseCase) MarkCompleted(ctx context.Context, id string) (task.MarkCompletedOutput, error) {
	if id == "" {
		return task.MarkCompletedOutput{}, task.ErrTaskIDRequired
	}

	t, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:        id,
		Completed: model.Some(true),
	})
	if err != nil {
		err = mapRepoError(err, id)
		uc.l.Warnf(ctx, "task.usecase.MarkCompleted UpdateTask: %v", err)
		return task.MarkCompletedOutput{}, err
	}
	return task.MarkCompletedOutput{Task: t}, nil
}
