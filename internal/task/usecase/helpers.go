package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"assistant-tools/internal/model"
	"assistant-tools/internal/task"
	repo "assistant-tools/internal/task/repository"
)

// resolveDue returns nil when text carries no recognised date.
func (uc *implUseCase) resolveDue(text string) (*time.Time, error) {
	t, ok, err := uc.resolver.Resolve(text)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &t, nil
}

// existing loads a task, translating a miss into ErrTaskNotFound.
func (uc *implUseCase) existing(ctx context.Context, id string) (model.Task, error) {
	if id == "" {
		return model.Task{}, task.ErrTaskIDRequired
	}
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.existing GetOneTask: %v", err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, notFound(id)
	}
	return t, nil
}

func notFound(id string) error {
	return fmt.Errorf("%w: %s", task.ErrTaskNotFound, id)
}

func mapRepoError(err error, id string) error {
	if errors.Is(err, repo.ErrNotFound) {
		return notFound(id)
	}
	return err
}
