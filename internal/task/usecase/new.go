package usecase

import (
	"assistant-tools/internal/task/repository"
	"assistant-tools/pkg/datemath"
	pkgLog "assistant-tools/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	resolver *datemath.Resolver
}

// New creates a new task UseCase instance. resolver must use the task
// policy; its clock also stamps created_at and drives the summary.
func New(l pkgLog.Logger, repo repository.Repository, resolver *datemath.Resolver) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		resolver: resolver,
	}
}
