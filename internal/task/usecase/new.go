package usecase

import (
	"shopfloor-tasks/internal/task/repository"
	pkgLog "shopfloor-tasks/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.TaskRepository
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.TaskRepository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
