package memory

import (
	"sync"

	"assistant-tools/internal/model"
)

// implRepository keeps tasks in insertion order for the process lifetime.
type implRepository struct {
	mu    sync.RWMutex
	tasks []model.Task
}

// New creates an empty in-memory task repository.
func New() *implRepository {
	return &implRepository{
		tasks: make([]model.Task, 0),
	}
}
