package memory

import (
	"sync"

	"assistant-tools/internal/model"
)

const idPrefix = "event_"

// implRepository keeps events in insertion order for the process lifetime.
type implRepository struct {
	mu     sync.RWMutex
	events []model.Event
	lastID int
}

// New creates an empty in-memory event repository.
func New() *implRepository {
	return &implRepository{
		events: make([]model.Event, 0),
	}
}
