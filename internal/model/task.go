package model

import "time"

// Priority labels with special sort rank. Any other label is accepted and
// ranks after these.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Task is a to-do item held by the task store.
type Task struct {
	ID          string     // Random UUID
	Title       string     // Required
	Description *string    // nil when unset
	DueDate     *time.Time // nil when unset
	Priority    string     // Open label set, "medium" by default
	Completed   bool
	Assignee    *string  // nil when unassigned
	Tags        []string // Never nil
	CreatedAt   time.Time
}

// Clone returns a deep copy of the task.
func (t Task) Clone() Task {
	out := t
	out.Description = cloneString(t.Description)
	out.Assignee = cloneString(t.Assignee)
	out.Tags = append([]string{}, t.Tags...)
	if t.DueDate != nil {
		d := *t.DueDate
		out.DueDate = &d
	}
	return out
}

// PriorityRank maps high, medium and low to 0, 1 and 2; anything else is 3.
func PriorityRank(p string) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}
