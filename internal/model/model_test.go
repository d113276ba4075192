package model

import (
	"testing"
	"time"
)

func TestEventClone(t *testing.T) {
	loc := "Room 1"
	e := Event{ID: "event_1", Attendees: []string{"a"}, Location: &loc}

	c := e.Clone()
	c.Attendees[0] = "b"
	*c.Location = "Room 2"

	if e.Attendees[0] != "a" || *e.Location != "Room 1" {
		t.Errorf("clone shares state with original: %+v", e)
	}
}

func TestTaskClone(t *testing.T) {
	due := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)
	task := Task{ID: "t", Tags: []string{"x"}, DueDate: &due}

	c := task.Clone()
	c.Tags[0] = "y"
	*c.DueDate = due.AddDate(0, 0, 1)

	if task.Tags[0] != "x" || !task.DueDate.Equal(due) {
		t.Errorf("clone shares state with original: %+v", task)
	}
}

func TestPriorityRank(t *testing.T) {
	tests := map[string]int{"high": 0, "medium": 1, "low": 2, "urgent": 3, "": 3, "HIGH": 3}
	for in, want := range tests {
		if got := PriorityRank(in); got != want {
			t.Errorf("PriorityRank(%q) = %d, want %d", in, got, want)
		}
	}
}
