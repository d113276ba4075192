package usecase

import (
	"context"
	"math"

	"assistant-tools/internal/model"
	"assistant-tools/internal/task"
	repo "assistant-tools/internal/task/repository"
)

const daysInWeek = 7

// Summarize aggregates the whole store. "Today" is read from the clock on
// every call.
func (uc *implUseCase) Summarize(ctx context.Context) (task.SummaryOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Summarize ListTasks: %v", err)
		return task.SummaryOutput{}, err
	}

	today := uc.resolver.Today()
	weekEnd := today.AddDate(0, 0, daysInWeek)

	var s task.Summary
	s.TotalTasks = len(tasks)
	for _, t := range tasks {
		switch t.Priority {
		case model.PriorityHigh:
			s.PriorityCounts.High++
		case model.PriorityMedium:
			s.PriorityCounts.Medium++
		case model.PriorityLow:
			s.PriorityCounts.Low++
		}

		if t.Completed {
			s.CompletedTasks++
			continue
		}
		if t.DueDate == nil {
			continue
		}

		day := uc.resolver.StartOfDay(*t.DueDate)
		switch {
		case day.Before(today):
			s.Overdue++
		case day.Equal(today):
			s.DueToday++
		case !day.After(weekEnd):
			s.DueThisWeek++
		}
	}

	s.IncompleteTasks = s.TotalTasks - s.CompletedTasks
	if s.TotalTasks > 0 {
		s.CompletionPercentage = math.Round(float64(s.CompletedTasks)/float64(s.TotalTasks)*1000) / 10
	}

	return task.SummaryOutput{Summary: s}, nil
}
