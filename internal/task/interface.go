package task

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Task CRUD
	Create(ctx context.Context, input CreateTaskInput) (CreateTaskOutput, error)
	List(ctx context.Context, input ListTasksInput) (ListTasksOutput, error)
	Detail(ctx context.Context, id string) (DetailTaskOutput, error)
	Update(ctx context.Context, input UpdateTaskInput) (UpdateTaskOutput, error)
	Delete(ctx context.Context, id string) (DeleteTaskOutput, error)

	// Status and reporting
	MarkCompleted(ctx context.Context, id string) (MarkCompletedOutput, error)
	Summarize(ctx context.Context) (SummaryOutput, error)
}
