package rpc

import (
	"context"

	"assistant-tools/internal/rpc"
	"assistant-tools/internal/task"
	"assistant-tools/pkg/log"
	"assistant-tools/pkg/response"
)

// Handler is the public interface for the task function delivery layer.
type Handler interface {
	CreateTask(ctx context.Context, args rpc.Args) response.Envelope
	GetTasks(ctx context.Context, args rpc.Args) response.Envelope
	GetTask(ctx context.Context, args rpc.Args) response.Envelope
	UpdateTask(ctx context.Context, args rpc.Args) response.Envelope
	DeleteTask(ctx context.Context, args rpc.Args) response.Envelope
	MarkCompleted(ctx context.Context, args rpc.Args) response.Envelope
	GetTaskSummary(ctx context.Context, args rpc.Args) response.Envelope
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new task function handler.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
