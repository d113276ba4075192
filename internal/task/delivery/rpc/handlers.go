package rpc

import (
	"context"

	"assistant-tools/internal/rpc"
	"assistant-tools/pkg/response"
)

func (h *handler) CreateTask(ctx context.Context, args rpc.Args) response.Envelope {
	input, err := h.processCreateReq(args)
	if err != nil {
		return response.FromError(err)
	}

	output, err := h.uc.Create(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "task.delivery.CreateTask: %v", err)
		return h.mapError(err, "")
	}
	return response.Success(keyTask, newTaskResp(output.Task))
}

func (h *handler) GetTasks(ctx context.Context, args rpc.Args) response.Envelope {
	input, err := h.processListReq(args)
	if err != nil {
		return response.FromError(err)
	}

	output, err := h.uc.List(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "task.delivery.GetTasks: %v", err)
		return h.mapError(err, "")
	}
	return response.Success(keyTasks, newTaskListResp(output.Tasks))
}

func (h *handler) GetTask(ctx context.Context, args rpc.Args) response.Envelope {
	id := args.Text("id")

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		return h.mapError(err, id)
	}
	return response.Success(keyTask, newTaskResp(output.Task))
}

func (h *handler) UpdateTask(ctx context.Context, args rpc.Args) response.Envelope {
	input, err := h.processUpdateReq(args)
	if err != nil {
		return response.FromError(err)
	}

	output, err := h.uc.Update(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "task.delivery.UpdateTask: %v", err)
		return h.mapError(err, input.ID)
	}
	return response.Success(keyTask, newTaskResp(output.Task))
}

func (h *handler) DeleteTask(ctx context.Context, args rpc.Args) response.Envelope {
	id := args.Text("id")

	output, err := h.uc.Delete(ctx, id)
	if err != nil {
		return h.mapError(err, id)
	}
	return response.Success(keyDeletedTask, newTaskResp(output.Task))
}

func (h *handler) MarkCompleted(ctx context.Context, args rpc.Args) response.Envelope {
	id := args.Text("id")

	output, err := h.uc.MarkCompleted(ctx, id)
	if err != nil {
		return h.mapError(err, id)
	}
	return response.Success(keyTask, newTaskResp(output.Task))
}

func (h *handler) GetTaskSummary(ctx context.Context, args rpc.Args) response.Envelope {
	output, err := h.uc.Summarize(ctx)
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.GetTaskSummary: %v", err)
		return h.mapError(err, "")
	}
	return response.Success(keySummary, newSummaryResp(output.Summary))
}
