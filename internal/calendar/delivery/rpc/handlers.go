package rpc

import (
	"context"

	"assistant-tools/internal/rpc"
	"assistant-tools/pkg/response"
)

func (h *handler) CreateEvent(ctx context.Context, args rpc.Args) response.Envelope {
	input, err := h.processCreateReq(args)
	if err != nil {
		return response.FromError(err)
	}

	output, err := h.uc.Create(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "calendar.delivery.CreateEvent: %v", err)
		return h.mapError(err, "")
	}
	return response.Success(keyEvent, newEventResp(output.Event))
}

func (h *handler) GetEvents(ctx context.Context, args rpc.Args) response.Envelope {
	input, err := h.processListReq(args)
	if err != nil {
		return response.FromError(err)
	}

	output, err := h.uc.List(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "calendar.delivery.GetEvents: %v", err)
		return h.mapError(err, "")
	}
	return response.Success(keyEvents, newEventListResp(output.Events))
}

func (h *handler) GetEvent(ctx context.Context, args rpc.Args) response.Envelope {
	id := args.Text("id")

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		return h.mapError(err, id)
	}
	return response.Success(keyEvent, newEventResp(output.Event))
}

func (h *handler) UpdateEvent(ctx context.Context, args rpc.Args) response.Envelope {
	input, err := h.processUpdateReq(args)
	if err != nil {
		return response.FromError(err)
	}

	output, err := h.uc.Update(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "calendar.delivery.UpdateEvent: %v", err)
		return h.mapError(err, input.ID)
	}
	return response.Success(keyEvent, newEventResp(output.Event))
}

func (h *handler) DeleteEvent(ctx context.Context, args rpc.Args) response.Envelope {
	id := args.Text("id")

	output, err := h.uc.Delete(ctx, id)
	if err != nil {
		return h.mapError(err, id)
	}
	return response.Success(keyDeletedEvent, newEventResp(output.Event))
}

func (h *handler) FindAvailableSlots(ctx context.Context, args rpc.Args) response.Envelope {
	input, err := h.processSlotsReq(args)
	if err != nil {
		return response.FromError(err)
	}

	output, err := h.uc.FindSlots(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "calendar.delivery.FindAvailableSlots: %v", err)
		return h.mapError(err, "")
	}
	return response.Success(keyAvailableSlots, newSlotsResp(output))
}

func (h *handler) ExportEventsICS(ctx context.Context, args rpc.Args) response.Envelope {
	input, err := h.processExportReq(args)
	if err != nil {
		return response.FromError(err)
	}

	output, err := h.uc.ExportICS(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "calendar.delivery.ExportEventsICS: %v", err)
		return h.mapError(err, "")
	}
	return response.Success(keyICS, output.ICS)
}

func (h *handler) ImportGoogleEvents(ctx context.Context, args rpc.Args) response.Envelope {
	input, err := h.processImportReq(args)
	if err != nil {
		return response.FromError(err)
	}

	output, err := h.uc.ImportGoogle(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "calendar.delivery.ImportGoogleEvents: %v", err)
		return h.mapError(err, "")
	}
	return response.Success(keyImported, newEventListResp(output.Events))
}

func (h *handler) PublishEvent(ctx context.Context, args rpc.Args) response.Envelope {
	id := args.Text("id")

	output, err := h.uc.Publish(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "calendar.delivery.PublishEvent: %v", err)
		return h.mapError(err, id)
	}
	return response.SuccessFields(publishResp{
		Event:    newEventResp(output.Event),
		HTMLLink: output.HTMLLink,
	})
}
