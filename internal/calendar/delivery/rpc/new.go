package rpc

import (
	"context"

	"assistant-tools/internal/calendar"
	"assistant-tools/internal/rpc"
	"assistant-tools/pkg/log"
	"assistant-tools/pkg/response"
)

// Handler is the public interface for the calendar function delivery layer.
type Handler interface {
	CreateEvent(ctx context.Context, args rpc.Args) response.Envelope
	GetEvents(ctx context.Context, args rpc.Args) response.Envelope
	GetEvent(ctx context.Context, args rpc.Args) response.Envelope
	UpdateEvent(ctx context.Context, args rpc.Args) response.Envelope
	DeleteEvent(ctx context.Context, args rpc.Args) response.Envelope
	FindAvailableSlots(ctx context.Context, args rpc.Args) response.Envelope
	ExportEventsICS(ctx context.Context, args rpc.Args) response.Envelope
	ImportGoogleEvents(ctx context.Context, args rpc.Args) response.Envelope
	PublishEvent(ctx context.Context, args rpc.Args) response.Envelope
}

type handler struct {
	l  log.Logger
	uc calendar.UseCase
}

// New creates a new calendar function handler.
func New(l log.Logger, uc calendar.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
