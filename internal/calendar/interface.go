package calendar

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Event CRUD
	Create(ctx context.Context, input CreateEventInput) (CreateEventOutput, error)
	List(ctx context.Context, input ListEventsInput) (ListEventsOutput, error)
	Detail(ctx context.Context, id string) (DetailEventOutput, error)
	Update(ctx context.Context, input UpdateEventInput) (UpdateEventOutput, error)
	Delete(ctx context.Context, id string) (DeleteEventOutput, error)

	// Availability
	FindSlots(ctx context.Context, input FindSlotsInput) (FindSlotsOutput, error)

	// Interop
	ExportICS(ctx context.Context, input ExportICSInput) (ExportICSOutput, error)
	ImportGoogle(ctx context.Context, input ImportGoogleInput) (ImportGoogleOutput, error)
	Publish(ctx context.Context, id string) (PublishEventOutput, error)
	GoogleEnabled() bool
}
