package rpc

import "assistant-tools/internal/rpc"

const (
	FuncCreateEvent        = "create_event"
	FuncGetEvents          = "get_events"
	FuncGetEvent           = "get_event"
	FuncUpdateEvent        = "update_event"
	FuncDeleteEvent        = "delete_event"
	FuncFindAvailableSlots = "find_available_slots"
	FuncExportEventsICS    = "export_events_ics"
	FuncImportGoogleEvents = "import_google_events"
	FuncPublishEvent       = "publish_event"
)

const (
	typeString  = "string"
	typeNumber  = "number"
	dateTimeFmt = "YYYY-MM-DD HH:MM, YYYY-MM-DD, or phrases like 'tomorrow 2:30pm'"
)

// RegisterFunctions adds the calendar functions to r. The Google functions
// are only added when the integration is configured.
func RegisterFunctions(r *rpc.Registry, h *handler) {
	r.Register(
		rpc.Function{
			Name:        FuncCreateEvent,
			Description: "Create a calendar event. End time defaults to one hour after start.",
			Params: []rpc.Param{
				{Name: "title", Type: typeString, Description: "Event title"},
				{Name: "start_time", Type: typeString, Description: "Start time: " + dateTimeFmt},
				{Name: "end_time", Type: typeString, Description: "End time: " + dateTimeFmt},
				{Name: "attendees", Type: typeString, Description: "Comma separated attendee list"},
				{Name: "location", Type: typeString, Description: "Event location"},
				{Name: "description", Type: typeString, Description: "Event description"},
			},
			Handler: h.CreateEvent,
		},
		rpc.Function{
			Name:        FuncGetEvents,
			Description: "List events whose start falls between start_date and end_date (inclusive).",
			Params: []rpc.Param{
				{Name: "start_date", Type: typeString, Description: "Lower bound: " + dateTimeFmt},
				{Name: "end_date", Type: typeString, Description: "Upper bound: " + dateTimeFmt},
			},
			Handler: h.GetEvents,
		},
		rpc.Function{
			Name:        FuncGetEvent,
			Description: "Get a single event by ID.",
			Params: []rpc.Param{
				{Name: "id", Type: typeString, Description: "Event ID", Required: true},
			},
			Handler: h.GetEvent,
		},
		rpc.Function{
			Name:        FuncUpdateEvent,
			Description: "Update the supplied fields of an event.",
			Params: []rpc.Param{
				{Name: "id", Type: typeString, Description: "Event ID", Required: true},
				{Name: "title", Type: typeString, Description: "New title"},
				{Name: "start_time", Type: typeString, Description: "New start time: " + dateTimeFmt},
				{Name: "end_time", Type: typeString, Description: "New end time: " + dateTimeFmt},
				{Name: "attendees", Type: typeString, Description: "Comma separated attendee list"},
				{Name: "location", Type: typeString, Description: "New location"},
				{Name: "description", Type: typeString, Description: "New description"},
			},
			Handler: h.UpdateEvent,
		},
		rpc.Function{
			Name:        FuncDeleteEvent,
			Description: "Delete an event by ID.",
			Params: []rpc.Param{
				{Name: "id", Type: typeString, Description: "Event ID", Required: true},
			},
			Handler: h.DeleteEvent,
		},
		rpc.Function{
			Name:        FuncFindAvailableSlots,
			Description: "Find the first free slot of the requested length in each gap of the working day.",
			Params: []rpc.Param{
				{Name: "date", Type: typeString, Description: "Day to search: " + dateTimeFmt},
				{Name: "duration_minutes", Type: typeNumber, Description: "Slot length in minutes"},
			},
			Handler: h.FindAvailableSlots,
		},
		rpc.Function{
			Name:        FuncExportEventsICS,
			Description: "Export events as an iCalendar (.ics) document. Selection matches get_events.",
			Params: []rpc.Param{
				{Name: "start_date", Type: typeString, Description: "Lower bound: " + dateTimeFmt},
				{Name: "end_date", Type: typeString, Description: "Upper bound: " + dateTimeFmt},
			},
			Handler: h.ExportEventsICS,
		},
	)

	if !h.uc.GoogleEnabled() {
		return
	}

	r.Register(
		rpc.Function{
			Name:        FuncImportGoogleEvents,
			Description: "Import upcoming events from Google Calendar.",
			Params: []rpc.Param{
				{Name: "days", Type: typeNumber, Description: "Number of days ahead to import"},
				{Name: "max_results", Type: typeNumber, Description: "Maximum number of events"},
			},
			Handler: h.ImportGoogleEvents,
		},
		rpc.Function{
			Name:        FuncPublishEvent,
			Description: "Publish a local event to Google Calendar.",
			Params: []rpc.Param{
				{Name: "id", Type: typeString, Description: "Event ID", Required: true},
			},
			Handler: h.PublishEvent,
		},
	)
}
