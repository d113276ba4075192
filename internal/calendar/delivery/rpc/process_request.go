package rpc

import (
	"assistant-tools/internal/calendar"
	"assistant-tools/internal/model"
	"assistant-tools/internal/rpc"
)

// processCreateReq decodes create_event arguments. Absent or null title
// falls back to the default; empty times fall back to the defaults.
func (h *handler) processCreateReq(args rpc.Args) (calendar.CreateEventInput, error) {
	var in calendar.CreateEventInput
	var err error

	if args.Has("title") && !args.IsNull("title") {
		title, err := args.String("title")
		if err != nil {
			return in, err
		}
		in.Title = &title
	}
	if in.StartTime, _, err = args.NonEmptyString("start_time"); err != nil {
		return in, err
	}
	if in.EndTime, _, err = args.NonEmptyString("end_time"); err != nil {
		return in, err
	}
	if in.Attendees, err = args.StringList("attendees"); err != nil {
		return in, err
	}
	if in.Location, err = args.NullableString("location"); err != nil {
		return in, err
	}
	if in.Description, err = args.NullableString("description"); err != nil {
		return in, err
	}
	return in, nil
}

func (h *handler) processListReq(args rpc.Args) (calendar.ListEventsInput, error) {
	var in calendar.ListEventsInput
	var err error

	if in.StartDate, _, err = args.NonEmptyString("start_date"); err != nil {
		return in, err
	}
	if in.EndDate, _, err = args.NonEmptyString("end_date"); err != nil {
		return in, err
	}
	return in, nil
}

// processUpdateReq keeps only the keys present in args.
func (h *handler) processUpdateReq(args rpc.Args) (calendar.UpdateEventInput, error) {
	in := calendar.UpdateEventInput{ID: args.Text("id")}

	for key, dst := range map[string]*model.Optional[string]{
		"title":      &in.Title,
		"start_time": &in.StartTime,
		"end_time":   &in.EndTime,
	} {
		if !args.Has(key) {
			continue
		}
		v, err := args.String(key)
		if err != nil {
			return in, err
		}
		*dst = model.Some(v)
	}

	if args.Has("attendees") {
		attendees, err := args.StringList("attendees")
		if err != nil {
			return in, err
		}
		in.Attendees = model.Some(attendees)
	}

	for key, dst := range map[string]*model.Optional[*string]{
		"location":    &in.Location,
		"description": &in.Description,
	} {
		if !args.Has(key) {
			continue
		}
		v, err := args.NullableString(key)
		if err != nil {
			return in, err
		}
		*dst = model.Some(v)
	}

	return in, nil
}

func (h *handler) processSlotsReq(args rpc.Args) (calendar.FindSlotsInput, error) {
	var in calendar.FindSlotsInput
	var err error

	if in.Date, _, err = args.NonEmptyString("date"); err != nil {
		return in, err
	}
	if args.Has("duration_minutes") && !args.IsNull("duration_minutes") {
		minutes, err := args.Int("duration_minutes")
		if err != nil {
			return in, err
		}
		in.DurationMinutes = model.Some(minutes)
	}
	return in, nil
}

func (h *handler) processExportReq(args rpc.Args) (calendar.ExportICSInput, error) {
	list, err := h.processListReq(args)
	if err != nil {
		return calendar.ExportICSInput{}, err
	}
	return calendar.ExportICSInput{StartDate: list.StartDate, EndDate: list.EndDate}, nil
}

func (h *handler) processImportReq(args rpc.Args) (calendar.ImportGoogleInput, error) {
	var in calendar.ImportGoogleInput
	var err error

	if args.Has("days") && !args.IsNull("days") {
		if in.Days, err = args.Int("days"); err != nil {
			return in, err
		}
	}
	if args.Has("max_results") && !args.IsNull("max_results") {
		if in.MaxResults, err = args.Int("max_results"); err != nil {
			return in, err
		}
	}
	return in, nil
}
