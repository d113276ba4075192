package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-ical"

	"assistant-tools/internal/calendar"
	"assistant-tools/internal/model"
)

const (
	icsVersion   = "2.0"
	icsProductID = "-//assistant-tools//calendar//EN"
	icsUIDDomain = "assistant-tools"
	// Floating local time, no TZID and no trailing Z.
	icsFloatingLayout = "20060102T150405"
)

// ExportICS encodes the events selected like List as a VCALENDAR.
func (uc *implUseCase) ExportICS(ctx context.Context, input calendar.ExportICSInput) (calendar.ExportICSOutput, error) {
	out, err := uc.List(ctx, calendar.ListEventsInput{StartDate: input.StartDate, EndDate: input.EndDate})
	if err != nil {
		return calendar.ExportICSOutput{}, err
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, icsVersion)
	cal.Props.SetText(ical.PropProductID, icsProductID)

	stamp := uc.resolver.Absolute(uc.resolver.Now()).UTC()
	for _, ev := range out.Events {
		cal.Children = append(cal.Children, toVEvent(ev, stamp))
	}

	var sb strings.Builder
	if err := ical.NewEncoder(&sb).Encode(cal); err != nil {
		uc.l.Errorf(ctx, "calendar.usecase.ExportICS Encode: %v", err)
		return calendar.ExportICSOutput{}, fmt.Errorf("encode calendar: %w", err)
	}

	return calendar.ExportICSOutput{ICS: sb.String(), Count: len(out.Events)}, nil
}

func toVEvent(ev model.Event, stamp time.Time) *ical.Component {
	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, fmt.Sprintf("%s@%s", ev.ID, icsUIDDomain))
	ve.Props.SetText(ical.PropSummary, ev.Title)
	ve.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
	ve.Props.Set(floatingProp(ical.PropDateTimeStart, ev.StartTime))
	ve.Props.Set(floatingProp(ical.PropDateTimeEnd, ev.EndTime))

	if ev.Description != nil {
		ve.Props.SetText(ical.PropDescription, *ev.Description)
	}
	if ev.Location != nil {
		ve.Props.SetText(ical.PropLocation, *ev.Location)
	}
	for _, attendee := range ev.Attendees {
		p := ical.NewProp(ical.PropAttendee)
		p.Value = "mailto:" + attendee
		ve.Props.Add(p)
	}
	return ve
}

func floatingProp(name string, t time.Time) *ical.Prop {
	p := ical.NewProp(name)
	p.Value = t.Format(icsFloatingLayout)
	return p
}
