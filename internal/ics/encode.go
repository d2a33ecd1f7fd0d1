// Package ics serializes feed events into an iCalendar document.
package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/taigrr/obsidian-ics/internal/types"
)

const prodID = "-//obsidian-ics//diary feed//EN"

// Encode renders events as a complete VCALENDAR document, one VEVENT per
// event. Every event is all-day with a one day duration, CONFIRMED, and
// transparent to free/busy lookups.
//
// UIDs and DTSTAMP are derived from the event data rather than the clock,
// so encoding the same event list twice produces the same document and
// calendar clients do not see spurious updates.
func Encode(events []types.Event) (string, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)

	for i, ev := range events {
		start, err := eventDate(ev)
		if err != nil {
			return "", fmt.Errorf("event %d (%q): %w", i, ev.Title, err)
		}

		e := cal.AddEvent(fmt.Sprintf("%04d%02d%02d-%d@obsidian-ics", ev.Year, ev.Month, ev.Day, i))
		e.SetDtStampTime(start)
		e.SetSummary(ev.Title)
		if ev.URL != "" {
			e.SetURL(ev.URL)
		}
		if ev.Description != "" {
			e.SetDescription(ev.Description)
		}
		e.SetAllDayStartAt(start)
		e.SetProperty(ical.ComponentProperty(ical.PropertyDuration), "P1D")
		e.SetStatus(ical.ObjectStatusConfirmed)
		e.SetTimeTransparency(ical.TransparencyTransparent)
		e.SetProperty(ical.ComponentProperty("X-MICROSOFT-CDO-BUSYSTATUS"), "FREE")
	}

	return cal.Serialize(), nil
}

// eventDate validates the event's date fields. time.Date normalizes
// overflow (February 30th becomes March 2nd), which would silently move a
// diary entry; reject such dates instead.
func eventDate(ev types.Event) (time.Time, error) {
	if ev.Month < 1 || ev.Month > 12 || ev.Day < 1 || ev.Day > 31 {
		return time.Time{}, fmt.Errorf("invalid date %04d-%02d-%02d", ev.Year, ev.Month, ev.Day)
	}
	t := time.Date(ev.Year, time.Month(ev.Month), ev.Day, 0, 0, 0, 0, time.UTC)
	if t.Year() != ev.Year || int(t.Month()) != ev.Month || t.Day() != ev.Day {
		return time.Time{}, fmt.Errorf("invalid date %04d-%02d-%02d", ev.Year, ev.Month, ev.Day)
	}
	return t, nil
}
