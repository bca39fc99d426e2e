// Package export renders collections into interchange formats: an iCal
// feed for schedule entries and an Excel workbook for member rosters.
package export

import (
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/clubhub-app/clubhub/internal/app/models"
)

const calendarProductID = "-//ClubHub//Schedule//EN"

// EventCalendar serializes schedule entries into an iCal feed. Entries
// without a parseable time become all-day events; entries with a
// malformed date are skipped, matching the date-ordered views.
func EventCalendar(entries []models.MeetingSchedule) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(calendarProductID)

	for _, entry := range entries {
		date, ok := entry.DateValue()
		if !ok {
			continue
		}

		event := cal.AddEvent(entry.ID)
		event.SetCreatedTime(entry.CreatedAt)
		event.SetSummary(entry.Title)
		if entry.Description != "" {
			event.SetDescription(entry.Description)
		}
		if entry.Location != "" {
			event.SetLocation(entry.Location)
		}
		if entry.TicketURL != "" {
			event.SetURL(entry.TicketURL)
		}

		if start, ok := startTime(date, entry.Time); ok {
			event.SetStartAt(start)
			event.SetEndAt(start.Add(time.Hour))
		} else {
			event.SetAllDayStartAt(date)
			event.SetAllDayEndAt(date.AddDate(0, 0, 1))
		}
	}

	return cal.Serialize()
}

// startTime combines a meeting date with its HH:MM time field
func startTime(date time.Time, hhmm string) (time.Time, bool) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), true
}
