// Package export renders a parsed schedule record as ICS, CSV or JSON.
// Adapted to plain writers since there is no server: hosts decide where the
// bytes go.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/szyszomat/KiedySmieciKRK/internal/locale"
	"github.com/szyszomat/KiedySmieciKRK/internal/ocr"
)

const (
	icsProductID = "-//KiedySmieciKRK//Harmonogram//PL"
	icsTimezone  = "Europe/Warsaw"
)

// ReminderOptions configure optional VALARM blocks per event. Each field is
// an "HH:MM" local time; empty disables that reminder.
type ReminderOptions struct {
	TwoDaysBefore string
	OneDayBefore  string
	SameDay       string
}

// event is one flattened (date, category) pair ready for output.
type event struct {
	date     time.Time
	iso      string
	category string
	summary  string
}

// flatten turns the record's category map into date-ordered events. Falls
// back to the bare date list when no span carried a category.
func flatten(rec *ocr.ScheduleRecord, pack *locale.Pack) []event {
	var events []event
	for category, dates := range rec.Categories {
		summary := category
		if name, ok := pack.CategoryNames[category]; ok {
			summary = name
		}
		for _, d := range dates {
			t, err := time.Parse("2006-01-02", d.ISODate)
			if err != nil {
				continue
			}
			events = append(events, event{date: t, iso: d.ISODate, category: category, summary: summary})
		}
	}
	if len(events) == 0 {
		for _, d := range rec.Dates {
			t, err := time.Parse("2006-01-02", d.ISODate)
			if err != nil {
				continue
			}
			events = append(events, event{date: t, iso: d.ISODate, category: locale.CategoryOther, summary: "Wywóz odpadów"})
		}
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].iso != events[j].iso {
			return events[i].iso < events[j].iso
		}
		return events[i].category < events[j].category
	})
	return events
}

// WriteICS writes the record as an iCalendar file of all-day events.
func WriteICS(w io.Writer, rec *ocr.ScheduleRecord, pack *locale.Pack, opts ReminderOptions) error {
	location := strings.TrimSpace(rec.Address + " " + rec.HouseNumber)

	fmt.Fprintln(w, "BEGIN:VCALENDAR")
	fmt.Fprintln(w, "VERSION:2.0")
	fmt.Fprintf(w, "PRODID:%s\n", icsProductID)
	fmt.Fprintf(w, "X-WR-CALNAME:Harmonogram wywozu %s\n", location)
	fmt.Fprintf(w, "X-WR-TIMEZONE:%s\n", icsTimezone)
	fmt.Fprintln(w, "CALSCALE:GREGORIAN")

	for _, e := range flatten(rec, pack) {
		uid := fmt.Sprintf("%s-%s-%s@kiedysmiecikrk", e.iso, slug(e.category), slug(location))

		fmt.Fprintln(w, "BEGIN:VEVENT")
		fmt.Fprintf(w, "UID:%s\n", uid)
		fmt.Fprintf(w, "DTSTAMP:%s\n", time.Now().UTC().Format("20060102T150405Z"))
		fmt.Fprintf(w, "DTSTART;VALUE=DATE:%s\n", e.date.Format("20060102"))
		fmt.Fprintf(w, "DTEND;VALUE=DATE:%s\n", e.date.AddDate(0, 0, 1).Format("20060102"))
		fmt.Fprintf(w, "SUMMARY:%s\n", e.summary)
		fmt.Fprintf(w, "DESCRIPTION:Odbiór: %s przy %s\n", e.summary, location)
		fmt.Fprintf(w, "LOCATION:%s\n", location)

		if opts.TwoDaysBefore != "" {
			AddAlarm(w, e.date, 2, opts.TwoDaysBefore, e.summary)
		}
		if opts.OneDayBefore != "" {
			AddAlarm(w, e.date, 1, opts.OneDayBefore, e.summary)
		}
		if opts.SameDay != "" {
			AddAlarm(w, e.date, 0, opts.SameDay, e.summary)
		}

		fmt.Fprintln(w, "END:VEVENT")
	}

	fmt.Fprintln(w, "END:VCALENDAR")
	return nil
}

// AddAlarm adds an alarm/reminder block to an ICS event.
func AddAlarm(w io.Writer, eventDate time.Time, daysBefore int, alarmTime string, description string) {
	parts := strings.Split(alarmTime, ":")
	if len(parts) != 2 {
		return
	}
	hour, err1 := strconv.Atoi(parts[0])
	minute, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return
	}

	// The event starts at 00:00 on eventDate; the trigger is relative to
	// that, formatted as an ISO 8601 duration (negative when before).
	alarmDate := eventDate.AddDate(0, 0, -daysBefore)
	alarmDateTime := time.Date(alarmDate.Year(), alarmDate.Month(), alarmDate.Day(), hour, minute, 0, 0, time.UTC)
	eventStart := time.Date(eventDate.Year(), eventDate.Month(), eventDate.Day(), 0, 0, 0, 0, time.UTC)

	totalMinutes := int(alarmDateTime.Sub(eventStart).Minutes())
	isNegative := totalMinutes < 0
	if isNegative {
		totalMinutes = -totalMinutes
	}

	days := totalMinutes / (24 * 60)
	remainingMinutes := totalMinutes % (24 * 60)
	hours := remainingMinutes / 60
	minutes := remainingMinutes % 60

	var trigger string
	if isNegative {
		trigger = fmt.Sprintf("-P%dDT%dH%dM", days, hours, minutes)
	} else {
		trigger = fmt.Sprintf("P%dDT%dH%dM", days, hours, minutes)
	}

	fmt.Fprintln(w, "BEGIN:VALARM")
	fmt.Fprintln(w, "ACTION:DISPLAY")
	fmt.Fprintf(w, "DESCRIPTION:Przypomnienie: %s\n", description)
	fmt.Fprintf(w, "TRIGGER:%s\n", trigger)
	fmt.Fprintln(w, "END:VALARM")
}

// WriteCSV writes the record as CSV rows of date, category and weekday.
func WriteCSV(w io.Writer, rec *ocr.ScheduleRecord, pack *locale.Pack) error {
	fmt.Fprintln(w, "Data,Kategoria,Dzień tygodnia")
	for _, e := range flatten(rec, pack) {
		weekday := e.date.Weekday().String()
		if name, ok := pack.WeekdayNames[e.date.Weekday()]; ok {
			weekday = name
		}
		fmt.Fprintf(w, "%s,%s,%s\n", e.iso, e.summary, weekday)
	}
	return nil
}

// WriteJSON writes the full record as indented JSON.
func WriteJSON(w io.Writer, rec *ocr.ScheduleRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '/', r == '-':
			return '-'
		default:
			return -1
		}
	}, s)
}
