// Package ical renders a schedule as an iCalendar feed: one weekly
// recurring VEVENT per section meeting and per custom-event interval.
package ical

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/domain"
	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/timeslot"
)

// Term bounds the recurrence window of every event in the feed.
type Term struct {
	Start time.Time
	End   time.Time
}

// byDay maps day bits to RRULE BYDAY codes in bit order.
var byDay = []struct {
	bit  int
	code string
}{
	{timeslot.Monday, "MO"},
	{timeslot.Tuesday, "TU"},
	{timeslot.Wednesday, "WE"},
	{timeslot.Thursday, "TH"},
	{timeslot.Friday, "FR"},
	{timeslot.Saturday, "SA"},
	{timeslot.Sunday, "SU"},
}

// rruleFor builds a weekly RRULE covering every set day bit, bounded
// by the term's end date.
func rruleFor(days int, until time.Time) string {
	var codes []string
	for _, d := range byDay {
		if days&d.bit != 0 {
			codes = append(codes, d.code)
		}
	}
	return fmt.Sprintf("FREQ=WEEKLY;BYDAY=%s;INTERVAL=1;UNTIL=%s",
		strings.Join(codes, ","), until.UTC().Format("20060102T150405Z"))
}

// clockToTime places an integer clock value on a calendar date. The
// clock counts 10-minute units from 8:00 AM.
func clockToTime(day time.Time, value int) time.Time {
	minutes := (value + 48) * 10
	return time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, day.Location())
}

// firstMeetingDay returns the first date on or after the term start
// whose weekday appears in the day bitmask. Monday is bit 0.
func firstMeetingDay(start time.Time, days int) time.Time {
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		bit := 1 << ((int(day.Weekday()) + 6) % 7)
		if days&bit != 0 {
			return day
		}
	}
	return start
}

type entry struct {
	title    string
	location string
	slot     timeslot.TimeSlot
}

func buildEvent(e entry, term Term) *ical.Component {
	day := firstMeetingDay(term.Start, e.slot.Days)

	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, uuid.NewString())
	ve.Props.SetText(ical.PropSummary, e.title)
	ve.Props.SetDateTime(ical.PropDateTimeStamp, time.Now().UTC())
	ve.Props.SetDateTime(ical.PropDateTimeStart, clockToTime(day, e.slot.StartTime))
	ve.Props.SetDateTime(ical.PropDateTimeEnd, clockToTime(day, e.slot.EndTime))
	if e.location != "" {
		ve.Props.SetText(ical.PropLocation, e.location)
	}

	rrule := ical.NewProp(ical.PropRecurrenceRule)
	rrule.Value = rruleFor(e.slot.Days, term.End)
	ve.Props.Set(rrule)

	return ve
}

// WriteSchedule encodes the schedule's meetings as an iCalendar feed.
// Sections without usable times are silently left out, matching how
// the conflict engine treats them.
func WriteSchedule(w io.Writer, detail *domain.ScheduleDetail, term Term) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//tiger-junction//EN")

	codes := make(map[string]string, len(detail.Courses))
	for _, c := range detail.Courses {
		codes[c.ID] = c.Code
	}

	for _, s := range detail.Sections {
		slot := timeslot.TimeSlot{Days: s.Days, StartTime: s.StartTime, EndTime: s.EndTime}
		if !slot.Valid() || slot.Days == 0 {
			continue
		}
		location := ""
		if s.Room != nil {
			location = *s.Room
		}
		cal.Children = append(cal.Children, buildEvent(entry{
			title:    fmt.Sprintf("%s (%s)", codes[s.CourseID], s.Title),
			location: location,
			slot:     slot,
		}, term))
	}

	for _, event := range detail.Events {
		for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"} {
			for _, iv := range event.Times[day] {
				slot := timeslot.TimeSlot{Days: timeslot.DayBit(day), StartTime: iv.Start, EndTime: iv.End}
				if !slot.Valid() {
					continue
				}
				cal.Children = append(cal.Children, buildEvent(entry{
					title: event.Title,
					slot:  slot,
				}, term))
			}
		}
	}

	return ical.NewEncoder(w).Encode(cal)
}
