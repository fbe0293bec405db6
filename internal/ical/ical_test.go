package ical

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/domain"
	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/timeslot"
)

func TestRRuleFor(t *testing.T) {
	until := time.Date(2026, 12, 12, 0, 0, 0, 0, time.UTC)

	assert.Equal(t,
		"FREQ=WEEKLY;BYDAY=MO,WE;INTERVAL=1;UNTIL=20261212T000000Z",
		rruleFor(timeslot.Monday|timeslot.Wednesday, until))
	assert.Equal(t,
		"FREQ=WEEKLY;BYDAY=TU,TH;INTERVAL=1;UNTIL=20261212T000000Z",
		rruleFor(timeslot.Tuesday|timeslot.Thursday, until))
}

func TestClockToTime(t *testing.T) {
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 9, 7, 8, 0, 0, 0, time.UTC), clockToTime(day, 0))
	assert.Equal(t, time.Date(2026, 9, 7, 11, 0, 0, 0, time.UTC), clockToTime(day, 18))
	assert.Equal(t, time.Date(2026, 9, 7, 13, 30, 0, 0, time.UTC), clockToTime(day, 33))
}

func TestFirstMeetingDay(t *testing.T) {
	// 2026-09-01 is a Tuesday.
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, start, firstMeetingDay(start, timeslot.Tuesday))
	assert.Equal(t, start.AddDate(0, 0, 1), firstMeetingDay(start, timeslot.Wednesday))
	// The next Monday is six days out.
	assert.Equal(t, start.AddDate(0, 0, 6), firstMeetingDay(start, timeslot.Monday))
	assert.Equal(t, start.AddDate(0, 0, 1), firstMeetingDay(start, timeslot.Monday|timeslot.Wednesday))
}

func TestWriteSchedule(t *testing.T) {
	room := "McCosh 50"
	detail := &domain.ScheduleDetail{
		Schedule: domain.Schedule{ID: 1, Title: "Fall Draft", Term: 1262},
		Courses:  []domain.Course{{ID: "cos226-1262", Code: "COS226"}},
		Sections: []domain.Section{
			{
				ID: 1, CourseID: "cos226-1262", Title: "Lecture", Num: "L01", Room: &room,
				Days: timeslot.Tuesday | timeslot.Thursday, StartTime: 18, EndTime: 26,
			},
			// Unscheduled; must not produce an event.
			{
				ID: 2, CourseID: "cos226-1262", Title: "Precept", Num: "P01",
				Days: timeslot.Monday, StartTime: timeslot.NullTime, EndTime: timeslot.NullTime,
			},
		},
		Events: []domain.CustomEvent{
			{ID: 9, Title: "Orchestra", Times: domain.EventTimes{
				"friday": {{Start: 66, End: 78}},
			}},
		},
	}

	term := Term{
		Start: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 12, 12, 0, 0, 0, 0, time.UTC),
	}

	var sb strings.Builder
	err := WriteSchedule(&sb, detail, term)
	assert.NoError(t, err)

	out := sb.String()
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "SUMMARY:COS226 (Lecture)")
	assert.Contains(t, out, "LOCATION:McCosh 50")
	assert.Contains(t, out, "RRULE:FREQ=WEEKLY;BYDAY=TU,TH;INTERVAL=1;UNTIL=20261212T000000Z")
	assert.Contains(t, out, "SUMMARY:Orchestra")
	assert.NotContains(t, out, "Precept")
	// One VEVENT per scheduled meeting.
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
}
