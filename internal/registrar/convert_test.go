package registrar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/domain"
	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/timeslot"
)

func TestDaysToValue(t *testing.T) {
	tests := []struct {
		days []string
		want int
	}{
		{[]string{"M"}, timeslot.Monday},
		{[]string{"M", "W"}, timeslot.Monday | timeslot.Wednesday},
		{[]string{"T", "Th"}, timeslot.Tuesday | timeslot.Thursday},
		{[]string{"M", "T", "W", "Th", "F"}, 31},
		{[]string{"Sa", "Su"}, timeslot.Saturday | timeslot.Sunday},
		{[]string{"X"}, 0},
		{nil, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DaysToValue(tt.days), "%v", tt.days)
	}
}

func TestTimeToValue(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		// 8:00 AM is the zero of the clock; each unit is 10 minutes.
		{"8:00 AM", 0},
		{"9:00 AM", 6},
		{"9:30 AM", 9},
		{"10:50 AM", 17},
		{"12:00 PM", 24},
		{"1:30 PM", 33},
		{"7:30 PM", 69},
		{"12:00 AM", -48},
		{"", timeslot.NullTime},
		{"TBA", timeslot.NullTime},
		{"13:xx PM", timeslot.NullTime},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TimeToValue(tt.in), "%q", tt.in)
	}
}

func TestFormatCourseStatus(t *testing.T) {
	open := Class{TypeName: "Lecture", PuCalcStatus: "Open"}
	closed := Class{TypeName: "Precept", PuCalcStatus: "Closed"}
	canceled := Class{TypeName: "Lecture", PuCalcStatus: "Canceled"}

	assert.Equal(t, domain.StatusOpen, FormatCourseStatus([]Class{open}))
	assert.Equal(t, domain.StatusClosed, FormatCourseStatus([]Class{open, closed}))
	assert.Equal(t, domain.StatusCanceled, FormatCourseStatus([]Class{canceled}))
	// A closed precept with an open precept sibling still counts open.
	openPrecept := Class{TypeName: "Precept", PuCalcStatus: "Open"}
	assert.Equal(t, domain.StatusOpen, FormatCourseStatus([]Class{open, closed, openPrecept}))
}

func TestFormatCourse(t *testing.T) {
	rc := DeptCourse{
		CourseID:      "002054",
		CatalogNumber: "226",
		Title:         "Algorithms and Data Structures",
		Crosslistings: []struct {
			Subject       string `json:"subject"`
			CatalogNumber string `json:"catalog_number"`
		}{
			{Subject: "COS", CatalogNumber: "226"},
			{Subject: "EGR", CatalogNumber: "226"},
		},
		Classes: []Class{
			{
				Section:      "L01",
				TypeName:     "Lecture",
				PuCalcStatus: "Open",
				Capacity:     "300",
				Enrollment:   "250",
				Schedule: struct {
					StartDate string    `json:"start_date"`
					EndDate   string    `json:"end_date"`
					Meetings  []Meeting `json:"meetings"`
				}{
					Meetings: []Meeting{
						{StartTime: "11:00 AM", EndTime: "12:20 PM", Days: []string{"T", "Th"}},
					},
				},
			},
		},
	}

	course, sections := formatCourse("COS", rc, 1262)

	assert.Equal(t, "002054-1262", course.ID)
	assert.Equal(t, "COS226 / EGR226", course.Code)
	assert.Equal(t, 1262, course.Term)
	assert.Equal(t, domain.StatusOpen, course.Status)

	if assert.Len(t, sections, 1) {
		s := sections[0]
		assert.Equal(t, "Lecture", s.Title)
		assert.Equal(t, "L01", s.Num)
		assert.Equal(t, timeslot.Tuesday|timeslot.Thursday, s.Days)
		assert.Equal(t, 18, s.StartTime)
		assert.Equal(t, 26, s.EndTime)
		assert.Equal(t, 300, s.Cap)
		assert.Equal(t, 250, s.Tot)
	}
}

func TestFormatCourseKeepsMeetingless(t *testing.T) {
	rc := DeptCourse{
		CourseID:      "009999",
		CatalogNumber: "598",
		Title:         "Independent Work",
		Classes: []Class{
			{Section: "C01", TypeName: "Class", PuCalcStatus: "Open"},
		},
	}

	_, sections := formatCourse("COS", rc, 1262)

	// No meeting pattern still yields a section, flagged unscheduled.
	if assert.Len(t, sections, 1) {
		s := sections[0]
		assert.Equal(t, "C01", s.Num)
		assert.Equal(t, 0, s.Days)
		assert.Equal(t, timeslot.NullTime, s.StartTime)
		assert.Equal(t, timeslot.NullTime, s.EndTime)
		assert.Nil(t, s.Room)
	}
}

func TestFormatInstructors(t *testing.T) {
	rc := DeptCourse{
		Instructors: []struct {
			EmplID    string `json:"emplid"`
			FirstName string `json:"first_name"`
			LastName  string `json:"last_name"`
			FullName  string `json:"full_name"`
		}{
			{EmplID: "100200300", FirstName: "Robert", LastName: "Sedgewick", FullName: "Robert Sedgewick"},
		},
	}

	instructors := formatInstructors(rc)
	if assert.Len(t, instructors, 1) {
		assert.Equal(t, "100200300", instructors[0].EmplID)
		assert.Equal(t, "Robert Sedgewick", instructors[0].Name)
		assert.Nil(t, instructors[0].NetID)
	}
}
