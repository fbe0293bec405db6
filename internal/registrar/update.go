package registrar

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/domain"
)

// Store is the slice of persistence the updater writes through.
type Store interface {
	UpsertCourse(ctx context.Context, course *domain.Course, sections []domain.Section, instructors []domain.Instructor) error
}

// Updater drives a full refresh of one term from the registrar into
// the store.
type Updater struct {
	client *Client
	store  Store
	logger *slog.Logger
}

func NewUpdater(client *Client, store Store, logger *slog.Logger) *Updater {
	return &Updater{client: client, store: store, logger: logger}
}

// UpdateTerm fetches every subject's courses for a term and upserts
// them. Individual course failures are logged and skipped so one bad
// record cannot abort a whole refresh.
func (u *Updater) UpdateTerm(ctx context.Context, term int) (int, error) {
	subjects, err := u.client.GetTermCourses(ctx, term)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, subject := range subjects {
		for _, rc := range subject.Courses {
			course, sections := formatCourse(subject.Code, rc, term)
			if err := u.store.UpsertCourse(ctx, course, sections, formatInstructors(rc)); err != nil {
				u.logger.Error("failed to upsert course",
					"course", course.Code, "term", term, "error", err)
				continue
			}
			updated++
		}
		u.logger.Info("subject refreshed", "subject", subject.Code, "term", term)
	}
	return updated, nil
}

// formatCourse maps one registrar course onto our rows: a course plus
// one section per (class, meeting pattern).
func formatCourse(subject string, rc DeptCourse, term int) (*domain.Course, []domain.Section) {
	course := &domain.Course{
		ID:           rc.CourseID + "-" + strconv.Itoa(term),
		ListingID:    rc.CourseID,
		Term:         term,
		Code:         courseCode(subject, rc),
		Title:        rc.Title,
		Description:  rc.Detail.Description,
		Status:       FormatCourseStatus(rc.Classes),
		GradingBasis: "NAU",
	}

	var sections []domain.Section
	for _, class := range rc.Classes {
		capacity, _ := strconv.Atoi(class.Capacity)
		enrolled, _ := strconv.Atoi(class.Enrollment)
		meetings := class.Schedule.Meetings
		// A class with no meeting pattern still gets one row with null
		// times so it renders as unscheduled instead of vanishing.
		if len(meetings) == 0 {
			meetings = make([]Meeting, 1)
		}
		for _, m := range meetings {
			var room *string
			if m.Building != nil && m.Room != "" {
				r := m.Building.Name + " " + m.Room
				room = &r
			}
			sections = append(sections, domain.Section{
				CourseID:  course.ID,
				Title:     class.TypeName,
				Num:       class.Section,
				Room:      room,
				Tot:       enrolled,
				Cap:       capacity,
				Days:      DaysToValue(m.Days),
				StartTime: TimeToValue(m.StartTime),
				EndTime:   TimeToValue(m.EndTime),
				Status:    FormatSectionStatus(class.PuCalcStatus),
			})
		}
	}
	return course, sections
}

func formatInstructors(rc DeptCourse) []domain.Instructor {
	var instructors []domain.Instructor
	for _, in := range rc.Instructors {
		instructors = append(instructors, domain.Instructor{
			EmplID:   in.EmplID,
			Name:     in.FirstName + " " + in.LastName,
			FullName: in.FullName,
		})
	}
	return instructors
}

// courseCode joins the primary listing with its crosslistings, e.g.
// "COS126 / EGR126".
func courseCode(subject string, rc DeptCourse) string {
	codes := []string{subject + rc.CatalogNumber}
	for _, x := range rc.Crosslistings {
		code := x.Subject + x.CatalogNumber
		if code != codes[0] {
			codes = append(codes, code)
		}
	}
	return strings.Join(codes, " / ")
}
