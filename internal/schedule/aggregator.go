// Package schedule bridges persisted course/section/event rows to the
// conflict engine and shapes the results for the API layer. Every call
// takes an explicit schedule id and recomputes from the current store
// snapshot; nothing is cached between calls.
package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/conflict"
	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/domain"
	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/timeslot"
)

// Store is the slice of the persistence layer the aggregator needs.
// *postgres.Storage satisfies it.
type Store interface {
	GetScheduleByID(ctx context.Context, id int) (*domain.Schedule, error)
	GetScheduleCourses(ctx context.Context, scheduleID int) ([]domain.Course, error)
	GetSectionsForCourse(ctx context.Context, courseID string) ([]domain.Section, error)
	GetScheduleEvents(ctx context.Context, scheduleID int) ([]domain.CustomEvent, error)
	GetCourseByID(ctx context.Context, id string) (*domain.Course, error)
}

type Aggregator struct {
	store  Store
	logger *slog.Logger
}

func NewAggregator(store Store, logger *slog.Logger) *Aggregator {
	return &Aggregator{store: store, logger: logger}
}

// weekdays fixes the expansion order of custom event times so conflict
// reports stay deterministic (map iteration order is not).
var weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// ResolveScheduleMeetings flattens a schedule into the meeting list the
// conflict engine consumes: one meeting per (course, section) pair plus
// one per (custom event, weekday, interval). Sections and intervals
// without usable times are skipped, not zero-filled.
func (a *Aggregator) ResolveScheduleMeetings(ctx context.Context, scheduleID int) ([]conflict.Meeting, error) {
	if _, err := a.store.GetScheduleByID(ctx, scheduleID); err != nil {
		return nil, err
	}

	courses, err := a.store.GetScheduleCourses(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	var meetings []conflict.Meeting
	for _, course := range courses {
		sections, err := a.store.GetSectionsForCourse(ctx, course.ID)
		if err != nil {
			return nil, err
		}
		meetings = append(meetings, a.sectionMeetings(course, sections)...)
	}

	events, err := a.store.GetScheduleEvents(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	for _, event := range events {
		meetings = append(meetings, a.eventMeetings(event)...)
	}

	return meetings, nil
}

func (a *Aggregator) sectionMeetings(course domain.Course, sections []domain.Section) []conflict.Meeting {
	var meetings []conflict.Meeting
	for _, s := range sections {
		slot := timeslot.TimeSlot{Days: s.Days, StartTime: s.StartTime, EndTime: s.EndTime}
		if !slot.Valid() {
			a.logger.Warn("skipping unschedulable section",
				"course", course.Code, "section", s.Num,
				"start", s.StartTime, "end", s.EndTime)
			continue
		}
		meetings = append(meetings, conflict.Meeting{
			OwnerID:    strconv.Itoa(s.ID),
			OwnerLabel: fmt.Sprintf("%s (%s)", course.Code, s.Title),
			Slot:       slot,
		})
	}
	return meetings
}

// eventMeetings expands a custom event's per-day time map into one
// meeting per (weekday, interval), all sharing the event's id.
func (a *Aggregator) eventMeetings(event domain.CustomEvent) []conflict.Meeting {
	ownerID := "event-" + strconv.Itoa(event.ID)
	var meetings []conflict.Meeting
	for _, day := range weekdays {
		for _, iv := range event.Times[day] {
			slot := timeslot.TimeSlot{Days: timeslot.DayBit(day), StartTime: iv.Start, EndTime: iv.End}
			if !slot.Valid() {
				a.logger.Warn("skipping malformed event interval",
					"event", event.Title, "day", day, "start", iv.Start, "end", iv.End)
				continue
			}
			meetings = append(meetings, conflict.Meeting{
				OwnerID:    ownerID,
				OwnerLabel: event.Title,
				Slot:       slot,
			})
		}
	}
	return meetings
}

// CheckFit tests whether a candidate course can join the schedule
// without colliding with anything already on it. When it cannot, the
// result names each collision so the UI can show a specific message.
func (a *Aggregator) CheckFit(ctx context.Context, scheduleID int, candidateCourseID string) (*domain.FitResult, error) {
	occupied, err := a.ResolveScheduleMeetings(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	course, err := a.store.GetCourseByID(ctx, candidateCourseID)
	if err != nil {
		return nil, err
	}
	sections, err := a.store.GetSectionsForCourse(ctx, course.ID)
	if err != nil {
		return nil, err
	}
	candidate := a.sectionMeetings(*course, sections)

	// Same-owner pairs are skipped so re-checking a course already on
	// the schedule does not report it colliding with itself.
	result := &domain.FitResult{}
	for _, c := range candidate {
		for _, o := range occupied {
			if c.OwnerID == o.OwnerID {
				continue
			}
			if timeslot.Overlaps(c.Slot, o.Slot) {
				result.ConflictingWith = append(result.ConflictingWith, conflict.Pair{A: c, B: o}.String())
			}
		}
	}
	result.Fits = len(result.ConflictingWith) == 0
	return result, nil
}

// SummarizeConflicts renders every pairwise conflict on the schedule,
// or the no-conflict sentinel when there are none.
func (a *Aggregator) SummarizeConflicts(ctx context.Context, scheduleID int) ([]string, error) {
	meetings, err := a.ResolveScheduleMeetings(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	return conflict.FindAllConflicts(meetings).Strings(), nil
}

// BuildDetail assembles the full serving shape for one schedule:
// courses, their sections, custom events, and the conflict strings.
func (a *Aggregator) BuildDetail(ctx context.Context, scheduleID int) (*domain.ScheduleDetail, error) {
	sched, err := a.store.GetScheduleByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	courses, err := a.store.GetScheduleCourses(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	var sections []domain.Section
	var meetings []conflict.Meeting
	for _, course := range courses {
		cs, err := a.store.GetSectionsForCourse(ctx, course.ID)
		if err != nil {
			return nil, err
		}
		sections = append(sections, cs...)
		meetings = append(meetings, a.sectionMeetings(course, cs)...)
	}

	events, err := a.store.GetScheduleEvents(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	for _, event := range events {
		meetings = append(meetings, a.eventMeetings(event)...)
	}

	return &domain.ScheduleDetail{
		Schedule:  *sched,
		Courses:   courses,
		Sections:  sections,
		Events:    events,
		Conflicts: conflict.FindAllConflicts(meetings).Strings(),
	}, nil
}
