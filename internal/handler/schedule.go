package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/domain"
	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/ical"
	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/schedule"
	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/utils"
)

// ScheduleStore is the slice of the persistence layer the schedule
// handlers need. *postgres.Storage satisfies it.
type ScheduleStore interface {
	GetUserSchedules(ctx context.Context, userID int) ([]domain.Schedule, error)
	CreateSchedule(ctx context.Context, userID int, req *domain.CreateScheduleRequest) (*domain.Schedule, error)
	GetScheduleByID(ctx context.Context, id int) (*domain.Schedule, error)
	DeleteSchedule(ctx context.Context, id int) error
	GetCourseByID(ctx context.Context, id string) (*domain.Course, error)
	AddCourseToSchedule(ctx context.Context, scheduleID int, courseID string, color int) error
	RemoveCourseFromSchedule(ctx context.Context, scheduleID int, courseID string) error
	GetEventByID(ctx context.Context, id int) (*domain.CustomEvent, error)
	AddEventToSchedule(ctx context.Context, scheduleID, eventID int) error
	RemoveEventFromSchedule(ctx context.Context, scheduleID, eventID int) error
}

func SetupScheduleRoutes(e *echo.Echo, storage ScheduleStore, agg *schedule.Aggregator, term ical.Term, authMiddleware echo.MiddlewareFunc) {
	g := e.Group("/api/schedules", authMiddleware)

	g.GET("", GetMySchedules(storage))
	g.POST("", CreateSchedule(storage))
	g.GET("/:id", GetScheduleDetail(storage, agg))
	g.DELETE("/:id", DeleteSchedule(storage))
	g.POST("/:id/courses", AddCourseToSchedule(storage))
	g.DELETE("/:id/courses/:courseId", RemoveCourseFromSchedule(storage))
	g.POST("/:id/events", AddEventToSchedule(storage))
	g.DELETE("/:id/events/:eventId", RemoveEventFromSchedule(storage))
	g.GET("/:id/conflicts", GetScheduleConflicts(storage, agg))
	g.GET("/:id/fit/:courseId", CheckCourseFit(storage, agg))
	g.GET("/:id/ical", ExportScheduleICal(storage, agg, term))
}

// ownedSchedule loads a schedule and checks the requester owns it.
// Reads additionally pass for public schedules.
func ownedSchedule(c echo.Context, storage ScheduleStore, allowPublic bool) (*domain.Schedule, error) {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid user context")
	}

	scheduleID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid schedule id")
	}

	sched, err := storage.GetScheduleByID(c.Request().Context(), scheduleID)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, "schedule not found")
	}

	if sched.UserID != userID && !(allowPublic && sched.IsPublic) {
		return nil, echo.NewHTTPError(http.StatusForbidden, "access denied")
	}

	return sched, nil
}

// GetMySchedules godoc
// @Summary Get all schedules for the current user
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Schedule
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /schedules [get]
func GetMySchedules(storage ScheduleStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := c.Get("user_id").(int)
		if !ok {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": utils.ErrValueConversion.Error()})
		}

		schedules, err := storage.GetUserSchedules(c.Request().Context(), userID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch schedules"})
		}

		return c.JSON(http.StatusOK, schedules)
	}
}

// CreateSchedule godoc
// @Summary Create a new schedule
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param schedule body domain.CreateScheduleRequest true "Schedule details"
// @Success 201 {object} domain.Schedule
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /schedules [post]
func CreateSchedule(storage ScheduleStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := c.Get("user_id").(int)
		if !ok {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": utils.ErrValueConversion.Error()})
		}

		var req domain.CreateScheduleRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		sched, err := storage.CreateSchedule(c.Request().Context(), userID, &req)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create schedule"})
		}

		return c.JSON(http.StatusCreated, sched)
	}
}

// GetScheduleDetail godoc
// @Summary Get a schedule with its courses, sections, events, and conflicts
// @Description The conflicts array lists every overlapping meeting pair, or the "No conflicts detected" sentinel
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Success 200 {object} domain.ScheduleDetail
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /schedules/{id} [get]
func GetScheduleDetail(storage ScheduleStore, agg *schedule.Aggregator) echo.HandlerFunc {
	return func(c echo.Context) error {
		sched, err := ownedSchedule(c, storage, true)
		if err != nil {
			return err
		}

		detail, err := agg.BuildDetail(c.Request().Context(), sched.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to build schedule detail"})
		}

		return c.JSON(http.StatusOK, detail)
	}
}

// DeleteSchedule godoc
// @Summary Delete a schedule
// @Tags schedules
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /schedules/{id} [delete]
func DeleteSchedule(storage ScheduleStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		sched, err := ownedSchedule(c, storage, false)
		if err != nil {
			return err
		}

		if err := storage.DeleteSchedule(c.Request().Context(), sched.ID); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to delete schedule"})
		}

		return c.JSON(http.StatusOK, map[string]string{"message": "schedule deleted"})
	}
}

// AddCourseToSchedule godoc
// @Summary Add a course to a schedule
// @Description The course must belong to the same term as the schedule
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Param course body domain.AddCourseRequest true "Course to add"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /schedules/{id}/courses [post]
func AddCourseToSchedule(storage ScheduleStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		sched, err := ownedSchedule(c, storage, false)
		if err != nil {
			return err
		}

		var req domain.AddCourseRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		course, err := storage.GetCourseByID(c.Request().Context(), req.CourseID)
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "course not found"})
		}

		// Cross-term schedules are meaningless; refuse them outright.
		if course.Term != sched.Term {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "course is not offered in this schedule's term"})
		}

		if err := storage.AddCourseToSchedule(c.Request().Context(), sched.ID, req.CourseID, req.Color); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to add course"})
		}

		return c.JSON(http.StatusOK, map[string]string{"message": "course added"})
	}
}

// RemoveCourseFromSchedule godoc
// @Summary Remove a course from a schedule
// @Tags schedules
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Param courseId path string true "Course ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /schedules/{id}/courses/{courseId} [delete]
func RemoveCourseFromSchedule(storage ScheduleStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		sched, err := ownedSchedule(c, storage, false)
		if err != nil {
			return err
		}

		if err := storage.RemoveCourseFromSchedule(c.Request().Context(), sched.ID, c.Param("courseId")); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to remove course"})
		}

		return c.JSON(http.StatusOK, map[string]string{"message": "course removed"})
	}
}

// AddEventToSchedule godoc
// @Summary Attach a custom event to a schedule
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Param event body domain.AddEventRequest true "Event to attach"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /schedules/{id}/events [post]
func AddEventToSchedule(storage ScheduleStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		sched, err := ownedSchedule(c, storage, false)
		if err != nil {
			return err
		}

		var req domain.AddEventRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		event, err := storage.GetEventByID(c.Request().Context(), req.EventID)
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "event not found"})
		}
		if event.UserID != sched.UserID {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "access denied"})
		}

		if err := storage.AddEventToSchedule(c.Request().Context(), sched.ID, req.EventID); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to add event"})
		}

		return c.JSON(http.StatusOK, map[string]string{"message": "event added"})
	}
}

// RemoveEventFromSchedule godoc
// @Summary Detach a custom event from a schedule
// @Tags schedules
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Param eventId path int true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /schedules/{id}/events/{eventId} [delete]
func RemoveEventFromSchedule(storage ScheduleStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		sched, err := ownedSchedule(c, storage, false)
		if err != nil {
			return err
		}

		eventID, err := strconv.Atoi(c.Param("eventId"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid event id"})
		}

		if err := storage.RemoveEventFromSchedule(c.Request().Context(), sched.ID, eventID); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to remove event"})
		}

		return c.JSON(http.StatusOK, map[string]string{"message": "event removed"})
	}
}

// GetScheduleConflicts godoc
// @Summary List every overlapping meeting pair on a schedule
// @Description Returns formatted conflict strings, or the "No conflicts detected" sentinel when the schedule is clean
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Success 200 {object} map[string][]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /schedules/{id}/conflicts [get]
func GetScheduleConflicts(storage ScheduleStore, agg *schedule.Aggregator) echo.HandlerFunc {
	return func(c echo.Context) error {
		sched, err := ownedSchedule(c, storage, true)
		if err != nil {
			return err
		}

		conflicts, err := agg.SummarizeConflicts(c.Request().Context(), sched.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to compute conflicts"})
		}

		return c.JSON(http.StatusOK, map[string][]string{"conflicts": conflicts})
	}
}

// CheckCourseFit godoc
// @Summary Test whether a course fits the schedule without conflicts
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Param courseId path string true "Candidate course ID"
// @Success 200 {object} domain.FitResult
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /schedules/{id}/fit/{courseId} [get]
func CheckCourseFit(storage ScheduleStore, agg *schedule.Aggregator) echo.HandlerFunc {
	return func(c echo.Context) error {
		sched, err := ownedSchedule(c, storage, true)
		if err != nil {
			return err
		}

		result, err := agg.CheckFit(c.Request().Context(), sched.ID, c.Param("courseId"))
		if err != nil {
			if errors.Is(err, utils.ErrNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "course not found"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to check fit"})
		}

		return c.JSON(http.StatusOK, result)
	}
}

// ExportScheduleICal godoc
// @Summary Export a schedule as an iCalendar feed
// @Tags schedules
// @Produce text/calendar
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Success 200 {string} string "iCalendar data"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /schedules/{id}/ical [get]
func ExportScheduleICal(storage ScheduleStore, agg *schedule.Aggregator, term ical.Term) echo.HandlerFunc {
	return func(c echo.Context) error {
		sched, err := ownedSchedule(c, storage, true)
		if err != nil {
			return err
		}

		detail, err := agg.BuildDetail(c.Request().Context(), sched.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to build schedule detail"})
		}

		c.Response().Header().Set(echo.HeaderContentType, "text/calendar")
		c.Response().WriteHeader(http.StatusOK)
		return ical.WriteSchedule(c.Response(), detail, term)
	}
}
