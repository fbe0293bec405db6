package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/domain"
	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/repository/postgres"
	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/timeslot"
	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/utils"
)

func SetupEventRoutes(e *echo.Echo, storage *postgres.Storage, authMiddleware echo.MiddlewareFunc) {
	g := e.Group("/api/events", authMiddleware)

	g.GET("", GetMyEvents(storage))
	g.POST("", CreateEvent(storage))
	g.PATCH("/:id", UpdateEvent(storage))
	g.DELETE("/:id", DeleteEvent(storage))
}

// validateTimes rejects event time maps with unknown weekday names or
// inverted intervals before they reach the store.
func validateTimes(times domain.EventTimes) string {
	for day, intervals := range times {
		if timeslot.DayBit(day) == 0 {
			return "unknown weekday: " + day
		}
		for _, iv := range intervals {
			if iv.Start < 0 || iv.Start >= iv.End {
				return "invalid interval on " + day
			}
		}
	}
	return ""
}

// ownedEvent loads an event and checks the requester owns it.
func ownedEvent(c echo.Context, storage *postgres.Storage) (*domain.CustomEvent, error) {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid user context")
	}

	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}

	event, err := storage.GetEventByID(c.Request().Context(), eventID)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, "event not found")
	}
	if event.UserID != userID {
		return nil, echo.NewHTTPError(http.StatusForbidden, "access denied")
	}

	return event, nil
}

// GetMyEvents godoc
// @Summary Get all custom events for the current user
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.CustomEvent
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /events [get]
func GetMyEvents(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := c.Get("user_id").(int)
		if !ok {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": utils.ErrValueConversion.Error()})
		}

		events, err := storage.GetUserEvents(c.Request().Context(), userID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch events"})
		}

		return c.JSON(http.StatusOK, events)
	}
}

// CreateEvent godoc
// @Summary Create a custom event
// @Description Times map lowercase weekday names to lists of start/end intervals
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body domain.CreateEventRequest true "Event details"
// @Success 201 {object} domain.CustomEvent
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /events [post]
func CreateEvent(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := c.Get("user_id").(int)
		if !ok {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": utils.ErrValueConversion.Error()})
		}

		var req domain.CreateEventRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		if msg := validateTimes(req.Times); msg != "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
		}

		event, err := storage.CreateEvent(c.Request().Context(), userID, &req)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create event"})
		}

		return c.JSON(http.StatusCreated, event)
	}
}

// UpdateEvent godoc
// @Summary Update a custom event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param event body domain.UpdateEventRequest true "Fields to update"
// @Success 200 {object} domain.CustomEvent
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{id} [patch]
func UpdateEvent(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		event, err := ownedEvent(c, storage)
		if err != nil {
			return err
		}

		var req domain.UpdateEventRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if req.Times != nil {
			if msg := validateTimes(*req.Times); msg != "" {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
			}
		}

		updated, err := storage.UpdateEvent(c.Request().Context(), event.ID, &req)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to update event"})
		}

		return c.JSON(http.StatusOK, updated)
	}
}

// DeleteEvent godoc
// @Summary Delete a custom event and its schedule attachments
// @Tags events
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{id} [delete]
func DeleteEvent(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		event, err := ownedEvent(c, storage)
		if err != nil {
			return err
		}

		if err := storage.DeleteEvent(c.Request().Context(), event.ID); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to delete event"})
		}

		return c.JSON(http.StatusOK, map[string]string{"message": "event deleted"})
	}
}
