package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/cache"
	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/registrar"
	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/repository/postgres"
)

func SetupAdminRoutes(e *echo.Echo, storage *postgres.Storage, updater *registrar.Updater, catalog *cache.Catalog, authMiddleware echo.MiddlewareFunc) {
	g := e.Group("/api/admin", authMiddleware, RequireAdmin(storage))

	g.POST("/refresh/:term", RefreshTerm(updater, catalog))
}

// RequireAdmin gates a route group on the is_admin flag of the
// authenticated user. The flag is read fresh from the store so a
// demoted admin loses access without waiting for token expiry.
func RequireAdmin(storage *postgres.Storage) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := c.Get("user_id").(int)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid user context"})
			}

			user, err := storage.GetUserByID(c.Request().Context(), userID)
			if err != nil || !user.IsAdmin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "admin access required"})
			}

			return next(c)
		}
	}
}

// RefreshTerm godoc
// @Summary Refresh a term's catalog from the registrar
// @Description Fetches every subject's courses from the registrar API, upserts them, and drops the term's cache snapshot
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param term path int true "Term code"
// @Success 200 {object} map[string]int
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/refresh/{term} [post]
func RefreshTerm(updater *registrar.Updater, catalog *cache.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		term, err := strconv.Atoi(c.Param("term"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid term"})
		}

		updated, err := updater.UpdateTerm(c.Request().Context(), term)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "registrar refresh failed"})
		}

		catalog.Invalidate(c.Request().Context(), term)

		return c.JSON(http.StatusOK, map[string]int{"updated": updated})
	}
}
