package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/cache"
	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/domain"
	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/repository/postgres"
)

func SetupCourseRoutes(e *echo.Echo, storage *postgres.Storage, catalog *cache.Catalog) {
	e.GET("/api/courses", GetCourses(catalog))
	e.GET("/api/courses/:id", GetCourseByID(storage))
	e.GET("/api/courses/:id/sections", GetCourseSections(storage))
}

// GetCourses godoc
// @Summary Get the course catalog for a term
// @Description Get all courses and their sections for a term, served from the snapshot cache
// @Tags courses
// @Accept json
// @Produce json
// @Param term query int true "Term code (e.g., 1262)"
// @Success 200 {object} cache.Snapshot
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /courses [get]
func GetCourses(catalog *cache.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		term, err := strconv.Atoi(c.QueryParam("term"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid term"})
		}

		snapshot, err := catalog.GetTerm(c.Request().Context(), term)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch courses"})
		}

		return c.JSON(http.StatusOK, snapshot)
	}
}

// GetCourseByID godoc
// @Summary Get course by ID
// @Description Get detailed information about a specific course, including instructors
// @Tags courses
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} domain.CourseWithSections
// @Failure 404 {object} map[string]string
// @Router /courses/{id} [get]
func GetCourseByID(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")

		course, err := storage.GetCourseByID(c.Request().Context(), id)
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "course not found"})
		}

		sections, err := storage.GetSectionsForCourse(c.Request().Context(), id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch sections"})
		}

		instructors, err := storage.GetInstructorsForCourse(c.Request().Context(), id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch instructors"})
		}

		return c.JSON(http.StatusOK, domain.CourseWithSections{
			Course:      *course,
			Sections:    sections,
			Instructors: instructors,
		})
	}
}

// GetCourseSections godoc
// @Summary Get all sections for a course
// @Description Get all sections (lectures, precepts, labs) for a specific course
// @Tags courses
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {array} domain.Section
// @Failure 500 {object} map[string]string
// @Router /courses/{id}/sections [get]
func GetCourseSections(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		sections, err := storage.GetSectionsForCourse(c.Request().Context(), c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch sections"})
		}

		return c.JSON(http.StatusOK, sections)
	}
}
