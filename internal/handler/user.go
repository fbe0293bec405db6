package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/domain"
	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/repository/postgres"
	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/utils"
)

func SetupUserRoutes(e *echo.Echo, storage *postgres.Storage, authMiddleware echo.MiddlewareFunc) {
	e.POST("/api/auth/register", Register(storage))
	e.POST("/api/auth/login", Login(storage))

	e.GET("/api/users/me", GetCurrentUser(storage), authMiddleware)
}

// Register godoc
// @Summary Register new user
// @Description Create a new user account keyed by netid
// @Tags auth
// @Accept json
// @Produce json
// @Param user body domain.RegisterRequest true "Registration details"
// @Success 201 {object} domain.AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /auth/register [post]
func Register(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req domain.RegisterRequest

		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		if !strings.HasSuffix(req.Email, "@princeton.edu") {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid email format"})
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)

		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to hash password"})
		}

		user, err := storage.CreateUser(c.Request().Context(), &req, string(hashedPassword))

		if err != nil {
			return c.JSON(http.StatusConflict, map[string]string{"error": "netid already exists"})
		}

		token, err := utils.GenerateToken(user.ID, user.NetID)

		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to generate token"})
		}

		response := domain.AuthResponse{
			Token: token,
			User:  *user,
		}

		return c.JSON(http.StatusCreated, response)
	}
}

// Login godoc
// @Summary Login user
// @Description Authenticate a user and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body domain.LoginRequest true "Login credentials"
// @Success 200 {object} domain.AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /auth/login [post]
func Login(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req domain.LoginRequest

		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		user, err := storage.GetUserByNetID(c.Request().Context(), req.NetID)

		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "no user found with such netid"})
		}

		err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))

		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "wrong password"})
		}

		token, err := utils.GenerateToken(user.ID, user.NetID)

		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to generate token"})
		}

		user.PasswordHash = ""
		response := domain.AuthResponse{
			Token: token,
			User:  *user,
		}

		return c.JSON(http.StatusOK, response)
	}
}

// GetCurrentUser godoc
// @Summary Get current user profile
// @Description Get the profile of the authenticated user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.User
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /users/me [get]
func GetCurrentUser(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := c.Get("user_id").(int)
		if !ok {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": utils.ErrValueConversion.Error()})
		}

		user, err := storage.GetUserByID(c.Request().Context(), userID)

		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch user"})
		}

		return c.JSON(http.StatusOK, user)
	}
}
