package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/utils"
)

func JWTAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": utils.ErrUnauthorized.Error()})
			}

			if !strings.HasPrefix(authHeader, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": utils.ErrInvalidToken.Error()})
			}

			token := strings.Split(authHeader, " ")[1]

			claims, err := utils.ValidateToken(token)

			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": utils.ErrInvalidToken.Error()})
			}

			c.Set("user_id", claims.UserID)
			c.Set("netid", claims.NetID)

			return next(c)
		}
	}
}
