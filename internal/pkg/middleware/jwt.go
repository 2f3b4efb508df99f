package middleware

import (
	"strings"

	jwtpkg "github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/jwt"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/utils"
	"github.com/labstack/echo/v4"
)

// Context keys set by JWTAuthMiddleware
const (
	ContextKeySubjectID = "subject_id"
	ContextKeyRole      = "role"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			if claims.SubjectID == "" {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			c.Set(ContextKeySubjectID, claims.SubjectID)
			c.Set(ContextKeyRole, claims.Role)

			return next(c)
		}
	}
}

// SubjectID returns the authenticated subject from the echo context
func SubjectID(c echo.Context) string {
	id, _ := c.Get(ContextKeySubjectID).(string)
	return id
}

// Role returns the authenticated role from the echo context
func Role(c echo.Context) string {
	role, _ := c.Get(ContextKeyRole).(string)
	return role
}
