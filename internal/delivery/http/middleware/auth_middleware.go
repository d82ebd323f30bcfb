// Package middleware contains HTTP-specific echo middleware.
package middleware

import (
	"strings"

	"mihrab/internal/delivery/http/response"
	"mihrab/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// contextKeyUserID is where Authenticate stores the caller's user ID on the
// echo context.
const contextKeyUserID = "userID"

// AuthMiddleware validates JWT access tokens on protected routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the user ID on the
// context. Refresh tokens are rejected here; they are only good at /auth.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		if claims.Type != "access" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Token is not an access token")
		}

		c.Set(contextKeyUserID, claims.UserID)

		return next(c)
	}
}

// GetUserID returns the authenticated user's ID from the echo context.
// It reports false when Authenticate did not run on the route.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok
}
