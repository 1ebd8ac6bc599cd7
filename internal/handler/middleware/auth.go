package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/model/entity"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/service"
)

const userIDKey = "user_id"

type AuthMiddleware struct {
	authService service.AuthService
}

func New(authService service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Require rejects requests without a valid bearer token.
func (m *AuthMiddleware) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := m.userFromRequest(c)
		if err != nil || userID == 0 {
			return c.JSON(http.StatusUnauthorized, entity.MessageResponse{Message: "Authentication required."})
		}
		c.Set(userIDKey, userID)
		return next(c)
	}
}

// Optional attaches the user when a valid token is present and lets the
// request through either way. Views behind it treat user id 0 as an
// anonymous caller.
func (m *AuthMiddleware) Optional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if userID, err := m.userFromRequest(c); err == nil {
			c.Set(userIDKey, userID)
		}
		return next(c)
	}
}

func (m *AuthMiddleware) userFromRequest(c echo.Context) (uint, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return 0, service.ErrInvalidCredentials
	}
	return m.authService.ParseToken(token)
}

// UserID returns the authenticated user's id, or 0 for anonymous requests.
func UserID(c echo.Context) uint {
	if userID, ok := c.Get(userIDKey).(uint); ok {
		return userID
	}
	return 0
}
