package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"carvendor/internal/usecase"
)

type AuthMiddleware struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthMiddleware(authUseCase *usecase.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{
		authUseCase: authUseCase,
	}
}

// Authenticate guards back office routes. It resolves the Bearer token to a
// principal and stores the uid on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		principal, err := m.authUseCase.CurrentPrincipal(c.Request().Context(), parts[1])
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		if !m.authUseCase.IsAuthorized(principal) {
			return echo.NewHTTPError(http.StatusForbidden, "Not an operator")
		}

		c.Set("uid", principal.UID)

		return next(c)
	}
}
