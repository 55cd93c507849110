package handler

import (
	"strings"

	"github.com/labstack/echo/v4"

	"carvendor/internal/usecase"
	"carvendor/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	principal, err := h.authUseCase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, principal)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authUseCase.Logout(c.Request().Context()); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Logged out"})
}

// Me resolves the bearer token to the current principal, including the
// provider record's email. Used by the back office on load to restore a
// session.
func (h *AuthHandler) Me(c echo.Context) error {
	token := bearerToken(c)
	principal, err := h.authUseCase.Profile(c.Request().Context(), token)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, principal)
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return parts[1]
}
