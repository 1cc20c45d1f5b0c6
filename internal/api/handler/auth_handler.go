package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bidorbuy/ewa/internal/core/domain"
	"github.com/bidorbuy/ewa/internal/core/ports"
	"github.com/bidorbuy/ewa/internal/pkg/metrics"
)

type AuthHandler struct {
	authService ports.IdentityService
}

func NewAuthHandler(authService ports.IdentityService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
}

// loginResponse mirrors domain.LoginResult for the API docs.
type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

// messageResponse is the error envelope.
type messageResponse struct {
	Message string `json:"message"`
}

// ErrInvalidBody marks a request body that could not be decoded.
var ErrInvalidBody = errors.New("invalid request body")

// Login authenticates a demo user and returns its identity with a fresh token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		metrics.IdentityLoginsTotal.WithLabelValues(metrics.OutcomeInvalidRequest).Inc()
		return ErrInvalidBody
	}
	if err := c.Validate(&req); err != nil {
		metrics.IdentityLoginsTotal.WithLabelValues(metrics.OutcomeInvalidRequest).Inc()
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	result, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.IdentityLoginsTotal.WithLabelValues(loginOutcome(err)).Inc()
		return err
	}

	metrics.IdentityLoginsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return c.JSON(http.StatusOK, loginResponse(*result))
}

// Root answers GET / so operators can see the service is up.
func Root(c echo.Context) error {
	return c.String(http.StatusOK, "Identity.API is running")
}

func loginOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return metrics.OutcomeInvalidRequest
	case errors.Is(err, domain.ErrInvalidCredentials):
		return metrics.OutcomeInvalidCredentials
	default:
		return metrics.OutcomeError
	}
}
