package handler

import (
	"errors"

	"github.com/bidorbuy/ewa/internal/core/domain"
	"github.com/bidorbuy/ewa/internal/pkg/metrics"
)

const (
	msgInvalidCredentials = "Invalid username or password."
	msgUnavailable        = "Cannot connect to the Identity service. Please try again later."
	msgUnexpected         = "Unexpected error during login."
)

// loginFailure maps a login error to the message shown on the form and the
// metrics outcome label.
func loginFailure(err error) (string, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrValidation):
		return msgInvalidCredentials, metrics.OutcomeInvalidCredentials
	case errors.Is(err, domain.ErrServiceUnavailable):
		return msgUnavailable, metrics.OutcomeUnavailable
	case errors.Is(err, domain.ErrUnexpectedResponse):
		return msgUnexpected, metrics.OutcomeUnexpected
	default:
		return msgUnexpected, metrics.OutcomeError
	}
}
