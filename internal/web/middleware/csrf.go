package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

const (
	KeyCSRF       = "csrf"
	CSRFFormField = "csrf_token"
	csrfCookie    = "bidorbuy_csrf"
)

// CSRF guards form posts with a double-submit token. Pages read the token
// from the context under KeyCSRF and echo it back in CSRFFormField.
func CSRF(secure bool) echo.MiddlewareFunc {
	return echomiddleware.CSRFWithConfig(echomiddleware.CSRFConfig{
		TokenLookup:    "form:" + CSRFFormField,
		ContextKey:     KeyCSRF,
		CookieName:     csrfCookie,
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   secure,
		CookieSameSite: http.SameSiteLaxMode,
	})
}
