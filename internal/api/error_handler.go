package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/darksignal/darksignal/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. The
// source tag names the component the error originated in.
type errorResponse struct {
	Source  string `json:"source"`
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the 404 page for browser requests, JSON for everything else.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, source, msg := resolveError(err, log, c)

		if code == http.StatusNotFound && wantsHTML(c) {
			if renderErr := c.Render(code, "404.html", map[string]any{"CurrentYear": time.Now().Year()}); renderErr == nil {
				return
			}
		}

		_ = c.JSON(code, errorResponse{Source: source, Success: false, Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, string) {
	// Echo's own errors (bind failures, 404 from the router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, "router", fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors map to deterministic HTTP codes. Credential and
	// account-status failures share one generic message.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUserNotFound):
		return http.StatusUnauthorized, "auth", "invalid credentials"
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusUnauthorized, "auth", "session expired"
	case errors.Is(err, domain.ErrAttackNotFound):
		return http.StatusNotFound, "attacks", "attack not found"
	case errors.Is(err, domain.ErrLookupFailed):
		return http.StatusInternalServerError, "pwned", "breach lookup failed"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "api", "internal server error"
}

func wantsHTML(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMETextHTML)
}
