package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/darksignal/darksignal/internal/core/domain"
	"github.com/darksignal/darksignal/internal/web"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	renderer, err := web.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	e.Renderer = renderer
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	return e
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err    error
		code   int
		source string
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "auth"},
		{domain.ErrUserNotFound, http.StatusUnauthorized, "auth"},
		{domain.ErrSessionNotFound, http.StatusUnauthorized, "auth"},
		{domain.ErrAttackNotFound, http.StatusNotFound, "attacks"},
		{fmt.Errorf("%w: connection refused", domain.ErrLookupFailed), http.StatusInternalServerError, "pwned"},
		{fmt.Errorf("something else entirely"), http.StatusInternalServerError, "api"},
	}

	for _, tc := range cases {
		e := newTestEcho(t)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		e.HTTPErrorHandler(tc.err, c)

		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%v: invalid json: %v", tc.err, err)
		}
		if resp["success"] != false || resp["source"] != tc.source {
			t.Fatalf("%v: unexpected envelope: %+v", tc.err, resp)
		}
	}
}

func TestHTTPErrorHandler_LookupFailureIsOpaque(t *testing.T) {
	e := newTestEcho(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	e.HTTPErrorHandler(fmt.Errorf("%w: dial tcp 1.2.3.4: timeout", domain.ErrLookupFailed), c)

	if strings.Contains(rec.Body.String(), "dial tcp") {
		t.Fatalf("internal detail leaked to the client: %s", rec.Body.String())
	}
}

func TestHTTPErrorHandler_NotFoundRendersPageForBrowsers(t *testing.T) {
	e := newTestEcho(t)
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	req.Header.Set(echo.HeaderAccept, echo.MIMETextHTML)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	e.HTTPErrorHandler(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<html") {
		t.Fatalf("expected the 404 page, got: %s", rec.Body.String())
	}
}

func TestHTTPErrorHandler_EchoErrors(t *testing.T) {
	e := newTestEcho(t)
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	e.HTTPErrorHandler(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["source"] != "router" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}
