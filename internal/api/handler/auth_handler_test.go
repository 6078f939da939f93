package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/darksignal/darksignal/internal/core/domain"
)

const testCookie = "darksignal_session"

type stubAuthService struct {
	loginFn func(ctx context.Context, username, password string) (*domain.Session, error)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	return s.loginFn(ctx, username, password)
}

type stubSessionStore struct {
	sessions map[string]*domain.Session
	deleted  []string
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.Session)}
}

func (s *stubSessionStore) Create(_ context.Context, sess *domain.Session) (string, error) {
	token := "tok-1"
	s.sessions[token] = sess
	return token, nil
}

func (s *stubSessionStore) Get(_ context.Context, token string) (*domain.Session, error) {
	sess, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

func (s *stubSessionStore) Delete(_ context.Context, token string) error {
	s.deleted = append(s.deleted, token)
	delete(s.sessions, token)
	return nil
}

func newFormContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*domain.Session, error) {
			if username != "alice" || password != "correct" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return domain.NewSession("alice", "ADMIN"), nil
		},
	}
	store := newStubSessionStore()
	handler := NewAuthHandler(stub, store, testCookie, time.Hour)

	c, rec := newFormContext(e, http.MethodPost, "/auth/login", "username=alice&password=correct")
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/home/" {
		t.Fatalf("expected redirect to /home/, got %s", loc)
	}

	sess, ok := store.sessions["tok-1"]
	if !ok {
		t.Fatalf("session not stored")
	}
	if sess.Role != domain.RoleAdmin || !sess.IsAdmin {
		t.Fatalf("unexpected session: %+v", sess)
	}

	var cookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == testCookie {
			cookie = ck
		}
	}
	if cookie == nil || cookie.Value != "tok-1" {
		t.Fatalf("session cookie not set: %+v", cookie)
	}
	if !cookie.HttpOnly {
		t.Fatalf("session cookie must be HttpOnly")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*domain.Session, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub, newStubSessionStore(), testCookie, time.Hour)

	c, rec := newFormContext(e, http.MethodPost, "/auth/login", "username=alice&password=wrong")
	_ = handler.Login(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != false || resp["message"] != "Invalid credentials" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Login_EmptyFields(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*domain.Session, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, newStubSessionStore(), testCookie, time.Hour)

	c, rec := newFormContext(e, http.MethodPost, "/auth/login", "username=&password=")
	_ = handler.Login(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := echo.New()

	store := newStubSessionStore()
	store.sessions["tok-9"] = domain.NewSession("alice", "ADMIN")
	handler := NewAuthHandler(&stubAuthService{}, store, testCookie, time.Hour)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "tok-9"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/auth/login" {
		t.Fatalf("expected redirect to /auth/login, got %s", loc)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "tok-9" {
		t.Fatalf("session not deleted: %+v", store.deleted)
	}

	var cookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == testCookie {
			cookie = ck
		}
	}
	if cookie == nil || cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Fatalf("session cookie not expired: %+v", cookie)
	}
}

func TestAuthHandler_SessionEntry(t *testing.T) {
	e := echo.New()
	handler := NewAuthHandler(&stubAuthService{}, newStubSessionStore(), testCookie, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.SessionEntry(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/home/" {
		t.Fatalf("expected redirect to /home/, got %s", loc)
	}
}
