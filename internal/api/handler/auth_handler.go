package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/darksignal/darksignal/internal/api/metrics"
	"github.com/darksignal/darksignal/internal/core/domain"
	"github.com/darksignal/darksignal/internal/core/ports"
)

const (
	authSource = "auth"

	homePath  = "/home/"
	loginPath = "/auth/login"
)

type AuthHandler struct {
	auth       ports.AuthService
	sessions   ports.SessionStore
	cookieName string
	ttl        time.Duration
}

func NewAuthHandler(auth ports.AuthService, sessions ports.SessionStore, cookieName string, ttl time.Duration) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, cookieName: cookieName, ttl: ttl}
}

type loginRequest struct {
	Username string `form:"username" json:"username" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

type loginFailureResponse struct {
	Source  string `json:"source"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// LoginPage renders the login form, or sends an already-authenticated user
// straight to the home page.
//
// @Summary      Login page
// @Tags         auth
// @Produce      html
// @Success      200  {string}  string
// @Router       /auth/login [get]
func (h *AuthHandler) LoginPage(c echo.Context) error {
	if h.activeSession(c) {
		return c.Redirect(http.StatusFound, homePath)
	}
	return c.Render(http.StatusOK, "login.html", pageData(nil))
}

// Login authenticates a user and establishes a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      302
// @Failure      401  {object}  loginFailureResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.AuthFailuresTotal.Inc()
		return c.JSON(http.StatusUnauthorized, invalidCredentials())
	}

	sess, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.AuthFailuresTotal.Inc()
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, invalidCredentials())
		}
		return err
	}

	token, err := h.sessions.Create(c.Request().Context(), sess)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.ttl.Seconds()),
	})

	metrics.AuthSuccessTotal.Inc()
	return c.Redirect(http.StatusFound, homePath)
}

// Logout destroys the session and sends the user back to the login page.
//
// @Summary      Logout
// @Tags         auth
// @Success      302
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.cookieName); err == nil && cookie.Value != "" {
		// A store failure must not strand the user in a half-logged-out
		// state; the cookie is expired regardless and the key will lapse
		// with its TTL.
		_ = h.sessions.Delete(c.Request().Context(), cookie.Value)
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	metrics.AuthLogoutTotal.Inc()
	return c.Redirect(http.StatusFound, loginPath)
}

// SessionEntry is the session-guarded entry point; reaching it proves the
// session is active, so it forwards to the home page.
//
// @Summary      Session entry point
// @Tags         auth
// @Success      302
// @Router       /auth/session [get]
func (h *AuthHandler) SessionEntry(c echo.Context) error {
	return c.Redirect(http.StatusFound, homePath)
}

func (h *AuthHandler) activeSession(c echo.Context) bool {
	cookie, err := c.Cookie(h.cookieName)
	if err != nil || cookie.Value == "" {
		return false
	}
	sess, err := h.sessions.Get(c.Request().Context(), cookie.Value)
	return err == nil && sess.Active()
}

func invalidCredentials() loginFailureResponse {
	return loginFailureResponse{
		Source:  authSource,
		Success: false,
		Message: "Invalid credentials",
	}
}
