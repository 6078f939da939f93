package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/darksignal/darksignal/internal/api/metrics"
	"github.com/darksignal/darksignal/internal/core/ports"
)

const pwnedSource = "pwned"

type PwnedHandler struct {
	checker ports.BreachChecker
}

func NewPwnedHandler(checker ports.BreachChecker) *PwnedHandler {
	return &PwnedHandler{checker: checker}
}

type checkPasswordRequest struct {
	Password string `form:"password" json:"password" validate:"required"`
}

type checkPasswordResponse struct {
	Source  string `json:"source"`
	Success bool   `json:"success"`
	Warning string `json:"warning,omitempty"`
	Message string `json:"message,omitempty"`
	Count   int    `json:"count"`
}

type checkPasswordFailure struct {
	Source  string `json:"source"`
	Success bool   `json:"success"`
	Warning string `json:"warning"`
}

// CheckPassword checks the submitted password against the breach corpus.
// An empty password is rejected before any network call is made.
//
// @Summary      Check a password against the breach corpus
// @Tags         pwned
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        password  formData  string  true  "Password to check"
// @Success      200  {object}  checkPasswordResponse
// @Failure      400  {object}  checkPasswordFailure
// @Failure      500  {object}  map[string]string
// @Router       /pwned/check-password [post]
func (h *PwnedHandler) CheckPassword(c echo.Context) error {
	var req checkPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	req.Password = strings.TrimSpace(req.Password)
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, checkPasswordFailure{
			Source:  pwnedSource,
			Success: false,
			Warning: "Password field cannot be empty",
		})
	}

	found, count, err := h.checker.Check(c.Request().Context(), req.Password)
	if err != nil {
		metrics.LookupErrorsTotal.Inc()
		return err
	}

	if found {
		metrics.PasswordChecksTotal.WithLabelValues("pwned").Inc()
		return c.JSON(http.StatusOK, checkPasswordResponse{
			Source:  pwnedSource,
			Success: true,
			Warning: "You've been Pwned!!",
			Count:   count,
		})
	}

	metrics.PasswordChecksTotal.WithLabelValues("clear").Inc()
	return c.JSON(http.StatusOK, checkPasswordResponse{
		Source:  pwnedSource,
		Success: true,
		Message: "All clear!",
		Count:   count,
	})
}
