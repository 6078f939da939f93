package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/darksignal/darksignal/internal/core/domain"
	"github.com/darksignal/darksignal/internal/core/ports"
)

const attackSource = "attacks"

// templateMap selects the page template by attack name. Attacks without a
// dedicated page use the generic one.
var templateMap = map[string]string{
	"Have I Been Pwned": "pwned.html",
}

type AttackHandler struct {
	attacks ports.AttackService
}

func NewAttackHandler(attacks ports.AttackService) *AttackHandler {
	return &AttackHandler{attacks: attacks}
}

type attackListResponse struct {
	Source  string          `json:"source"`
	Success bool            `json:"success"`
	Attacks []domain.Attack `json:"attacks"`
}

// Home renders the home page with the attack catalogue.
//
// @Summary      Home page
// @Tags         attacks
// @Produce      html
// @Success      200  {string}  string
// @Router       /home/ [get]
func (h *AttackHandler) Home(c echo.Context) error {
	attacks, err := h.attacks.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "home.html", pageData(echo.Map{"Attacks": attacks}))
}

// Show renders the page for one attack. Malformed and unknown ids both get
// the 404 page.
//
// @Summary      Attack page
// @Tags         attacks
// @Produce      html
// @Param        id   path      int  true  "Attack id"
// @Success      200  {string}  string
// @Router       /attacks/{id} [get]
func (h *AttackHandler) Show(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.renderNotFound(c)
	}

	attack, err := h.attacks.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrAttackNotFound) {
			return h.renderNotFound(c)
		}
		return err
	}

	return c.Render(http.StatusOK, templateFor(attack.Name), pageData(echo.Map{"Attack": attack}))
}

// List returns the raw attack catalogue as JSON. Admin only.
//
// @Summary      List attacks
// @Tags         attacks
// @Produce      json
// @Success      200  {object}  attackListResponse
// @Failure      403  {object}  map[string]string
// @Router       /attacks [get]
func (h *AttackHandler) List(c echo.Context) error {
	attacks, err := h.attacks.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, attackListResponse{
		Source:  attackSource,
		Success: true,
		Attacks: attacks,
	})
}

func (h *AttackHandler) renderNotFound(c echo.Context) error {
	return c.Render(http.StatusNotFound, "404.html", pageData(nil))
}

func templateFor(name string) string {
	if t, ok := templateMap[name]; ok {
		return t
	}
	return "attack.html"
}

// pageData merges the fields every template expects with page-specific data.
func pageData(data echo.Map) echo.Map {
	if data == nil {
		data = echo.Map{}
	}
	data["CurrentYear"] = time.Now().Year()
	return data
}
