package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	terminal "turipass.io/terminal"
)

type PartnerHandler interface {
	Profile(c echo.Context) error
	CurrentTerms(c echo.Context) error
	TermsOutstanding(c echo.Context) error
	AcceptTerms(c echo.Context) error
	Logout(c echo.Context) error
}

type partnerHandler struct {
	Terminal terminal.Terminal
}

func NewPartnerHandler(
	Terminal terminal.Terminal,
) PartnerHandler {
	return &partnerHandler{
		Terminal: Terminal,
	}
}

// Profile handles GET /partner
func (ph *partnerHandler) Profile(c echo.Context) error {
	partner, err := ph.Terminal.Partner(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, partner)
}

// CurrentTerms handles GET /terms
func (ph *partnerHandler) CurrentTerms(c echo.Context) error {
	terms, err := ph.Terminal.CurrentTerms(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, terms)
}

// TermsOutstanding handles GET /terms/outstanding
func (ph *partnerHandler) TermsOutstanding(c echo.Context) error {
	outstanding, terms, err := ph.Terminal.TermsOutstanding(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"outstanding": outstanding,
		"terms":       terms,
	})
}

// AcceptTerms handles POST /terms/accept
func (ph *partnerHandler) AcceptTerms(c echo.Context) error {
	if err := ph.Terminal.AcceptTerms(c.Request().Context()); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Logout handles POST /logout
func (ph *partnerHandler) Logout(c echo.Context) error {
	ph.Terminal.Logout()
	return c.NoContent(http.StatusNoContent)
}
