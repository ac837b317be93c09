package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	terminal "turipass.io/terminal"
	"turipass.io/terminal/redemption"
)

type RedemptionHandler interface {
	StartSession(c echo.Context) error
	GetSession(c echo.Context) error
	EndSession(c echo.Context) error
	OpenScanner(c echo.Context) error
	CloseScanner(c echo.Context) error
	Scan(c echo.Context) error
	SelectPromotion(c echo.Context) error
	SetQuantity(c echo.Context) error
	SetAmount(c echo.Context) error
	SetDescription(c echo.Context) error
	Confirm(c echo.Context) error
	Cancel(c echo.Context) error
}

type redemptionHandler struct {
	Terminal terminal.Terminal
}

func NewRedemptionHandler(
	Terminal terminal.Terminal,
) RedemptionHandler {
	return &redemptionHandler{
		Terminal: Terminal,
	}
}

// StartSession handles POST /sessions
func (rh *redemptionHandler) StartSession(c echo.Context) error {
	return c.JSON(http.StatusCreated, rh.Terminal.StartSession())
}

// GetSession handles GET /sessions/:id
func (rh *redemptionHandler) GetSession(c echo.Context) error {
	view, err := rh.Terminal.Session(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// EndSession handles DELETE /sessions/:id
func (rh *redemptionHandler) EndSession(c echo.Context) error {
	rh.Terminal.EndSession(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

// OpenScanner handles POST /sessions/:id/scanner/open
func (rh *redemptionHandler) OpenScanner(c echo.Context) error {
	if err := rh.Terminal.OpenScanner(c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CloseScanner handles POST /sessions/:id/scanner/close
func (rh *redemptionHandler) CloseScanner(c echo.Context) error {
	if err := rh.Terminal.CloseScanner(c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Scan handles POST /sessions/:id/scan
func (rh *redemptionHandler) Scan(c echo.Context) error {
	var body struct {
		Payload string `json:"payload"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	view, err := rh.Terminal.SubmitScan(c.Param("id"), body.Payload)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// SelectPromotion handles POST /sessions/:id/promotion
func (rh *redemptionHandler) SelectPromotion(c echo.Context) error {
	var body struct {
		PromotionID int64 `json:"promotion_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	view, err := rh.Terminal.SelectPromotion(c.Param("id"), body.PromotionID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// SetQuantity handles PUT /sessions/:id/quantity
func (rh *redemptionHandler) SetQuantity(c echo.Context) error {
	return rh.setField(c, rh.Terminal.SetQuantity)
}

// SetAmount handles PUT /sessions/:id/amount
func (rh *redemptionHandler) SetAmount(c echo.Context) error {
	return rh.setField(c, rh.Terminal.SetAmount)
}

// SetDescription handles PUT /sessions/:id/description
func (rh *redemptionHandler) SetDescription(c echo.Context) error {
	return rh.setField(c, rh.Terminal.SetDescription)
}

// Confirm handles POST /sessions/:id/confirm
func (rh *redemptionHandler) Confirm(c echo.Context) error {
	record, err := rh.Terminal.Confirm(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, record)
}

// Cancel handles POST /sessions/:id/cancel
func (rh *redemptionHandler) Cancel(c echo.Context) error {
	if err := rh.Terminal.CancelSession(c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (rh *redemptionHandler) setField(c echo.Context, apply func(sessionID, text string) (redemption.View, error)) error {
	var body struct {
		Value string `json:"value"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	view, err := apply(c.Param("id"), body.Value)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}
