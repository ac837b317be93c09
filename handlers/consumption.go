package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	terminal "turipass.io/terminal"
)

type ConsumptionHandler interface {
	History(c echo.Context) error
	RefreshHistory(c echo.Context) error
	DeleteConsumption(c echo.Context) error
}

type consumptionHandler struct {
	Terminal terminal.Terminal
}

func NewConsumptionHandler(
	Terminal terminal.Terminal,
) ConsumptionHandler {
	return &consumptionHandler{
		Terminal: Terminal,
	}
}

// History handles GET /consumptions. Only records still in "active"
// status are returned; soft-deleted ones stay out of view.
func (ch *consumptionHandler) History(c echo.Context) error {
	return c.JSON(http.StatusOK, ch.Terminal.ConsumptionHistory())
}

// RefreshHistory handles POST /consumptions/refresh
func (ch *consumptionHandler) RefreshHistory(c echo.Context) error {
	if _, err := ch.Terminal.RefreshConsumptions(c.Request().Context()); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, ch.Terminal.ConsumptionHistory())
}

// DeleteConsumption handles DELETE /consumptions/:id. This is a soft
// delete: a status update carrying the "deleted" vocabulary id.
func (ch *consumptionHandler) DeleteConsumption(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid consumption id"})
	}

	record, err := ch.Terminal.DeleteConsumption(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, record)
}
