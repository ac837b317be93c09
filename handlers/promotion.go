package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	terminal "turipass.io/terminal"
	"turipass.io/terminal/models"
)

type PromotionHandler interface {
	ListPromotions(c echo.Context) error
	EligiblePromotions(c echo.Context) error
	RefreshPromotions(c echo.Context) error
	CreatePromotion(c echo.Context) error
	UpdatePromotion(c echo.Context) error
	DeletePromotion(c echo.Context) error
}

type promotionHandler struct {
	Terminal terminal.Terminal
}

func NewPromotionHandler(
	Terminal terminal.Terminal,
) PromotionHandler {
	return &promotionHandler{
		Terminal: Terminal,
	}
}

// ListPromotions handles GET /promotions
func (ph *promotionHandler) ListPromotions(c echo.Context) error {
	return c.JSON(http.StatusOK, ph.Terminal.ListPromotions())
}

// EligiblePromotions handles GET /promotions/eligible
func (ph *promotionHandler) EligiblePromotions(c echo.Context) error {
	return c.JSON(http.StatusOK, ph.Terminal.EligiblePromotions(time.Now()))
}

// RefreshPromotions handles POST /promotions/refresh
func (ph *promotionHandler) RefreshPromotions(c echo.Context) error {
	promotions, err := ph.Terminal.RefreshPromotions(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, promotions)
}

// CreatePromotion handles POST /promotions
func (ph *promotionHandler) CreatePromotion(c echo.Context) error {
	var create models.PromotionCreate
	if err := c.Bind(&create); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	promotion, err := ph.Terminal.CreatePromotion(c.Request().Context(), create)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, promotion)
}

// UpdatePromotion handles PUT /promotions/:id
func (ph *promotionHandler) UpdatePromotion(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid promotion id"})
	}

	var body struct {
		models.PromotionUpdate
		DeletedImageIDs []int64 `json:"deleted_image_ids,omitempty"`
	}
	if err = c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	promotion, err := ph.Terminal.UpdatePromotion(c.Request().Context(), id, body.PromotionUpdate, body.DeletedImageIDs)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, promotion)
}

// DeletePromotion handles DELETE /promotions/:id
func (ph *promotionHandler) DeletePromotion(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid promotion id"})
	}

	promotion, err := ph.Terminal.DeletePromotion(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, promotion)
}
