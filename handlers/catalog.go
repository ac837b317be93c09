package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	terminal "turipass.io/terminal"
	"turipass.io/terminal/models"
)

type CatalogHandler interface {
	Categories(c echo.Context) error
	TouristPoints(c echo.Context) error
	Statuses(c echo.Context) error
	TouristPointRatings(c echo.Context) error
	RateTouristPoint(c echo.Context) error
	UpdateRating(c echo.Context) error
	DeleteRating(c echo.Context) error
}

type catalogHandler struct {
	Terminal terminal.Terminal
}

func NewCatalogHandler(
	Terminal terminal.Terminal,
) CatalogHandler {
	return &catalogHandler{
		Terminal: Terminal,
	}
}

// Categories handles GET /categories
func (ch *catalogHandler) Categories(c echo.Context) error {
	categories, err := ch.Terminal.Categories(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, categories)
}

// TouristPoints handles GET /tourist_points
func (ch *catalogHandler) TouristPoints(c echo.Context) error {
	points, err := ch.Terminal.TouristPoints(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, points)
}

// Statuses handles GET /statuses
func (ch *catalogHandler) Statuses(c echo.Context) error {
	statuses, err := ch.Terminal.Statuses(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, statuses)
}

// TouristPointRatings handles GET /tourist_points/:id/ratings
func (ch *catalogHandler) TouristPointRatings(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid tourist point id"})
	}

	ratings, err := ch.Terminal.TouristPointRatings(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, ratings)
}

// RateTouristPoint handles POST /tourist_points/:id/ratings
func (ch *catalogHandler) RateTouristPoint(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid tourist point id"})
	}

	var rating models.Rating
	if err = c.Bind(&rating); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	created, err := ch.Terminal.RateTouristPoint(c.Request().Context(), id, rating)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateRating handles PUT /ratings/:id
func (ch *catalogHandler) UpdateRating(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid rating id"})
	}

	var rating models.Rating
	if err = c.Bind(&rating); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	updated, err := ch.Terminal.UpdateRating(c.Request().Context(), id, rating)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteRating handles DELETE /ratings/:id
func (ch *catalogHandler) DeleteRating(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid rating id"})
	}

	if err = ch.Terminal.DeleteRating(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
