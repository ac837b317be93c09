package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	terminal "turipass.io/terminal"
	"turipass.io/terminal/models"
)

type BranchHandler interface {
	ListBranches(c echo.Context) error
	RefreshBranches(c echo.Context) error
	CreateBranch(c echo.Context) error
	UpdateBranch(c echo.Context) error
	BranchRatings(c echo.Context) error
	RateBranch(c echo.Context) error
	UpdateBranchRating(c echo.Context) error
	DeleteBranchRating(c echo.Context) error
}

type branchHandler struct {
	Terminal terminal.Terminal
}

func NewBranchHandler(
	Terminal terminal.Terminal,
) BranchHandler {
	return &branchHandler{
		Terminal: Terminal,
	}
}

// ListBranches handles GET /branches
func (bh *branchHandler) ListBranches(c echo.Context) error {
	return c.JSON(http.StatusOK, bh.Terminal.ListBranches())
}

// RefreshBranches handles POST /branches/refresh
func (bh *branchHandler) RefreshBranches(c echo.Context) error {
	branches, err := bh.Terminal.RefreshBranches(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, branches)
}

// CreateBranch handles POST /branches
func (bh *branchHandler) CreateBranch(c echo.Context) error {
	var create models.BranchCreate
	if err := c.Bind(&create); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	branch, err := bh.Terminal.CreateBranch(c.Request().Context(), create)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, branch)
}

// UpdateBranch handles PUT /branches/:id
func (bh *branchHandler) UpdateBranch(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid branch id"})
	}

	var update models.BranchUpdate
	if err = c.Bind(&update); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	branch, err := bh.Terminal.UpdateBranch(c.Request().Context(), id, update)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, branch)
}

// BranchRatings handles GET /branches/:id/ratings
func (bh *branchHandler) BranchRatings(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid branch id"})
	}

	ratings, err := bh.Terminal.BranchRatings(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, ratings)
}

// RateBranch handles POST /branches/:id/ratings
func (bh *branchHandler) RateBranch(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid branch id"})
	}

	var rating models.Rating
	if err = c.Bind(&rating); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	created, err := bh.Terminal.RateBranch(c.Request().Context(), id, rating)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateBranchRating handles PUT /branches/ratings/:id
func (bh *branchHandler) UpdateBranchRating(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid rating id"})
	}

	var rating models.Rating
	if err = c.Bind(&rating); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	updated, err := bh.Terminal.UpdateBranchRating(c.Request().Context(), id, rating)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteBranchRating handles DELETE /branches/ratings/:id
func (bh *branchHandler) DeleteBranchRating(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid rating id"})
	}

	if err = bh.Terminal.DeleteBranchRating(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
