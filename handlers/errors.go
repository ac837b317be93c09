package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	terminal "turipass.io/terminal"
	"turipass.io/terminal/api"
	"turipass.io/terminal/redemption"
	"turipass.io/terminal/scan"
)

// respondError maps every failure onto one consistent policy: local
// validation problems are 422 with the reason, unknown sessions are
// 404, and any backend trouble is 502 with a retry hint. Nothing fails
// silently.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, redemption.ErrSessionNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})

	case errors.Is(err, redemption.ErrIncompleteForm),
		errors.Is(err, redemption.ErrInvalidState),
		errors.Is(err, redemption.ErrInvalidUserID),
		errors.Is(err, redemption.ErrInvalidQuantity),
		errors.Is(err, redemption.ErrInvalidAmount),
		errors.Is(err, redemption.ErrQuantityExceeds),
		errors.Is(err, redemption.ErrSubmissionInFlight),
		errors.Is(err, redemption.ErrNoOpenWindow),
		errors.Is(err, scan.ErrWindowClosed),
		errors.Is(err, terminal.ErrPromotionNotEligible):
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}

	// Transport, status and decode errors from the backend all read the
	// same to the operator: the operation failed and may be retried.
	var decodeErr *api.DecodeError
	if errors.As(err, &decodeErr) {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "Backend sent an unreadable response, please retry"})
	}
	return c.JSON(http.StatusBadGateway, map[string]string{"error": "Operation failed, please retry"})
}
