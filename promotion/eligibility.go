package promotion

import (
	"time"

	"turipass.io/terminal/models"
	"turipass.io/terminal/models/enum"
)

// Eligible returns the promotions that may be redeemed right now: status
// "active" and the current date inside [start_date, expiration_date],
// both ends inclusive at calendar-date granularity. The filter is
// stable; input order is preserved and nothing is re-sorted.
func Eligible(promotions []models.Promotion, now time.Time) []models.Promotion {
	today := models.DateOf(now)

	eligible := make([]models.Promotion, 0, len(promotions))
	for _, p := range promotions {
		if p.Status == nil || p.Status.Name != string(enum.StatusNameActive) {
			continue
		}
		if today.Before(p.StartDate.Time) || today.After(p.ExpirationDate.Time) {
			continue
		}
		eligible = append(eligible, p)
	}
	return eligible
}
