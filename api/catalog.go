package api

import (
	"context"
	"fmt"

	"turipass.io/terminal/models"
)

func (c *Client) ListTouristPoints(ctx context.Context) ([]models.TouristPoint, error) {
	var points []models.TouristPoint
	if err := c.get(ctx, "/tourist_points", &points); err != nil {
		return nil, err
	}
	return points, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.get(ctx, "/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ListStatuses fetches the status vocabulary. The terminal resolves
// status ids by name against this list instead of hardcoding them.
func (c *Client) ListStatuses(ctx context.Context) ([]models.Status, error) {
	var statuses []models.Status
	if err := c.get(ctx, "/statuses", &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}

func (c *Client) GetPartner(ctx context.Context, partnerID int64) (*models.Partner, error) {
	var partner models.Partner
	if err := c.get(ctx, fmt.Sprintf("/partners/%d", partnerID), &partner); err != nil {
		return nil, err
	}
	return &partner, nil
}

func (c *Client) GetCurrentTerms(ctx context.Context) (*models.Terms, error) {
	var terms models.Terms
	if err := c.get(ctx, "/terms", &terms); err != nil {
		return nil, err
	}
	return &terms, nil
}

func (c *Client) AcceptTerms(ctx context.Context, userID int64) error {
	return c.put(ctx, fmt.Sprintf("/users/%d/accept-terms", userID), nil, nil)
}
