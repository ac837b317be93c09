package api

import (
	"context"
	"fmt"

	"turipass.io/terminal/models"
)

// ListPromotions fetches the full promotion list for a partner. The
// caller replaces its whole collection with the result; there is no
// delta protocol.
func (c *Client) ListPromotions(ctx context.Context, partnerID int64) ([]models.Promotion, error) {
	var promotions []models.Promotion
	if err := c.get(ctx, fmt.Sprintf("/partners/%d/promotions", partnerID), &promotions); err != nil {
		return nil, err
	}
	return promotions, nil
}

func (c *Client) CreatePromotion(ctx context.Context, create models.PromotionCreate) (*models.Promotion, error) {
	var promotion models.Promotion
	if err := c.post(ctx, "/promotions", create, &promotion); err != nil {
		return nil, err
	}
	return &promotion, nil
}

func (c *Client) UpdatePromotion(ctx context.Context, id int64, update models.PromotionUpdate) (*models.Promotion, error) {
	var promotion models.Promotion
	if err := c.put(ctx, fmt.Sprintf("/promotions/%d", id), update, &promotion); err != nil {
		return nil, err
	}
	return &promotion, nil
}

// DeletePromotionImages bulk-deletes promotion images by id before an
// update that drops them.
func (c *Client) DeletePromotionImages(ctx context.Context, imageIDs []int64) error {
	body := map[string][]int64{"image_ids": imageIDs}
	return c.post(ctx, "/promotion_images/delete", body, nil)
}
