package api

import (
	"context"
	"fmt"

	"turipass.io/terminal/models"
)

func (c *Client) CreateConsumption(ctx context.Context, create models.ConsumptionCreate) (*models.ConsumptionRecord, error) {
	var record models.ConsumptionRecord
	if err := c.post(ctx, "/promotion_consumeds", create, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *Client) ListConsumptions(ctx context.Context, partnerID int64) ([]models.ConsumptionRecord, error) {
	var records []models.ConsumptionRecord
	if err := c.get(ctx, fmt.Sprintf("/promotion_consumeds/partner/%d", partnerID), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// UpdateConsumptionStatus flips a record's status. Soft deletes go
// through here with the id of the "deleted" vocabulary entry.
func (c *Client) UpdateConsumptionStatus(ctx context.Context, id, statusID int64) (*models.ConsumptionRecord, error) {
	var record models.ConsumptionRecord
	update := models.ConsumptionStatusUpdate{StatusID: statusID}
	if err := c.put(ctx, fmt.Sprintf("/promotion_consumeds/%d", id), update, &record); err != nil {
		return nil, err
	}
	return &record, nil
}
