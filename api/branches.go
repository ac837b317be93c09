package api

import (
	"context"
	"fmt"

	"turipass.io/terminal/models"
)

func (c *Client) ListBranches(ctx context.Context, partnerID int64) ([]models.Branch, error) {
	var branches []models.Branch
	if err := c.get(ctx, fmt.Sprintf("/partners/%d/branches", partnerID), &branches); err != nil {
		return nil, err
	}
	return branches, nil
}

func (c *Client) CreateBranch(ctx context.Context, create models.BranchCreate) (*models.Branch, error) {
	var branch models.Branch
	if err := c.post(ctx, "/branches", create, &branch); err != nil {
		return nil, err
	}
	return &branch, nil
}

func (c *Client) UpdateBranch(ctx context.Context, id int64, update models.BranchUpdate) (*models.Branch, error) {
	var branch models.Branch
	if err := c.put(ctx, fmt.Sprintf("/branches/%d", id), update, &branch); err != nil {
		return nil, err
	}
	return &branch, nil
}
