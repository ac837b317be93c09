package api

import (
	"context"
	"fmt"

	"turipass.io/terminal/models"
)

func (c *Client) ListBranchRatings(ctx context.Context, branchID int64) (*models.BranchRatings, error) {
	var ratings models.BranchRatings
	if err := c.get(ctx, fmt.Sprintf("/branches/%d/ratings/all", branchID), &ratings); err != nil {
		return nil, err
	}
	return &ratings, nil
}

func (c *Client) CreateBranchRating(ctx context.Context, branchID int64, rating models.Rating) (*models.Rating, error) {
	var created models.Rating
	if err := c.post(ctx, fmt.Sprintf("/branches/%d/ratings", branchID), rating, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateBranchRating(ctx context.Context, ratingID int64, rating models.Rating) (*models.Rating, error) {
	var updated models.Rating
	if err := c.put(ctx, fmt.Sprintf("/branches/ratings/%d", ratingID), rating, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteBranchRating(ctx context.Context, ratingID int64) error {
	body := map[string]int64{"id": ratingID}
	return c.del(ctx, fmt.Sprintf("/branches/ratings/%d", ratingID), body)
}

func (c *Client) ListTouristPointRatings(ctx context.Context, touristPointID int64) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := c.get(ctx, fmt.Sprintf("/tourist_points/%d/ratings", touristPointID), &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}

func (c *Client) CreateTouristPointRating(ctx context.Context, touristPointID int64, rating models.Rating) (*models.Rating, error) {
	var created models.Rating
	if err := c.post(ctx, fmt.Sprintf("/tourist_points/%d/ratings", touristPointID), rating, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateRating(ctx context.Context, ratingID int64, rating models.Rating) (*models.Rating, error) {
	var updated models.Rating
	if err := c.put(ctx, fmt.Sprintf("/ratings/%d", ratingID), rating, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteRating(ctx context.Context, ratingID int64) error {
	return c.del(ctx, fmt.Sprintf("/ratings/%d", ratingID), nil)
}
