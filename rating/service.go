package rating

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"turipass.io/terminal/api"
	"turipass.io/terminal/models"
)

type Backend interface {
	ListBranchRatings(ctx context.Context, branchID int64) (*models.BranchRatings, error)
	CreateBranchRating(ctx context.Context, branchID int64, rating models.Rating) (*models.Rating, error)
	UpdateBranchRating(ctx context.Context, ratingID int64, rating models.Rating) (*models.Rating, error)
	DeleteBranchRating(ctx context.Context, ratingID int64) error
	ListTouristPointRatings(ctx context.Context, touristPointID int64) ([]models.Rating, error)
	CreateTouristPointRating(ctx context.Context, touristPointID int64, rating models.Rating) (*models.Rating, error)
	UpdateRating(ctx context.Context, ratingID int64, rating models.Rating) (*models.Rating, error)
	DeleteRating(ctx context.Context, ratingID int64) error
}

var _ Backend = (*api.Client)(nil)

// Service passes rating operations through to the backend. Ratings are
// not held in the shared store; screens fetch them on demand.
type Service interface {
	ListForBranch(ctx context.Context, branchID int64) (*models.BranchRatings, error)
	CreateForBranch(ctx context.Context, branchID int64, rating models.Rating) (*models.Rating, error)
	UpdateForBranch(ctx context.Context, ratingID int64, rating models.Rating) (*models.Rating, error)
	DeleteForBranch(ctx context.Context, ratingID int64) error
	ListForTouristPoint(ctx context.Context, touristPointID int64) ([]models.Rating, error)
	CreateForTouristPoint(ctx context.Context, touristPointID int64, rating models.Rating) (*models.Rating, error)
	Update(ctx context.Context, ratingID int64, rating models.Rating) (*models.Rating, error)
	Delete(ctx context.Context, ratingID int64) error
}

type service struct {
	backend Backend
	logger  *zap.Logger
}

func NewService(backend Backend, logger *zap.Logger) Service {
	return &service{
		backend: backend,
		logger:  logger,
	}
}

func (s *service) ListForBranch(ctx context.Context, branchID int64) (*models.BranchRatings, error) {
	ratings, err := s.backend.ListBranchRatings(ctx, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch branch ratings: %w", err)
	}
	return ratings, nil
}

func (s *service) CreateForBranch(ctx context.Context, branchID int64, rating models.Rating) (*models.Rating, error) {
	created, err := s.backend.CreateBranchRating(ctx, branchID, rating)
	if err != nil {
		return nil, fmt.Errorf("failed to create branch rating: %w", err)
	}
	return created, nil
}

func (s *service) UpdateForBranch(ctx context.Context, ratingID int64, rating models.Rating) (*models.Rating, error) {
	updated, err := s.backend.UpdateBranchRating(ctx, ratingID, rating)
	if err != nil {
		return nil, fmt.Errorf("failed to update branch rating: %w", err)
	}
	return updated, nil
}

func (s *service) DeleteForBranch(ctx context.Context, ratingID int64) error {
	if err := s.backend.DeleteBranchRating(ctx, ratingID); err != nil {
		return fmt.Errorf("failed to delete branch rating: %w", err)
	}
	return nil
}

func (s *service) ListForTouristPoint(ctx context.Context, touristPointID int64) ([]models.Rating, error) {
	ratings, err := s.backend.ListTouristPointRatings(ctx, touristPointID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tourist point ratings: %w", err)
	}
	return ratings, nil
}

func (s *service) CreateForTouristPoint(ctx context.Context, touristPointID int64, rating models.Rating) (*models.Rating, error) {
	created, err := s.backend.CreateTouristPointRating(ctx, touristPointID, rating)
	if err != nil {
		return nil, fmt.Errorf("failed to create tourist point rating: %w", err)
	}
	return created, nil
}

func (s *service) Update(ctx context.Context, ratingID int64, rating models.Rating) (*models.Rating, error) {
	updated, err := s.backend.UpdateRating(ctx, ratingID, rating)
	if err != nil {
		return nil, fmt.Errorf("failed to update rating: %w", err)
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, ratingID int64) error {
	if err := s.backend.DeleteRating(ctx, ratingID); err != nil {
		return fmt.Errorf("failed to delete rating: %w", err)
	}
	return nil
}
