package promotion

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"turipass.io/terminal/api"
	"turipass.io/terminal/models"
	"turipass.io/terminal/store"
)

// Backend is the slice of the API client this service needs; narrowed
// for mocking in tests.
type Backend interface {
	ListPromotions(ctx context.Context, partnerID int64) ([]models.Promotion, error)
	CreatePromotion(ctx context.Context, create models.PromotionCreate) (*models.Promotion, error)
	UpdatePromotion(ctx context.Context, id int64, update models.PromotionUpdate) (*models.Promotion, error)
	DeletePromotionImages(ctx context.Context, imageIDs []int64) error
}

var _ Backend = (*api.Client)(nil)

type Service interface {
	Refresh(ctx context.Context, partnerID int64) ([]models.Promotion, error)
	List() []models.Promotion
	Eligible(now time.Time) []models.Promotion
	Create(ctx context.Context, create models.PromotionCreate) (*models.Promotion, error)
	Update(ctx context.Context, id int64, update models.PromotionUpdate, deletedImageIDs []int64) (*models.Promotion, error)
	SetStatus(ctx context.Context, id, statusID int64) (*models.Promotion, error)
}

type service struct {
	backend Backend
	store   *store.Store
	logger  *zap.Logger
}

func NewService(backend Backend, st *store.Store, logger *zap.Logger) Service {
	return &service{
		backend: backend,
		store:   st,
		logger:  logger,
	}
}

// Refresh replaces the stored promotion collection with whatever the
// backend returns. This is the sole consistency mechanism: after every
// redemption the server copy wins and any local quantity assumptions
// are discarded.
func (s *service) Refresh(ctx context.Context, partnerID int64) ([]models.Promotion, error) {
	promotions, err := s.backend.ListPromotions(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch promotions: %w", err)
	}

	s.store.ReplacePromotions(promotions)
	return promotions, nil
}

func (s *service) List() []models.Promotion {
	return s.store.Snapshot().Promotions
}

func (s *service) Eligible(now time.Time) []models.Promotion {
	return Eligible(s.store.Snapshot().Promotions, now)
}

func (s *service) Create(ctx context.Context, create models.PromotionCreate) (*models.Promotion, error) {
	promotion, err := s.backend.CreatePromotion(ctx, create)
	if err != nil {
		return nil, fmt.Errorf("failed to create promotion: %w", err)
	}

	s.store.UpsertPromotion(*promotion)
	return promotion, nil
}

// Update edits a promotion, deleting dropped images first the way the
// backend expects.
func (s *service) Update(ctx context.Context, id int64, update models.PromotionUpdate, deletedImageIDs []int64) (*models.Promotion, error) {
	if len(deletedImageIDs) > 0 {
		if err := s.backend.DeletePromotionImages(ctx, deletedImageIDs); err != nil {
			return nil, fmt.Errorf("failed to delete promotion images: %w", err)
		}
	}

	promotion, err := s.backend.UpdatePromotion(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update promotion: %w", err)
	}

	s.store.UpsertPromotion(*promotion)
	return promotion, nil
}

// SetStatus flips the promotion's status. Soft deletes come through
// here; the client never resurrects a deleted promotion.
func (s *service) SetStatus(ctx context.Context, id, statusID int64) (*models.Promotion, error) {
	promotion, err := s.backend.UpdatePromotion(ctx, id, models.PromotionUpdate{StatusID: &statusID})
	if err != nil {
		return nil, fmt.Errorf("failed to update promotion status: %w", err)
	}

	s.store.UpsertPromotion(*promotion)
	return promotion, nil
}
