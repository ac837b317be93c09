package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"turipass.io/terminal/api"
	"turipass.io/terminal/models"
	"turipass.io/terminal/store"
)

type Backend interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListTouristPoints(ctx context.Context) ([]models.TouristPoint, error)
}

var _ Backend = (*api.Client)(nil)

// Service covers the read-only reference listings the terminal shows in
// pickers: promotion categories and tourist points.
type Service interface {
	RefreshCategories(ctx context.Context) ([]models.Category, error)
	Categories() []models.Category
	RefreshTouristPoints(ctx context.Context) ([]models.TouristPoint, error)
	TouristPoints() []models.TouristPoint
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

func (s *service) RefreshCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.backend.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	s.store.ReplaceCategories(categories)
	return categories, nil
}

func (s *service) Categories() []models.Category {
	return s.store.Snapshot().Categories
}

func (s *service) RefreshTouristPoints(ctx context.Context) ([]models.TouristPoint, error) {
	points, err := s.backend.ListTouristPoints(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tourist points: %w", err)
	}

	s.store.ReplaceTouristPoints(points)
	return points, nil
}

func (s *service) TouristPoints() []models.TouristPoint {
	return s.store.Snapshot().TouristPoints
}
