package partner

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"turipass.io/terminal/api"
	"turipass.io/terminal/models"
	"turipass.io/terminal/store"
)

type Backend interface {
	GetPartner(ctx context.Context, partnerID int64) (*models.Partner, error)
}

var _ Backend = (*api.Client)(nil)

type Service interface {
	Refresh(ctx context.Context, partnerID int64) (*models.Partner, error)
	Current() *models.Partner
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

func (s *service) Refresh(ctx context.Context, partnerID int64) (*models.Partner, error) {
	p, err := s.backend.GetPartner(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch partner profile: %w", err)
	}

	s.store.SetPartner(p)
	return p, nil
}

func (s *service) Current() *models.Partner {
	return s.store.Snapshot().Partner
}
