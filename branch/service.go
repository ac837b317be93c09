package branch

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"turipass.io/terminal/api"
	"turipass.io/terminal/models"
	"turipass.io/terminal/store"
)

type Backend interface {
	ListBranches(ctx context.Context, partnerID int64) ([]models.Branch, error)
	CreateBranch(ctx context.Context, create models.BranchCreate) (*models.Branch, error)
	UpdateBranch(ctx context.Context, id int64, update models.BranchUpdate) (*models.Branch, error)
}

var _ Backend = (*api.Client)(nil)

type Service interface {
	Refresh(ctx context.Context, partnerID int64) ([]models.Branch, error)
	List() []models.Branch
	Create(ctx context.Context, create models.BranchCreate) (*models.Branch, error)
	Update(ctx context.Context, id int64, update models.BranchUpdate) (*models.Branch, error)
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

func (s *service) Refresh(ctx context.Context, partnerID int64) ([]models.Branch, error) {
	branches, err := s.backend.ListBranches(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch branches: %w", err)
	}

	s.store.ReplaceBranches(branches)
	return branches, nil
}

func (s *service) List() []models.Branch {
	return s.store.Snapshot().Branches
}

func (s *service) Create(ctx context.Context, create models.BranchCreate) (*models.Branch, error) {
	branch, err := s.backend.CreateBranch(ctx, create)
	if err != nil {
		return nil, fmt.Errorf("failed to create branch: %w", err)
	}

	s.store.UpsertBranch(*branch)
	return branch, nil
}

func (s *service) Update(ctx context.Context, id int64, update models.BranchUpdate) (*models.Branch, error) {
	branch, err := s.backend.UpdateBranch(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update branch: %w", err)
	}

	s.store.UpsertBranch(*branch)
	return branch, nil
}
