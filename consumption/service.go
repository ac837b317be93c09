package consumption

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"turipass.io/terminal/api"
	"turipass.io/terminal/models"
	"turipass.io/terminal/models/enum"
	"turipass.io/terminal/store"
)

type Backend interface {
	CreateConsumption(ctx context.Context, create models.ConsumptionCreate) (*models.ConsumptionRecord, error)
	ListConsumptions(ctx context.Context, partnerID int64) ([]models.ConsumptionRecord, error)
	UpdateConsumptionStatus(ctx context.Context, id, statusID int64) (*models.ConsumptionRecord, error)
}

var _ Backend = (*api.Client)(nil)

type Service interface {
	Submit(ctx context.Context, create models.ConsumptionCreate) (*models.ConsumptionRecord, error)
	Refresh(ctx context.Context, partnerID int64) ([]models.ConsumptionRecord, error)
	ListActive() []models.ConsumptionRecord
	SetStatus(ctx context.Context, id, statusID int64) (*models.ConsumptionRecord, error)
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

// Submit records one redemption. The record is created exactly once;
// nothing is written to the store until the backend confirms it.
func (s *service) Submit(ctx context.Context, create models.ConsumptionCreate) (*models.ConsumptionRecord, error) {
	record, err := s.backend.CreateConsumption(ctx, create)
	if err != nil {
		return nil, fmt.Errorf("failed to submit consumption: %w", err)
	}

	s.store.UpsertConsumption(*record)
	return record, nil
}

func (s *service) Refresh(ctx context.Context, partnerID int64) ([]models.ConsumptionRecord, error) {
	records, err := s.backend.ListConsumptions(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch consumptions: %w", err)
	}

	s.store.ReplaceConsumptions(records)
	return records, nil
}

// ListActive returns the history the operator sees: records already
// soft-deleted are excluded, and there is no "show deleted" mode.
func (s *service) ListActive() []models.ConsumptionRecord {
	snapshot := s.store.Snapshot()

	active := make([]models.ConsumptionRecord, 0, len(snapshot.Consumptions))
	for _, record := range snapshot.Consumptions {
		if record.Status != nil && record.Status.Name == string(enum.StatusNameActive) {
			active = append(active, record)
		}
	}
	return active
}

// SetStatus flips a record's status remotely. The store only changes
// after the backend accepts the update, so a failed soft delete leaves
// the record visible.
func (s *service) SetStatus(ctx context.Context, id, statusID int64) (*models.ConsumptionRecord, error) {
	record, err := s.backend.UpdateConsumptionStatus(ctx, id, statusID)
	if err != nil {
		return nil, fmt.Errorf("failed to update consumption status: %w", err)
	}

	s.store.UpsertConsumption(*record)
	return record, nil
}
