package consumption

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go.uber.org/zap"

	"turipass.io/terminal/models"
	"turipass.io/terminal/store"
)

type mockBackend struct {
	mock.Mock
}

func (m *mockBackend) CreateConsumption(ctx context.Context, create models.ConsumptionCreate) (*models.ConsumptionRecord, error) {
	args := m.Called(ctx, create)
	if record := args.Get(0); record != nil {
		return record.(*models.ConsumptionRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBackend) ListConsumptions(ctx context.Context, partnerID int64) ([]models.ConsumptionRecord, error) {
	args := m.Called(ctx, partnerID)
	if records := args.Get(0); records != nil {
		return records.([]models.ConsumptionRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBackend) UpdateConsumptionStatus(ctx context.Context, id, statusID int64) (*models.ConsumptionRecord, error) {
	args := m.Called(ctx, id, statusID)
	if record := args.Get(0); record != nil {
		return record.(*models.ConsumptionRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func activeRecord(id int64) models.ConsumptionRecord {
	return models.ConsumptionRecord{
		ID:               id,
		PromotionID:      10,
		UserID:           42,
		QuantityConsumed: 2,
		AmountConsumed:   30.50,
		ConsumptionDate:  time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC),
		Status:           &models.Status{ID: 1, Name: "active"},
	}
}

func TestSubmit(t *testing.T) {
	t.Run("successful submit writes the confirmed record to the store", func(t *testing.T) {
		backend := new(mockBackend)
		st := store.New()
		svc := NewService(backend, st, zap.NewNop())

		record := activeRecord(1)
		backend.On("CreateConsumption", mock.Anything, mock.Anything).Return(&record, nil).Once()

		got, err := svc.Submit(context.Background(), models.ConsumptionCreate{UserID: 42, PromotionID: 10})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), got.ID)
		assert.Len(t, svc.ListActive(), 1)
		backend.AssertExpectations(t)
	})

	t.Run("failed submit leaves the store untouched", func(t *testing.T) {
		backend := new(mockBackend)
		st := store.New()
		svc := NewService(backend, st, zap.NewNop())

		backend.On("CreateConsumption", mock.Anything, mock.Anything).
			Return(nil, errors.New("backend down")).Once()

		_, err := svc.Submit(context.Background(), models.ConsumptionCreate{UserID: 42, PromotionID: 10})
		assert.Error(t, err)
		assert.Empty(t, svc.ListActive())
		backend.AssertExpectations(t)
	})
}

func TestListActive(t *testing.T) {
	backend := new(mockBackend)
	st := store.New()
	svc := NewService(backend, st, zap.NewNop())

	deleted := activeRecord(2)
	deleted.Status = &models.Status{ID: 3, Name: "deleted"}
	noStatus := activeRecord(3)
	noStatus.Status = nil
	st.ReplaceConsumptions([]models.ConsumptionRecord{activeRecord(1), deleted, noStatus})

	active := svc.ListActive()
	assert.Len(t, active, 1)
	assert.Equal(t, int64(1), active[0].ID)
}

func TestSetStatus(t *testing.T) {
	t.Run("accepted update replaces the stored record", func(t *testing.T) {
		backend := new(mockBackend)
		st := store.New()
		svc := NewService(backend, st, zap.NewNop())
		st.ReplaceConsumptions([]models.ConsumptionRecord{activeRecord(1)})

		updated := activeRecord(1)
		updated.Status = &models.Status{ID: 3, Name: "deleted"}
		backend.On("UpdateConsumptionStatus", mock.Anything, int64(1), int64(3)).Return(&updated, nil).Once()

		got, err := svc.SetStatus(context.Background(), 1, 3)
		assert.NoError(t, err)
		assert.Equal(t, "deleted", got.Status.Name)
		assert.Empty(t, svc.ListActive())
		backend.AssertExpectations(t)
	})

	t.Run("rejected update leaves the record visible", func(t *testing.T) {
		backend := new(mockBackend)
		st := store.New()
		svc := NewService(backend, st, zap.NewNop())
		st.ReplaceConsumptions([]models.ConsumptionRecord{activeRecord(1)})

		backend.On("UpdateConsumptionStatus", mock.Anything, int64(1), int64(3)).
			Return(nil, errors.New("backend down")).Once()

		_, err := svc.SetStatus(context.Background(), 1, 3)
		assert.Error(t, err)
		assert.Len(t, svc.ListActive(), 1)
		backend.AssertExpectations(t)
	})
}

func TestRefresh(t *testing.T) {
	backend := new(mockBackend)
	st := store.New()
	svc := NewService(backend, st, zap.NewNop())
	st.ReplaceConsumptions([]models.ConsumptionRecord{activeRecord(99)})

	backend.On("ListConsumptions", mock.Anything, int64(7)).
		Return([]models.ConsumptionRecord{activeRecord(1), activeRecord(2)}, nil).Once()

	records, err := svc.Refresh(context.Background(), 7)
	assert.NoError(t, err)
	assert.Len(t, records, 2)

	// Refresh replaces the whole collection; the stale record is gone.
	active := svc.ListActive()
	assert.Len(t, active, 2)
	for _, record := range active {
		assert.NotEqual(t, int64(99), record.ID)
	}
	backend.AssertExpectations(t)
}
