package status

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go.uber.org/zap"

	"turipass.io/terminal/models"
	"turipass.io/terminal/models/enum"
)

type mockBackend struct {
	mock.Mock
}

func (m *mockBackend) ListStatuses(ctx context.Context) ([]models.Status, error) {
	args := m.Called(ctx)
	if statuses := args.Get(0); statuses != nil {
		return statuses.([]models.Status), args.Error(1)
	}
	return nil, args.Error(1)
}

func vocabulary() []models.Status {
	return []models.Status{
		{ID: 1, Name: "active"},
		{ID: 2, Name: "inactive"},
		{ID: 3, Name: "deleted"},
	}
}

func TestResolveByName(t *testing.T) {
	t.Run("resolves a known name to its server id", func(t *testing.T) {
		backend := new(mockBackend)
		backend.On("ListStatuses", mock.Anything).Return(vocabulary(), nil).Once()
		svc := NewService(backend, nil, zap.NewNop())

		status, err := svc.ResolveByName(context.Background(), enum.StatusNameDeleted)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), status.ID)
		backend.AssertExpectations(t)
	})

	t.Run("unknown name is an error", func(t *testing.T) {
		backend := new(mockBackend)
		backend.On("ListStatuses", mock.Anything).Return(vocabulary(), nil).Once()
		svc := NewService(backend, nil, zap.NewNop())

		_, err := svc.ResolveByName(context.Background(), enum.StatusName("archived"))
		assert.Error(t, err)
	})

	t.Run("backend failure surfaces", func(t *testing.T) {
		backend := new(mockBackend)
		backend.On("ListStatuses", mock.Anything).Return(nil, errors.New("backend down")).Once()
		svc := NewService(backend, nil, zap.NewNop())

		_, err := svc.ResolveByName(context.Background(), enum.StatusNameActive)
		assert.Error(t, err)
	})
}

func TestList(t *testing.T) {
	t.Run("nil redis disables caching and still lists", func(t *testing.T) {
		backend := new(mockBackend)
		backend.On("ListStatuses", mock.Anything).Return(vocabulary(), nil).Twice()
		svc := NewService(backend, nil, zap.NewNop())

		first, err := svc.List(context.Background())
		assert.NoError(t, err)
		second, err := svc.List(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, first, second)
		backend.AssertExpectations(t)
	})
}
