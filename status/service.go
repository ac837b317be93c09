package status

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"turipass.io/terminal/api"
	"turipass.io/terminal/models"
	"turipass.io/terminal/models/enum"
)

const (
	cacheKey = "turipass:statuses"
	cacheTTL = 5 * time.Minute
)

type Backend interface {
	ListStatuses(ctx context.Context) ([]models.Status, error)
}

var _ Backend = (*api.Client)(nil)

// Service resolves status ids by name from the server-owned vocabulary.
// The vocabulary is read-mostly, so it sits behind a short-TTL redis
// cache; cache trouble never fails a lookup, it just falls back to the
// backend fetch.
type Service interface {
	List(ctx context.Context) ([]models.Status, error)
	ResolveByName(ctx context.Context, name enum.StatusName) (*models.Status, error)
}

type service struct {
	backend Backend
	rdb     *redis.Client
	logger  *zap.Logger
}

// NewService builds the status service. rdb may be nil, which disables
// caching entirely.
func NewService(backend Backend, rdb *redis.Client, logger *zap.Logger) Service {
	return &service{
		backend: backend,
		rdb:     rdb,
		logger:  logger,
	}
}

func (s *service) List(ctx context.Context) ([]models.Status, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	statuses, err := s.backend.ListStatuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch status vocabulary: %w", err)
	}

	s.toCache(ctx, statuses)
	return statuses, nil
}

func (s *service) ResolveByName(ctx context.Context, name enum.StatusName) (*models.Status, error) {
	statuses, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, status := range statuses {
		if status.Name == string(name) {
			return &status, nil
		}
	}
	return nil, fmt.Errorf("status %q not present in vocabulary", name)
}

func (s *service) fromCache(ctx context.Context) []models.Status {
	if s.rdb == nil {
		return nil
	}

	payload, err := s.rdb.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("status cache read failed", zap.Error(err))
		}
		return nil
	}

	var statuses []models.Status
	if err = json.Unmarshal(payload, &statuses); err != nil {
		s.logger.Warn("status cache held malformed payload", zap.Error(err))
		return nil
	}
	return statuses
}

func (s *service) toCache(ctx context.Context, statuses []models.Status) {
	if s.rdb == nil {
		return
	}

	payload, err := json.Marshal(statuses)
	if err != nil {
		return
	}
	if err = s.rdb.Set(ctx, cacheKey, payload, cacheTTL).Err(); err != nil {
		s.logger.Warn("status cache write failed", zap.Error(err))
	}
}
