package terms

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"turipass.io/terminal/api"
	"turipass.io/terminal/models"
)

const (
	cacheKey = "turipass:terms:current"
	cacheTTL = 5 * time.Minute
)

type Backend interface {
	GetCurrentTerms(ctx context.Context) (*models.Terms, error)
	AcceptTerms(ctx context.Context, userID int64) error
}

var _ Backend = (*api.Client)(nil)

type Service interface {
	Current(ctx context.Context) (*models.Terms, error)
	Accept(ctx context.Context, userID int64) error
	// Outstanding reports whether the partner still has to accept the
	// current terms version.
	Outstanding(partner *models.Partner, current *models.Terms) bool
}

type service struct {
	backend Backend
	rdb     *redis.Client
	logger  *zap.Logger
}

// NewService builds the terms service. rdb may be nil, which disables
// caching of the current document.
func NewService(backend Backend, rdb *redis.Client, logger *zap.Logger) Service {
	return &service{
		backend: backend,
		rdb:     rdb,
		logger:  logger,
	}
}

// Current fetches the published terms document. The document changes
// rarely, so it sits behind the same short-TTL cache as the status
// vocabulary; cache trouble falls back to the backend fetch.
func (s *service) Current(ctx context.Context) (*models.Terms, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	current, err := s.backend.GetCurrentTerms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch current terms: %w", err)
	}

	s.toCache(ctx, current)
	return current, nil
}

func (s *service) Accept(ctx context.Context, userID int64) error {
	if err := s.backend.AcceptTerms(ctx, userID); err != nil {
		return fmt.Errorf("failed to accept terms: %w", err)
	}
	return nil
}

// Outstanding is true when the partner never accepted any terms, or
// accepted a version older than the current one.
func (s *service) Outstanding(partner *models.Partner, current *models.Terms) bool {
	if partner == nil || current == nil {
		return false
	}
	if partner.Terms == nil {
		return true
	}
	return partner.Terms.Version != current.Version
}

func (s *service) fromCache(ctx context.Context) *models.Terms {
	if s.rdb == nil {
		return nil
	}

	payload, err := s.rdb.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("terms cache read failed", zap.Error(err))
		}
		return nil
	}

	var current models.Terms
	if err = json.Unmarshal(payload, &current); err != nil {
		s.logger.Warn("terms cache held malformed payload", zap.Error(err))
		return nil
	}
	return &current
}

func (s *service) toCache(ctx context.Context, current *models.Terms) {
	if s.rdb == nil || current == nil {
		return
	}

	payload, err := json.Marshal(current)
	if err != nil {
		return
	}
	if err = s.rdb.Set(ctx, cacheKey, payload, cacheTTL).Err(); err != nil {
		s.logger.Warn("terms cache write failed", zap.Error(err))
	}
}
