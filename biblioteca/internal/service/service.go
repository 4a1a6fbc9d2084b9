package service

import (
	"context"
	"time"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/repository"
	"github.com/Astemirdum/biblioteca-service/pkg/auth"
	"github.com/Astemirdum/biblioteca-service/pkg/kafka"
	"github.com/Astemirdum/biblioteca-service/pkg/metrics"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

// RevokedCache is a fast path in front of the revoked_tokens table.
// It remembers both verdicts; the negative one only briefly.
type RevokedCache interface {
	Lookup(ctx context.Context, jti string) (revoked, found bool, err error)
	MarkRevoked(ctx context.Context, jti string, ttl time.Duration) error
	MarkActive(ctx context.Context, jti string, ttl time.Duration) error
}

type AvatarStore interface {
	Save(ctx context.Context, userID int64, ext string, data []byte) (string, error)
	Open(ctx context.Context, path string) ([]byte, error)
}

type Service struct {
	log       *zap.Logger
	repo      repository.Repository
	tokens    *auth.TokenManager
	cache     RevokedCache
	avatars   AvatarStore
	publisher kafka.Publisher
	metrics   *metrics.Metrics
	now       func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithRevokedCache(cache RevokedCache) Option {
	return func(s *Service) { s.cache = cache }
}

func WithAvatarStore(store AvatarStore) Option {
	return func(s *Service) { s.avatars = store }
}

func WithPublisher(p kafka.Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func NewService(repo repository.Repository, tokens *auth.TokenManager, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:       log.Named("service"),
		repo:      repo,
		tokens:    tokens,
		publisher: kafka.NopPublisher(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) today() model.Date {
	return model.NewDate(s.now())
}
