package service

import (
	"context"

	"github.com/Astemirdum/biblioteca-service/pkg/kafka"
	"github.com/Astemirdum/biblioteca-service/stats/internal/errs"
	"github.com/Astemirdum/biblioteca-service/stats/internal/model"
	statsRepo "github.com/Astemirdum/biblioteca-service/stats/internal/repository"
	"go.uber.org/zap"
)

type Service struct {
	log  *zap.Logger
	repo statsRepo.Repository
}

func NewService(repo statsRepo.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log.Named("service"),
		repo: repo,
	}
}

func (s *Service) GetStats(ctx context.Context) (model.StatsInfo, error) {
	events, err := s.repo.ListEvents(ctx)
	if err != nil {
		return model.StatsInfo{}, err
	}
	return model.StatsInfo{Data: model.Aggregate(events)}, nil
}

func (s *Service) GetUserStats(ctx context.Context, userID int64) (model.UserStats, error) {
	events, err := s.repo.ListUserEvents(ctx, userID)
	if err != nil {
		return model.UserStats{}, err
	}
	for _, st := range model.Aggregate(events) {
		if st.UserID == userID {
			return st, nil
		}
	}
	return model.UserStats{}, errs.ErrNotFound
}

// SaveEvent used by kafka consumer.
func (s *Service) SaveEvent(ctx context.Context, event kafka.LoanEvent) error {
	if event.UserID == 0 || event.LoanID == 0 {
		s.log.Warn("skip incomplete loan event", zap.String("id", event.ID.String()))
		return nil
	}
	return s.repo.SaveEvent(ctx, event)
}
