package handler

import (
	"context"

	"github.com/Astemirdum/biblioteca-service/pkg/kafka"
	"github.com/Astemirdum/biblioteca-service/stats/internal/model"
	"github.com/Astemirdum/biblioteca-service/stats/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type StatsService interface {
	GetStats(ctx context.Context) (model.StatsInfo, error)
	GetUserStats(ctx context.Context, userID int64) (model.UserStats, error)
	SaveEvent(ctx context.Context, event kafka.LoanEvent) error
}

var _ StatsService = (*service.Service)(nil)
