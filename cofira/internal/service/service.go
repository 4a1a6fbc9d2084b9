package service

import (
	cofiraRepo "github.com/Astemirdum/biblioteca-service/cofira/internal/repository"
	"go.uber.org/zap"
)

type Service struct {
	repo cofiraRepo.Repository
	log  *zap.Logger
}

func NewService(repo cofiraRepo.Repository, log *zap.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.Named("service"),
	}
}
