package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/repository"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/service"
	"github.com/Astemirdum/biblioteca-service/pkg/auth"
	"github.com/Astemirdum/biblioteca-service/pkg/kafka"
	"github.com/golang/mock/gomock"
	"go.uber.org/zap"

	repo_mocks "github.com/Astemirdum/biblioteca-service/biblioteca/internal/repository/mocks"
)

var now = time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

func today() model.Date { return model.NewDate(now) }

func date(s string) model.Date {
	d, err := model.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []kafka.LoanEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e kafka.LoanEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) types() []kafka.LoanEventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]kafka.LoanEventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

var tokenCfg = auth.Config{Secret: "test-secret", TTL: time.Hour, Issuer: "biblioteca"}

type repoMock = repo_mocks.MockRepository

func newService(t *testing.T, opts ...service.Option) (*service.Service, *repo_mocks.MockRepository) {
	t.Helper()
	c := gomock.NewController(t)
	repo := repo_mocks.NewMockRepository(c)
	repo.EXPECT().
		Tx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(repository.Repository) error) error {
			return fn(repo)
		}).
		AnyTimes()

	opts = append([]service.Option{service.WithClock(func() time.Time { return now })}, opts...)
	svc := service.NewService(repo, auth.NewTokenManager(tokenCfg), zap.NewNop(), opts...)
	return svc, repo
}
