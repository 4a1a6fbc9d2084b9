package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/biblioteca-service/pkg/auth"
	"github.com/Astemirdum/biblioteca-service/pkg/kafka"
	"github.com/Astemirdum/biblioteca-service/pkg/logger"
	"github.com/Astemirdum/biblioteca-service/pkg/metrics"
	"github.com/Astemirdum/biblioteca-service/pkg/postgres"
	"github.com/Astemirdum/biblioteca-service/stats/config"
	"github.com/Astemirdum/biblioteca-service/stats/internal/handler"
	"github.com/Astemirdum/biblioteca-service/stats/internal/repository"
	"github.com/Astemirdum/biblioteca-service/stats/internal/server"
	"github.com/Astemirdum/biblioteca-service/stats/internal/service"
	"github.com/Astemirdum/biblioteca-service/stats/migrations"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "stats")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %w", err)
	}
	defer pool.Close()
	repo, err := repository.NewRepository(pool, log)
	if err != nil {
		return fmt.Errorf("repo %w", err)
	}
	svc := service.NewService(repo, log)
	m := metrics.New("stats")

	if !cfg.Kafka.Enabled() {
		return fmt.Errorf("KAFKA_ADDRS is required")
	}
	if err := kafka.CreateTopics(cfg.Kafka, kafka.LoanTopic); err != nil {
		log.Warn("kafka.CreateTopics", zap.Error(err))
	}
	group, err := kafka.NewConsumer(cfg.Kafka, kafka.StatsConsumerGroup)
	if err != nil {
		return fmt.Errorf("kafka.NewConsumer %w", err)
	}
	consumer := handler.NewConsumer(svc.SaveEvent, m, log)

	h := handler.New(svc, auth.NewTokenManager(cfg.Auth), m, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer group.Close()
		return kafka.Consume(gctx, group, consumer, kafka.LoanTopic)
	})
	g.Go(func() error {
		select {
		case <-consumer.Ready():
			log.Info("consumer joined group", zap.String("group", kafka.StatsConsumerGroup))
		case <-gctx.Done():
		}
		return nil
	})
	g.Go(func() error {
		log.Info("http server start ON: ",
			zap.String("addr",
				net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
		return srv.Run()
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Debug("Graceful shutdown", zap.Error(context.Cause(gctx)))

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("Graceful shutdown finished")
	return nil
}
