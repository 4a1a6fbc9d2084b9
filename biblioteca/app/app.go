package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/biblioteca-service/biblioteca/config"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/cache"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/handler"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/repository"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/server"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/service"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/storage"
	"github.com/Astemirdum/biblioteca-service/biblioteca/migrations"
	"github.com/Astemirdum/biblioteca-service/pkg/auth"
	"github.com/Astemirdum/biblioteca-service/pkg/circuit_breaker"
	"github.com/Astemirdum/biblioteca-service/pkg/kafka"
	"github.com/Astemirdum/biblioteca-service/pkg/logger"
	"github.com/Astemirdum/biblioteca-service/pkg/metrics"
	"github.com/Astemirdum/biblioteca-service/pkg/postgres"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "biblioteca")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %w", err)
	}
	defer db.Close()
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo %w", err)
	}

	avatars, err := storage.NewFS(cfg.Storage.UploadDir)
	if err != nil {
		return fmt.Errorf("storage %w", err)
	}
	m := metrics.New("biblioteca")
	tokens := auth.NewTokenManager(cfg.Auth)
	opts := []service.Option{
		service.WithAvatarStore(avatars),
		service.WithMetrics(m),
	}

	if cfg.Redis.Addr != "" {
		rdb, err := cache.NewClient(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("redis %w", err)
		}
		defer rdb.Close()
		opts = append(opts, service.WithRevokedCache(cache.NewRevokedTokens(rdb)))
	} else {
		log.Warn("REDIS_ADDR is empty, revoked tokens are read from postgres only")
	}

	var retry *kafka.RetryPublisher
	if cfg.Kafka.Enabled() {
		if err := kafka.CreateTopics(cfg.Kafka, kafka.LoanTopic); err != nil {
			log.Warn("kafka.CreateTopics", zap.Error(err))
		}
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return fmt.Errorf("kafka.NewProducer %w", err)
		}
		defer producer.Close()
		cb := circuit_breaker.New(cfg.CircuitBreaker)
		retry = kafka.NewRetryPublisher(kafka.NewPublisher(producer, kafka.LoanTopic, cb), cfg.Kafka, log)
		opts = append(opts, service.WithPublisher(retry))
	} else {
		log.Warn("KAFKA_ADDRS is empty, loan events are not published")
	}

	svc := service.NewService(repo, tokens, log, opts...)

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Scheduler.PurgeSpec, func() {
		purgeCtx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()
		if _, err := svc.PurgeExpiredTokens(purgeCtx); err != nil {
			log.Error("purge revoked tokens", zap.Error(err))
		}
	}); err != nil {
		return fmt.Errorf("scheduler %w", err)
	}

	h := handler.New(svc, tokens, m, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server start ON: ",
			zap.String("addr",
				net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
		return srv.Run()
	})
	if retry != nil {
		g.Go(func() error {
			return retry.Run(gctx)
		})
	}
	g.Go(func() error {
		scheduler.Start()
		<-gctx.Done()
		<-scheduler.Stop().Done()
		return nil
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
