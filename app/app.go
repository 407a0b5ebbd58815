package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/pagebound/bookclub-service/config"
	"github.com/pagebound/bookclub-service/internal/handler"
	"github.com/pagebound/bookclub-service/internal/repository"
	"github.com/pagebound/bookclub-service/internal/service"
	"github.com/pagebound/bookclub-service/internal/stats"
	"github.com/pagebound/bookclub-service/migrations"
	"github.com/pagebound/bookclub-service/pkg/kafka"
	"github.com/pagebound/bookclub-service/pkg/logger"
	"github.com/pagebound/bookclub-service/pkg/postgres"
	"github.com/pagebound/bookclub-service/pkg/server"
)

func Run(cfg config.Config) {
	log := logger.NewLogger(cfg.Log, "bookclub")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	pool, err := postgres.NewPgxPool(context.Background(), &cfg.Database)
	if err != nil {
		log.Fatal("pgx pool init", zap.Error(err))
	}

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}
	statsRepo, err := stats.NewRepository(pool, log)
	if err != nil {
		log.Fatal("stats repo", zap.Error(err))
	}

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		log.Fatal("kafka.NewProducer", zap.Error(err))
	}

	svc := service.NewService(repo, statsRepo, service.NewEnqueuer(producer), service.Config{
		ApplicationsPerPage: cfg.Pages.Applications,
		UsersPerPage:        cfg.Pages.Users,
		ClubsPerPage:        cfg.Pages.Clubs,
	}, log)

	consumeCtx, consumeCancel := context.WithCancel(context.Background())
	defer consumeCancel()
	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.StatsConsumerGroup)
	if err != nil {
		log.Fatal("kafka.NewConsumer", zap.Error(err))
	}
	go kafka.Consume(consumeCtx, consumer, handler.NewConsumer(statsRepo.Record, log), kafka.ClubEventsTopic)

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	consumeCancel()
	if err := producer.Close(); err != nil {
		log.Error("producer.Close", zap.Error(err))
	}
	db.Close()
	pool.Close()
	log.Info("Graceful shutdown finished")
}
