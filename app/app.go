package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"library-catalog/config"
	"library-catalog/internal/audit"
	"library-catalog/internal/engine"
	"library-catalog/internal/handler"
	"library-catalog/internal/server"
	"library-catalog/internal/store"
	"library-catalog/internal/store/memory"
	pgstore "library-catalog/internal/store/postgres"
	"library-catalog/internal/store/postgres/migrations"
	"library-catalog/pkg/kafka"
	"library-catalog/pkg/logger"
	"library-catalog/pkg/postgres"
)

func Run(cfg config.Config) error {
	log := logger.NewLogger(cfg.Log, "catalog")

	var (
		st      store.Store
		closeDB func() error
	)
	switch cfg.Store.Backend {
	case config.StoreBackendMemory:
		st = memory.New()
	case config.StoreBackendPostgres:
		db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
		if err != nil {
			return fmt.Errorf("db init %v", err)
		}
		st = pgstore.NewStore(db, log)
		closeDB = db.Close
	default:
		return fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	opts := []engine.Option{
		engine.WithAtomicOps(cfg.Engine.AtomicOps),
		engine.WithRatingBlocksDelete(cfg.Engine.RatingBlocksDelete),
	}
	var closeProducer func() error
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return fmt.Errorf("kafka producer %v", err)
		}
		closeProducer = producer.Close
		opts = append(opts, engine.WithAuditPublisher(audit.NewKafkaPublisher(producer, cfg.Kafka.Topic, log)))
	}

	eng := engine.New(st, log, opts...)
	h := handler.New(eng, log)

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Run)
	g.Go(func() error {
		<-gctx.Done()
		log.Debug("Graceful shutdown")

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	err := g.Wait()
	if closeDB != nil {
		_ = closeDB()
	}
	if closeProducer != nil {
		_ = closeProducer()
	}
	log.Info("Graceful shutdown finished")
	return err
}
