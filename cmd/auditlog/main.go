package main

import (
	"context"
	stdLog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"library-catalog/config"
	"library-catalog/internal/auditlog"
	"library-catalog/pkg/kafka"
	"library-catalog/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("load envs from .env ", err)
	}
	cfg := config.NewConfig()
	log := logger.NewLogger(cfg.Log, "auditlog")
	if !cfg.Kafka.Enabled() {
		log.Fatal("KAFKA_ADDRS is required")
	}

	group, err := kafka.NewConsumerGroup(cfg.Kafka)
	if err != nil {
		log.Fatal("kafka consumer group", zap.Error(err))
	}
	defer func() { _ = group.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	consumer := auditlog.NewConsumer(log)
	log.Info("consuming", zap.String("topic", cfg.Kafka.Topic))
	for ctx.Err() == nil {
		if err := group.Consume(ctx, []string{cfg.Kafka.Topic}, consumer); err != nil {
			log.Error("consume", zap.Error(err))
		}
		consumer.Reset()
	}
}
