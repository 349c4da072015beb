package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"go-apg/internal/config"
	"go-apg/internal/events"
	"go-apg/internal/margin"
	"go-apg/internal/messaging/kafka/consumer"
	"go-apg/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	// Only RecordHistory is used here, so the simulation readers stay nil.
	historyService := margin.NewService(nil, nil, margin.NewHistoryRepository(gormDB), logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.MarginSimulationCompletedTopic,
		GroupID:        cfg.Kafka.ConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer.ConsumeMarginSimulationCompleted(ctx, reader, historyService, logger)

	logger.Info("consumer shutting down")
	return nil
}
