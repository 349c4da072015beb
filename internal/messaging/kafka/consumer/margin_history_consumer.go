package consumer

import (
	"context"
	"errors"
	"time"

	"go-apg/internal/events"
	"go-apg/internal/shared/contextutil"

	"github.com/goccy/go-json"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is satisfied by *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// HistoryRecorder reports false when the event was already stored.
type HistoryRecorder interface {
	RecordHistory(ctx context.Context, event events.MarginSimulationCompletedEvent) (bool, error)
}

var errUndecodable = errors.New("undecodable margin simulation event")

var (
	initialRetryBackoff = 500 * time.Millisecond
	maxRetryBackoff     = 30 * time.Second
)

func ConsumeMarginSimulationCompleted(
	ctx context.Context,
	reader MessageReader,
	recorder HistoryRecorder,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.margin_history")
	log.Info("margin history consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("margin history consumer stopped")
				return
			}
			log.Error("fetch margin simulation message failed", zap.Error(err))
			continue
		}

		// A later commit would move the group offset past this message, so it
		// is retried here until it is stored or the consumer stops.
		if !handleWithRetry(ctx, msg, recorder, log) {
			log.Info("margin history consumer stopped")
			return
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit margin simulation message failed", zap.Error(err))
		}
	}
}

// handleWithRetry reports false only when ctx ended before msg was handled.
// Undecodable messages count as handled so they do not block the partition.
func handleWithRetry(ctx context.Context, msg kafkago.Message, recorder HistoryRecorder, log *zap.Logger) bool {
	backoff := initialRetryBackoff
	for attempt := 1; ; attempt++ {
		err := HandleMessage(ctx, msg, recorder, log)
		if err == nil || errors.Is(err, errUndecodable) {
			return true
		}
		if ctx.Err() != nil {
			return false
		}

		log.Warn("retrying margin simulation message",
			zap.Int64("offset", msg.Offset),
			zap.Int("partition", msg.Partition),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", backoff),
		)

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}

		backoff *= 2
		if backoff > maxRetryBackoff {
			backoff = maxRetryBackoff
		}
	}
}

// HandleMessage stores one event. Redelivered events are skipped.
func HandleMessage(ctx context.Context, msg kafkago.Message, recorder HistoryRecorder, log *zap.Logger) error {
	var event events.MarginSimulationCompletedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil || event.EventID == "" {
		log.Error("decode margin simulation event failed",
			zap.Int64("offset", msg.Offset),
			zap.Int("partition", msg.Partition),
			zap.Error(err),
		)
		return errUndecodable
	}

	rid := event.RequestID
	for _, h := range msg.Headers {
		if h.Key == "request_id" && len(h.Value) > 0 {
			rid = string(h.Value)
		}
	}
	if rid != "" {
		ctx = contextutil.WithRequestID(ctx, rid)
	}

	created, err := recorder.RecordHistory(ctx, event)
	if err != nil {
		log.Error("record margin history failed",
			zap.String("event_id", event.EventID),
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return err
	}

	if !created {
		log.Warn("margin simulation event already recorded, skipping",
			zap.String("event_id", event.EventID),
		)
		return nil
	}

	log.Info("margin simulation recorded",
		zap.String("event_id", event.EventID),
		zap.String("request_id", rid),
		zap.Int64("client_id", event.ClientID),
	)
	return nil
}
