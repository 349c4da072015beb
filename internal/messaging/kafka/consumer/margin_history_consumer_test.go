package consumer_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go-apg/internal/events"
	"go-apg/internal/messaging/kafka/consumer"
	"go-apg/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRecorder struct {
	created bool
	err     error
	// failures makes the first n calls fail before err/created apply
	failures int
	onErr    func(attempt int)
	got      []events.MarginSimulationCompletedEvent
	rids     []string
}

func (f *fakeRecorder) RecordHistory(ctx context.Context, e events.MarginSimulationCompletedEvent) (bool, error) {
	f.got = append(f.got, e)
	f.rids = append(f.rids, contextutil.GetRequestID(ctx))
	if f.failures > 0 {
		f.failures--
		return false, errors.New("db down")
	}
	if f.err != nil {
		if f.onErr != nil {
			f.onErr(len(f.got))
		}
		return false, f.err
	}
	return f.created, nil
}

type fakeReader struct {
	queue     []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.queue) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafkago.Message{}, ctx.Err()
	}
	m := r.queue[0]
	r.queue = r.queue[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

const validEvent = `{"event_id":"e-1","event_type":"margin.simulation.completed","client_id":3,"resource_type":"Pigiste","proposed_bill_rate":100,"cost_per_hour":100,"target_status":"OK","proposed_status":"KO","occurred_at":"2026-03-01T10:00:00Z"}`

func TestHandleMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("records event with header request id", func(t *testing.T) {
		rec := &fakeRecorder{created: true}
		msg := kafkago.Message{
			Value:   []byte(validEvent),
			Headers: []kafkago.Header{{Key: "request_id", Value: []byte("req-9")}},
		}

		err := consumer.HandleMessage(ctx, msg, rec, zap.NewNop())

		require.NoError(t, err)
		require.Len(t, rec.got, 1)
		assert.Equal(t, "e-1", rec.got[0].EventID)
		assert.Equal(t, int64(3), rec.got[0].ClientID)
		assert.Equal(t, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), rec.got[0].OccurredAt.UTC())
		assert.Equal(t, "req-9", rec.rids[0])
	})

	t.Run("duplicate is not an error", func(t *testing.T) {
		rec := &fakeRecorder{created: false}

		err := consumer.HandleMessage(ctx, kafkago.Message{Value: []byte(validEvent)}, rec, zap.NewNop())

		assert.NoError(t, err)
	})

	t.Run("garbage payload", func(t *testing.T) {
		rec := &fakeRecorder{}

		err := consumer.HandleMessage(ctx, kafkago.Message{Value: []byte("not json")}, rec, zap.NewNop())

		assert.Error(t, err)
		assert.Empty(t, rec.got)
	})
}

func TestConsumeMarginSimulationCompleted_CommitPolicy(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		cancel: cancel,
		queue: []kafkago.Message{
			{Offset: 1, Value: []byte(validEvent)},
			{Offset: 2, Value: []byte("not json")},
		},
	}
	rec := &fakeRecorder{created: true}

	consumer.ConsumeMarginSimulationCompleted(ctx, reader, rec, zap.NewNop())

	// poison messages are committed so they do not block the partition
	assert.Equal(t, []int64{1, 2}, reader.committed)
}

func TestConsumeMarginSimulationCompleted_RetriesFailedStoreBeforeNextMessage(t *testing.T) {
	consumer.SetRetryBackoff(t, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	second := strings.Replace(validEvent, `"e-1"`, `"e-2"`, 1)
	reader := &fakeReader{
		cancel: cancel,
		queue: []kafkago.Message{
			{Offset: 5, Value: []byte(validEvent)},
			{Offset: 6, Value: []byte(second)},
		},
	}
	rec := &fakeRecorder{created: true, failures: 1}

	consumer.ConsumeMarginSimulationCompleted(ctx, reader, rec, zap.NewNop())

	require.Len(t, rec.got, 3)
	assert.Equal(t, "e-1", rec.got[0].EventID)
	assert.Equal(t, "e-1", rec.got[1].EventID)
	assert.Equal(t, "e-2", rec.got[2].EventID)
	assert.Equal(t, []int64{5, 6}, reader.committed)
}

func TestConsumeMarginSimulationCompleted_StoreFailureIsNotCommitted(t *testing.T) {
	consumer.SetRetryBackoff(t, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		cancel: cancel,
		queue: []kafkago.Message{
			{Offset: 5, Value: []byte(validEvent)},
			{Offset: 6, Value: []byte(validEvent)},
		},
	}
	rec := &fakeRecorder{
		err: errors.New("db down"),
		onErr: func(attempt int) {
			if attempt == 3 {
				cancel()
			}
		},
	}

	consumer.ConsumeMarginSimulationCompleted(ctx, reader, rec, zap.NewNop())

	// stopping mid-retry leaves both offsets uncommitted
	assert.Empty(t, reader.committed)
	assert.Len(t, rec.got, 3)
	assert.Len(t, reader.queue, 1)
}
