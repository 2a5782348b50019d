package audit

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultStreamName is the Redis stream audit events are appended to.
const DefaultStreamName = "tapline:audit"

// DefaultStreamMaxLen caps the stream so the feed cannot grow without
// bound; durable history lives in the relational store, not here.
const DefaultStreamMaxLen = 100_000

// StreamSink appends events to a capped Redis stream.
type StreamSink struct {
	client *redis.Client
	stream string
	maxLen int64
}

// StreamOption configures a StreamSink.
type StreamOption func(*StreamSink)

// WithStreamName overrides the stream key.
func WithStreamName(name string) StreamOption {
	return func(s *StreamSink) {
		if name != "" {
			s.stream = name
		}
	}
}

// WithStreamMaxLen overrides the approximate stream cap.
func WithStreamMaxLen(maxLen int64) StreamOption {
	return func(s *StreamSink) {
		if maxLen > 0 {
			s.maxLen = maxLen
		}
	}
}

// NewStreamSink creates a sink appending to a Redis stream.
func NewStreamSink(client *redis.Client, opts ...StreamOption) *StreamSink {
	if client == nil {
		panic("audit: redis client cannot be nil")
	}
	s := &StreamSink{
		client: client,
		stream: DefaultStreamName,
		maxLen: DefaultStreamMaxLen,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Record appends the event with XADD MAXLEN ~.
func (s *StreamSink) Record(ctx context.Context, event Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	err := s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		MaxLen: s.maxLen,
		Approx: true,
		Values: map[string]any{
			"event_id":     event.ID,
			"principal_id": event.PrincipalID,
			"tenant_id":    event.TenantID,
			"action":       event.Action,
			"module":       event.Module,
			"outcome":      string(event.Outcome),
			"detail":       event.Detail,
			"created_at":   event.CreatedAt.Format(time.RFC3339Nano),
		},
	}).Err()
	if err != nil {
		return errors.Join(ErrSinkUnavailable, err)
	}
	return nil
}
