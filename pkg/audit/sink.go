package audit

import (
	"context"
	"errors"
	"log/slog"
)

// Sink accepts audit events. Implementations should return quickly;
// callers treat Record as best-effort and will not retry.
type Sink interface {
	Record(ctx context.Context, event Event) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, event Event) error

// Record calls the function.
func (f SinkFunc) Record(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// SlogSink writes events to a structured logger.
type SlogSink struct {
	log *slog.Logger
}

// NewSlogSink creates a sink over the given logger; nil falls back to
// slog.Default.
func NewSlogSink(log *slog.Logger) *SlogSink {
	if log == nil {
		log = slog.Default()
	}
	return &SlogSink{log: log}
}

// Record logs the event at INFO, or WARN for bypass outcomes so the
// escape hatch stands out in the log stream.
func (s *SlogSink) Record(ctx context.Context, event Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	level := slog.LevelInfo
	if event.Outcome == OutcomeBypass {
		level = slog.LevelWarn
	}
	s.log.LogAttrs(ctx, level, "audit",
		slog.String("event_id", event.ID),
		slog.String("principal_id", event.PrincipalID),
		slog.String("tenant_id", event.TenantID),
		slog.String("action", event.Action),
		slog.String("module", event.Module),
		slog.String("outcome", string(event.Outcome)),
		slog.String("detail", event.Detail),
		slog.Time("created_at", event.CreatedAt),
	)
	return nil
}

// NoopSink discards every event.
type NoopSink struct{}

// NewNoopSink creates a sink that discards events.
func NewNoopSink() *NoopSink { return &NoopSink{} }

// Record discards the event.
func (*NoopSink) Record(context.Context, Event) error { return nil }

// MultiSink fans events out to several sinks. Every sink sees every
// event; errors are collected, not short-circuited.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink creates a fan-out sink; nil members are skipped.
func NewMultiSink(sinks ...Sink) *MultiSink {
	out := make([]Sink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return &MultiSink{sinks: out}
}

// Record forwards the event to every sink.
func (m *MultiSink) Record(ctx context.Context, event Event) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Record(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
