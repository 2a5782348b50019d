package audit_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapline/tapline/pkg/audit"
)

func TestEventValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid event", func(t *testing.T) {
		t.Parallel()
		event := audit.NewEvent("p-1", "t-1", "authz.authorize", "inventory", audit.OutcomeAllowed, "")
		assert.NoError(t, event.Validate())
		assert.NotEmpty(t, event.ID)
		assert.False(t, event.CreatedAt.IsZero())
	})

	t.Run("missing action", func(t *testing.T) {
		t.Parallel()
		event := audit.Event{Outcome: audit.OutcomeDenied}
		assert.ErrorIs(t, event.Validate(), audit.ErrEventValidation)
	})

	t.Run("missing outcome", func(t *testing.T) {
		t.Parallel()
		event := audit.Event{Action: "authz.authorize"}
		assert.ErrorIs(t, event.Validate(), audit.ErrEventValidation)
	})
}

func TestSlogSink(t *testing.T) {
	t.Parallel()

	t.Run("records events as structured log lines", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		sink := audit.NewSlogSink(slog.New(slog.NewJSONHandler(&buf, nil)))

		event := audit.NewEvent("p-1", "t-1", "authz.authorize", "inventory", audit.OutcomeDenied, "permission_missing")
		require.NoError(t, sink.Record(context.Background(), event))

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "audit", line["msg"])
		assert.Equal(t, "p-1", line["principal_id"])
		assert.Equal(t, "denied", line["outcome"])
		assert.Equal(t, "INFO", line["level"])
	})

	t.Run("bypass outcomes log at warn", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		sink := audit.NewSlogSink(slog.New(slog.NewJSONHandler(&buf, nil)))

		event := audit.NewEvent("root", "", "authz.system_owner_bypass", "settings", audit.OutcomeBypass, "")
		require.NoError(t, sink.Record(context.Background(), event))

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "WARN", line["level"])
	})

	t.Run("rejects invalid events", func(t *testing.T) {
		t.Parallel()
		sink := audit.NewSlogSink(nil)
		assert.ErrorIs(t, sink.Record(context.Background(), audit.Event{}), audit.ErrEventValidation)
	})
}

func TestMultiSink(t *testing.T) {
	t.Parallel()

	event := audit.NewEvent("p-1", "t-1", "authz.authorize", "", audit.OutcomeAllowed, "")

	t.Run("fans out to every sink", func(t *testing.T) {
		t.Parallel()
		var first, second int
		sink := audit.NewMultiSink(
			audit.SinkFunc(func(ctx context.Context, e audit.Event) error { first++; return nil }),
			nil,
			audit.SinkFunc(func(ctx context.Context, e audit.Event) error { second++; return nil }),
		)

		require.NoError(t, sink.Record(context.Background(), event))
		assert.Equal(t, 1, first)
		assert.Equal(t, 1, second)
	})

	t.Run("a failing member does not stop the rest", func(t *testing.T) {
		t.Parallel()
		var reached bool
		boom := errors.New("boom")
		sink := audit.NewMultiSink(
			audit.SinkFunc(func(ctx context.Context, e audit.Event) error { return boom }),
			audit.SinkFunc(func(ctx context.Context, e audit.Event) error { reached = true; return nil }),
		)

		err := sink.Record(context.Background(), event)
		assert.ErrorIs(t, err, boom)
		assert.True(t, reached)
	})
}

func TestNoopSink(t *testing.T) {
	t.Parallel()
	assert.NoError(t, audit.NewNoopSink().Record(context.Background(), audit.Event{}))
}
