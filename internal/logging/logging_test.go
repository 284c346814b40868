package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/cognigames/cogni-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySink struct {
	mu      sync.Mutex
	entries []models.SystemLog
}

func (s *memorySink) CreateBatch(_ context.Context, entries []models.SystemLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entries...)
	return nil
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestPGHandler_PersistsErrorsOnStop(t *testing.T) {
	sink := &memorySink{}
	h := NewPGHandler(sink)
	logger := slog.New(h).With("request_id", "req-1")

	logger.Info("ignored")
	logger.Error("score insert failed",
		"error", errors.New("connection reset"),
		"user_id", "u-1",
		"latency_ms", 12.6,
		"game_type", "color",
	)
	h.Stop()

	require.Len(t, sink.entries, 1)
	entry := sink.entries[0]
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "score insert failed", entry.Message)
	assert.Equal(t, "req-1", entry.RequestID)
	assert.Equal(t, "connection reset", entry.Error)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, "u-1", *entry.UserID)
	assert.Equal(t, 13, entry.LatencyMs)
	assert.JSONEq(t, `{"game_type":"color"}`, string(entry.Extra))
}

func TestMultiHandler_FansOut(t *testing.T) {
	var buf bytes.Buffer
	sink := &memorySink{}
	pg := NewPGHandler(sink)
	logger := slog.New(NewMultiHandler(NewJSONHandler(&buf, "info"), pg))

	logger.Debug("hidden")
	logger.Info("started", "port", "8080")
	logger.Error("boom")
	pg.Stop()

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"started"`)
	assert.Contains(t, buf.String(), `"msg":"boom"`)
	assert.Len(t, sink.entries, 1)
}
