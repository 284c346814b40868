package logging

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/cognigames/cogni-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	batchSize     = 50
	flushInterval = 5 * time.Second
)

// Sink persists a batch of log records.
type Sink interface {
	CreateBatch(ctx context.Context, entries []models.SystemLog) error
}

// PGHandler is an slog.Handler that batches ERROR+ records into the
// system_logs table.
type PGHandler struct {
	core  *pgCore
	attrs []slog.Attr
}

type pgCore struct {
	sink   Sink
	mu     sync.Mutex
	buffer []models.SystemLog
	ticker *time.Ticker
	done   chan struct{}
	wg     sync.WaitGroup
}

func NewPGHandler(sink Sink) *PGHandler {
	core := &pgCore{
		sink:   sink,
		buffer: make([]models.SystemLog, 0, batchSize),
		ticker: time.NewTicker(flushInterval),
		done:   make(chan struct{}),
	}
	core.wg.Add(1)
	go core.flushLoop()
	return &PGHandler{core: core}
}

func (c *pgCore) flushLoop() {
	defer c.wg.Done()
	for {
		select {
		case <-c.ticker.C:
			c.flush()
		case <-c.done:
			c.flush()
			return
		}
	}
}

func (c *pgCore) flush() {
	c.mu.Lock()
	if len(c.buffer) == 0 {
		c.mu.Unlock()
		return
	}
	batch := c.buffer
	c.buffer = make([]models.SystemLog, 0, batchSize)
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.sink.CreateBatch(ctx, batch); err != nil {
		// Warn stays below this handler's level and cannot loop back here.
		slog.Warn("failed to flush system logs to DB", "error", err, "count", len(batch))
	}
}

// Stop flushes pending records and ends the background loop.
func (h *PGHandler) Stop() {
	h.core.ticker.Stop()
	close(h.core.done)
	h.core.wg.Wait()
}

// Enabled only handles ERROR and above.
func (h *PGHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelError
}

func (h *PGHandler) Handle(_ context.Context, record slog.Record) error {
	entry := models.SystemLog{
		ID:        uuid.New(),
		Timestamp: record.Time,
		Level:     record.Level.String(),
		Message:   record.Message,
	}

	extra := make(map[string]interface{})
	apply := func(a slog.Attr) bool {
		switch a.Key {
		case "request_id":
			entry.RequestID = a.Value.String()
		case "user_id":
			s := a.Value.String()
			entry.UserID = &s
		case "action":
			entry.Action = a.Value.String()
		case "error":
			entry.Error = a.Value.String()
		case "latency_ms":
			switch a.Value.Kind() {
			case slog.KindFloat64:
				entry.LatencyMs = int(math.Round(a.Value.Float64()))
			case slog.KindInt64:
				entry.LatencyMs = int(a.Value.Int64())
			}
		default:
			extra[a.Key] = a.Value.Any()
		}
		return true
	}
	for _, a := range h.attrs {
		apply(a)
	}
	record.Attrs(apply)

	if len(extra) > 0 {
		if b, err := json.Marshal(extra); err == nil {
			entry.Extra = datatypes.JSON(b)
		}
	}

	h.core.mu.Lock()
	h.core.buffer = append(h.core.buffer, entry)
	needFlush := len(h.core.buffer) >= batchSize
	h.core.mu.Unlock()

	if needFlush {
		go h.core.flush()
	}
	return nil
}

func (h *PGHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &PGHandler{core: h.core, attrs: merged}
}

func (h *PGHandler) WithGroup(string) slog.Handler {
	return h
}
