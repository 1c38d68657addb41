package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/LavaJover/shvark-expressstores-service/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInstallsDefault(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	log := logger.New("debug", "text", "stderr")

	assert.Same(t, log, slog.Default())
	assert.True(t, log.Enabled(context.Background(), slog.LevelDebug))
}

func TestNewDefaultsToInfo(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	log := logger.New("loud", "json", "stdout")

	assert.False(t, log.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
}

func TestSlogPurchaseEventLogger(t *testing.T) {
	var buf bytes.Buffer
	events := logger.NewSlogPurchaseEventLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, events.LogPurchaseFailed(context.Background(), logger.PurchaseFailedEvent{
		BuyerID:   "bob.near",
		StoreID:   "alice.near",
		ProductID: "P",
		Recipient: "alice.near",
		Amount:    100,
		Reason:    "storage down",
	}))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "bob.near", record["buyer"])
	assert.Equal(t, "storage down", record["reason"])
	assert.EqualValues(t, 100, record["amount"])
}
