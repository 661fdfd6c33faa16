package api

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	ordermemory "github.com/Apurer/go-orders-api/internal/domains/orders/adapters/memory"
)

func TestBuildOrderRepository_FallsBackToMemory(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	for _, cfg := range []Config{
		{StoreDriver: StoreDriverMemory},
		{StoreDriver: StoreDriverPostgres},
		{StoreDriver: StoreDriverPostgres, PostgresDSN: "   "},
	} {
		repo, cleanup := BuildOrderRepository(context.Background(), cfg, logger)
		assert.IsType(t, &ordermemory.Repository{}, repo)
		cleanup()
	}
}

func TestConnectTemporalClient_Disabled(t *testing.T) {
	_, err := ConnectTemporalClient(Config{TemporalDisabled: true}, nil)
	assert.ErrorContains(t, err, "TEMPORAL_DISABLED")
}
