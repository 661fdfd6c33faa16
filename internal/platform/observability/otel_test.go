package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":       slog.LevelInfo,
		"debug":  slog.LevelDebug,
		"INFO":   slog.LevelInfo,
		" warn ": slog.LevelWarn,
		"error":  slog.LevelError,
	}
	for raw, want := range cases {
		got, err := ParseLevel(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseLevel("chatty")
	assert.Error(t, err)
}

func TestInstruments_NilSafe(t *testing.T) {
	var instruments *Instruments
	assert.NotNil(t, instruments.Tracer("test"))
	assert.NotNil(t, instruments.Meter("test"))
}

func TestInit_TagsOrdersResourceAndLogger(t *testing.T) {
	var out bytes.Buffer
	instruments, shutdown, err := Init(context.Background(), Settings{
		ServiceName:   "orders-api",
		StoreDriver:   "memory",
		Environment:   "test",
		Level:         slog.LevelDebug,
		TraceExporter: ExporterNone,
		LogOutput:     &out,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	instruments.Logger.Info("ready")
	var entry map[string]any
	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	assert.Equal(t, "orders-api", entry["service"])
	assert.Equal(t, "ready", entry["msg"])
}

func TestResourceAttributes(t *testing.T) {
	attrs := resourceAttributes(Settings{ServiceName: "orders-worker", Environment: "prod", StoreDriver: "postgres"})
	got := make(map[attribute.Key]string, len(attrs))
	for _, kv := range attrs {
		got[kv.Key] = kv.Value.AsString()
	}
	assert.Equal(t, ServiceNamespace, got["service.namespace"])
	assert.Equal(t, "orders-worker", got["service.name"])
	assert.Equal(t, "postgres", got["orders.store.driver"])

	attrs = resourceAttributes(Settings{ServiceName: "orders-api"})
	for _, kv := range attrs {
		assert.NotEqual(t, attribute.Key("orders.store.driver"), kv.Key)
	}
}

func TestNewSpanExporter(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	exporter, err := newSpanExporter(ctx, ExporterNone, logger)
	require.NoError(t, err)
	assert.Nil(t, exporter)

	exporter, err = newSpanExporter(ctx, " STDOUT ", logger)
	require.NoError(t, err)
	assert.NotNil(t, exporter)

	_, err = newSpanExporter(ctx, "zipkin", logger)
	assert.ErrorContains(t, err, "zipkin")
}

func TestSettingsFromEnv(t *testing.T) {
	t.Setenv("ENVIRONMENT", "staging")
	t.Setenv("OTEL_TRACES_EXPORTER", "Stdout")

	settings := SettingsFromEnv("orders-api", "memory", slog.LevelWarn)
	assert.Equal(t, "staging", settings.Environment)
	assert.Equal(t, ExporterStdout, settings.TraceExporter)
	assert.Equal(t, slog.LevelWarn, settings.Level)
}
