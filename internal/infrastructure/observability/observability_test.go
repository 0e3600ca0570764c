package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	otellog "go.opentelemetry.io/otel/log"
)

func TestInitMetrics_NoopProvider(t *testing.T) {
	m, err := InitMetrics()
	require.NoError(t, err)
	require.NotNil(t, m)

	ctx := context.Background()
	assert.NotPanics(t, func() {
		RecordRequestMetric(ctx, m, "GET", "/api/doctors", 200, 12*time.Millisecond)
		RecordCacheHit(ctx, m, "/api/doctors")
		RecordCacheMiss(ctx, m, "/api/doctors")
		RecordABDMCall(ctx, m, "generate_qr", errors.New("timeout"))
	})
}

func TestRecorders_NilMetrics(t *testing.T) {
	ctx := context.Background()
	assert.NotPanics(t, func() {
		RecordRequestMetric(ctx, nil, "GET", "/health", 200, time.Millisecond)
		RecordCacheHit(ctx, nil, "/api/records")
		RecordCacheMiss(ctx, nil, "/api/records")
		RecordABDMCall(ctx, nil, "share_records", nil)
	})
}

func TestSeverityOf(t *testing.T) {
	tests := map[zerolog.Level]otellog.Severity{
		zerolog.TraceLevel: otellog.SeverityTrace,
		zerolog.DebugLevel: otellog.SeverityDebug,
		zerolog.InfoLevel:  otellog.SeverityInfo,
		zerolog.WarnLevel:  otellog.SeverityWarn,
		zerolog.ErrorLevel: otellog.SeverityError,
		zerolog.FatalLevel: otellog.SeverityFatal,
	}
	for level, want := range tests {
		assert.Equal(t, want, severityOf(level), level.String())
	}
}

func TestInitLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	InitLogger("careconnect-test", "test", "loud")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	InitLogger("careconnect-test", "test", "debug")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestLoggerFromContext_WithoutSpan(t *testing.T) {
	assert.NotNil(t, LoggerFromContext(context.Background()))
}
