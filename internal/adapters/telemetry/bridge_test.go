package telemetry_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/ormbridge/internal/adapters/telemetry"
	"go.trai.ch/ormbridge/internal/core/ports"
	"go.trai.ch/ormbridge/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type traceLog struct {
	mu    sync.Mutex
	lines []string
}

func (l *traceLog) add(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, msg)
}

func (l *traceLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

func newLoggedTracer(t *testing.T) (*telemetry.OTelTracer, *traceLog) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	lines := &traceLog{}
	log.EXPECT().Trace(gomock.Any()).Do(lines.add).AnyTimes()

	tracer := telemetry.NewOTelTracerWithProvider("test", telemetry.NewTracerProvider(log))
	t.Cleanup(func() { _ = tracer.Shutdown(context.Background()) })
	return tracer, lines
}

func TestTracerProvider_RecordsSpans(t *testing.T) {
	tracer, _ := newLoggedTracer(t)

	ctx, span := tracer.Start(context.Background(), "resolve deployment")
	defer span.End()

	assert.True(t, trace.SpanFromContext(ctx).IsRecording())
}

func TestLogBridge_LogsEndedSpansWithSortedAttributes(t *testing.T) {
	tracer, lines := newLoggedTracer(t)

	_, span := tracer.Start(context.Background(), "resolve shop.war#orders", ports.WithSpanKind("internal"))
	span.SetAttribute("unit", "shop.war#orders")
	span.SetAttribute("shared_cache_mode", "ENABLE_SELECTIVE")
	span.SetAttribute("second_level_cache", true)
	span.End()

	got := lines.all()
	require.Len(t, got, 1)
	assert.Contains(t, got[0],
		"span resolve shop.war#orders second_level_cache=true shared_cache_mode=ENABLE_SELECTIVE unit=shop.war#orders (")
}

func TestLogBridge_LogsErrors(t *testing.T) {
	tracer, lines := newLoggedTracer(t)

	_, span := tracer.Start(context.Background(), "resolve deployment")
	span.RecordError(errors.New("boom"))
	span.End()

	got := lines.all()
	require.Len(t, got, 1)
	assert.Contains(t, got[0], `error="boom"`)
}

func TestOTelTracer_Shutdown(t *testing.T) {
	tracer, lines := newLoggedTracer(t)

	_, span := tracer.Start(context.Background(), "resolve deployment")
	span.End()

	require.NoError(t, tracer.Shutdown(context.Background()))
	assert.Len(t, lines.all(), 1)
}

func TestOTelTracer_ShutdownWithGlobalProvider(t *testing.T) {
	tracer := telemetry.NewOTelTracer("test")

	assert.NoError(t, tracer.Shutdown(context.Background()))
}
