package observes

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewTracerRequiresConfig(t *testing.T) {
	_, err := NewTracer(nil)
	assert.Error(t, err)
}

func TestProviderRecordsSpans(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp, err := newProvider(&TracerOption{Name: "svc"}, sdktrace.WithSpanProcessor(rec))
	require.NoError(t, err)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, span := tp.Tracer("test").Start(context.Background(), "op")
	span.End()

	require.Len(t, rec.Ended(), 1)
	assert.Equal(t, "op", rec.Ended()[0].Name())
}

func TestSentryDisabledWithoutDsn(t *testing.T) {
	assert.NoError(t, NewSentry(nil))
	assert.NoError(t, NewSentry(&SentryOptions{Name: "svc"}))
	CaptureError(context.Background(), errors.New("ignored"))
}
