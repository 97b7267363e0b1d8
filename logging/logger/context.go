package logger

import (
	"context"

	"github.com/ncobase/mediator/ctxutil"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

// SpanIDKey is the log field holding the active span id.
const SpanIDKey = "span_id"

// contextFields collects the request trace id and, when a recording span is
// active, its span id. The OpenTelemetry trace id is used when the request
// carries none.
func contextFields(ctx context.Context) logrus.Fields {
	fields := logrus.Fields{}
	if ctx == nil {
		return fields
	}
	sc := trace.SpanContextFromContext(ctx)
	if traceID := ctxutil.GetTraceID(ctx); traceID != "" {
		fields[ctxutil.TraceIDKey] = traceID
	} else if sc.HasTraceID() {
		fields[ctxutil.TraceIDKey] = sc.TraceID().String()
	}
	if sc.HasSpanID() {
		fields[SpanIDKey] = sc.SpanID().String()
	}
	return fields
}
