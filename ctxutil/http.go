package ctxutil

import (
	"github.com/gin-gonic/gin"
)

// TraceHeader carries the trace id between services.
const TraceHeader = "X-Trace-Id"

// TraceMiddleware propagates the inbound trace id, or assigns a new one, and
// echoes it in the response.
func TraceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := WithGinContext(c.Request.Context(), c)
		if traceID := c.GetHeader(TraceHeader); traceID != "" {
			ctx = SetTraceID(ctx, traceID)
		}
		ctx, traceID := EnsureTraceID(ctx)
		c.Request = c.Request.WithContext(ctx)
		c.Header(TraceHeader, traceID)
		c.Next()
	}
}
