// Package ctxutil carries request-scoped values, most notably the trace id
// used by the logger, on context.Context and *gin.Context.
//
//	ctx, traceID := ctxutil.EnsureTraceID(ctx)
//	id := ctxutil.GetTraceID(ctx)
//
// Within gin handlers install TraceMiddleware and read the request context:
//
//	r.Use(ctxutil.TraceMiddleware())
//	ctx := ctxutil.FromGinContext(c)
package ctxutil
