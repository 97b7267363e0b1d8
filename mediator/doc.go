// Package mediator dispatches request values to their handlers through a
// fixed pipeline: validation, then response caching, then the handler.
//
// Handlers and validators are registered explicitly at startup:
//
//	reg := mediator.NewRegistry()
//	mediator.Register[GetProduct, Product](reg, getProductHandler)
//	mediator.RegisterValidator[CreateProduct](reg, createProductValidator)
//
//	d := mediator.New(reg, mediator.WithCache(c), mediator.WithDefaultTTL(5*time.Minute))
//	res := mediator.Send[GetProduct, Product](ctx, d, GetProduct{ID: id})
//
// Every outcome is a result.Of. Validation failures are returned with every
// field error; the caching and handler stages are not reached. Requests that
// implement Cacheable are served from the cache when possible.
package mediator
