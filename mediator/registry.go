package mediator

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/ncobase/mediator/result"
	"github.com/ncobase/mediator/validation"
)

type registration struct {
	handler any // Handler[Req, Res]
	resType reflect.Type
}

// Registry maps request types to handlers and validators. It is filled at
// startup and becomes read-only once the first request is dispatched.
type Registry struct {
	mu         sync.RWMutex
	sealed     bool
	handlers   map[reflect.Type]registration
	validators map[reflect.Type]any // []validation.Validator[Req]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers:   make(map[reflect.Type]registration),
		validators: make(map[reflect.Type]any),
	}
}

// Register binds h to requests of type Req. Registering a second handler for
// the same request type, or registering after the first dispatch, panics.
func Register[Req, Res any](r *Registry, h Handler[Req, Res]) {
	if h == nil {
		panic(fmt.Sprintf("mediator: nil handler for %s", reflect.TypeOf((*Req)(nil)).Elem()))
	}
	reqType := reflect.TypeOf((*Req)(nil)).Elem()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.mustBeOpen(reqType)
	if existing, ok := r.handlers[reqType]; ok {
		panic(fmt.Sprintf("mediator: handler for %s already registered (returns %s)", reqType, existing.resType))
	}
	r.handlers[reqType] = registration{handler: h, resType: reflect.TypeOf((*Res)(nil)).Elem()}
}

// RegisterFunc binds a handler function to requests of type Req.
func RegisterFunc[Req, Res any](r *Registry, fn func(ctx context.Context, req Req) result.Of[Res]) {
	Register[Req, Res](r, HandlerFunc[Req, Res](fn))
}

// RegisterCommand binds a handler returning no payload. Dispatch it with
// Execute.
func RegisterCommand[Req any](r *Registry, fn func(ctx context.Context, req Req) result.Result) {
	Register[Req, Unit](r, CommandHandler(fn))
}

// RegisterValidator adds a validator for requests of type Req. Validators
// run concurrently; their failures are reported in registration order.
func RegisterValidator[Req any](r *Registry, v validation.Validator[Req]) {
	if v == nil {
		panic(fmt.Sprintf("mediator: nil validator for %s", reflect.TypeOf((*Req)(nil)).Elem()))
	}
	reqType := reflect.TypeOf((*Req)(nil)).Elem()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.mustBeOpen(reqType)
	existing, _ := r.validators[reqType].([]validation.Validator[Req])
	r.validators[reqType] = append(existing, v)
}

func (r *Registry) mustBeOpen(reqType reflect.Type) {
	if r.sealed {
		panic(fmt.Sprintf("mediator: cannot register %s after dispatching started", reqType))
	}
}

func (r *Registry) seal() {
	r.mu.Lock()
	r.sealed = true
	r.mu.Unlock()
}

// Has reports whether a handler is registered for reqType.
func (r *Registry) Has(reqType reflect.Type) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.handlers[reqType]
	return ok
}

// Len returns the number of registered handlers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}

func lookup[Req, Res any](r *Registry) (Handler[Req, Res], []validation.Validator[Req], bool) {
	reqType := reflect.TypeOf((*Req)(nil)).Elem()

	r.mu.RLock()
	reg, ok := r.handlers[reqType]
	validators, _ := r.validators[reqType].([]validation.Validator[Req])
	r.mu.RUnlock()

	if !ok {
		return nil, nil, false
	}
	h, ok := reg.handler.(Handler[Req, Res])
	if !ok {
		panic(fmt.Sprintf("mediator: handler for %s returns %s, not %s", reqType, reg.resType, reflect.TypeOf((*Res)(nil)).Elem()))
	}
	return h, validators, true
}
