package ecode

import (
	"net/http"
	"sync"
)

// Error codes shared by results, validators and transport adapters.
const (
	Internal        = "internal"
	NotFound        = "not_found"
	Conflict        = "conflict"
	OutOfRange      = "out_of_range"
	Validation      = "validation_failed"
	Unauthorized    = "unauthorized"
	Forbidden       = "forbidden"
	Canceled        = "canceled"
	HandlerNotFound = "handler_not_found"
	Uninitialized   = "uninitialized"
	ExternalService = "external_service"
)

type entry struct {
	message string
	status  int
}

var (
	mu    sync.RWMutex
	codes = map[string]entry{
		Internal:        {"An unexpected error occurred", http.StatusInternalServerError},
		NotFound:        {"The requested resource could not be found", http.StatusNotFound},
		Conflict:        {"The resource is in conflict with the current state", http.StatusConflict},
		OutOfRange:      {"The value is out of range", http.StatusBadRequest},
		Validation:      {"One or more validation failures occurred", http.StatusBadRequest},
		Unauthorized:    {"Authentication is required", http.StatusUnauthorized},
		Forbidden:       {"Access to the resource is forbidden", http.StatusForbidden},
		Canceled:        {"The operation was canceled", 499},
		HandlerNotFound: {"No handler is registered for the request", http.StatusNotImplemented},
		Uninitialized:   {"The result was not initialized", http.StatusInternalServerError},
		ExternalService: {"An error occurred while communicating with an external service", http.StatusBadGateway},
	}
)

// Register adds or replaces a custom error code.
func Register(code, message string, status int) {
	mu.Lock()
	defer mu.Unlock()
	codes[code] = entry{message: message, status: status}
}

// Text returns the default message for code, or the code itself when unknown.
func Text(code string) string {
	mu.RLock()
	defer mu.RUnlock()
	if e, ok := codes[code]; ok {
		return e.message
	}
	return code
}

// ToHTTPStatus maps a code to an HTTP status. Unknown codes map to 500.
func ToHTTPStatus(code string) int {
	mu.RLock()
	defer mu.RUnlock()
	if e, ok := codes[code]; ok && e.status != 0 {
		return e.status
	}
	return http.StatusInternalServerError
}
