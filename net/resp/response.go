package resp

import (
	"encoding/json"
	"net/http"

	"github.com/ncobase/mediator/ecode"
	"github.com/ncobase/mediator/paging"
	"github.com/ncobase/mediator/result"
	"github.com/ncobase/mediator/validation"
)

// Exception represents the response structure.
type Exception struct {
	Status  int    `json:"status,omitempty"`  // HTTP status
	Code    string `json:"code,omitempty"`    // Error code
	Message string `json:"message,omitempty"` // Message
	Errors  any    `json:"errors,omitempty"`  // Validation errors
	Data    any    `json:"data,omitempty"`    // Response data
}

// FromErrors maps result errors to a response.
//
// Validation failures become a 400 carrying every message grouped by field.
// Otherwise the first error with an HTTP status decides the response. A
// failure without any HTTP error is reported as a generic 500; its details
// are not exposed.
func FromErrors(errs []result.Error) *Exception {
	if verr, ok := validation.FromResult(errs); ok {
		return &Exception{
			Status:  ecode.ToHTTPStatus(ecode.Validation),
			Code:    ecode.Validation,
			Message: ecode.Text(ecode.Validation),
			Errors:  verr.Fields(),
		}
	}
	if e, ok := result.FirstHTTP(errs); ok {
		status, _ := e.HTTPStatus()
		return &Exception{Status: status, Code: e.Code, Message: e.Message}
	}
	return internalError()
}

func internalError() *Exception {
	return &Exception{
		Status:  http.StatusInternalServerError,
		Code:    ecode.Internal,
		Message: ecode.Text(ecode.Internal),
	}
}

// Success handles success responses.
func Success(w http.ResponseWriter, data ...any) {
	WithStatusCode(w, http.StatusOK, data...)
}

// WithStatusCode handles success responses with custom status code.
func WithStatusCode(w http.ResponseWriter, statusCode int, data ...any) {
	if len(data) == 0 || data[0] == nil {
		writeJSON(w, statusCode, map[string]any{"message": "ok"})
		return
	}
	if msg, ok := data[0].(string); ok {
		writeJSON(w, statusCode, map[string]any{"message": msg})
		return
	}
	writeJSON(w, statusCode, data[0])
}

// Fail handles failure responses.
func Fail(w http.ResponseWriter, r *Exception) {
	if r == nil {
		r = internalError()
	}
	status := r.Status
	if status == 0 {
		status = http.StatusBadRequest
	}
	code := r.Code
	if code == "" {
		code = ecode.Internal
	}
	message := r.Message
	if message == "" {
		message = ecode.Text(code)
	}
	writeJSON(w, status, &Exception{Code: code, Message: message, Errors: r.Errors})
}

// Result writes a command outcome: 204 on success, the mapped failure
// otherwise.
func Result(w http.ResponseWriter, r result.Result) {
	if r.Failed() {
		Fail(w, FromErrors(r.Errors()))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Value writes the value of a successful result with statusCode, or the
// mapped failure.
func Value[T any](w http.ResponseWriter, statusCode int, r result.Of[T]) {
	if r.Failed() {
		Fail(w, FromErrors(r.Errors()))
		return
	}
	writeJSON(w, statusCode, r.Value())
}

// Paged writes a page of records.
func Paged[T any](w http.ResponseWriter, page *paging.Response[T]) {
	if page == nil {
		page = &paging.Response[T]{Results: []T{}}
	}
	writeJSON(w, http.StatusOK, page)
}

func writeJSON(w http.ResponseWriter, code int, res any) {
	data, err := json.Marshal(res)
	if err != nil {
		http.Error(w, "Failed to encode JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(append(data, '\n'))
}
