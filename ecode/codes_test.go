package ecode

import (
	"net/http"
	"testing"

	grpccodes "google.golang.org/grpc/codes"
)

func TestToHTTPStatus(t *testing.T) {
	cases := map[string]int{
		NotFound:        http.StatusNotFound,
		Conflict:        http.StatusConflict,
		Validation:      http.StatusBadRequest,
		Internal:        http.StatusInternalServerError,
		HandlerNotFound: http.StatusNotImplemented,
		"no-such-code":  http.StatusInternalServerError,
	}
	for code, want := range cases {
		if got := ToHTTPStatus(code); got != want {
			t.Errorf("ToHTTPStatus(%q) = %d, want %d", code, got, want)
		}
	}
}

func TestRegister(t *testing.T) {
	Register("insufficient_balance", "Insufficient account balance", http.StatusPaymentRequired)

	if got := Text("insufficient_balance"); got != "Insufficient account balance" {
		t.Errorf("unexpected text %q", got)
	}
	if got := ToHTTPStatus("insufficient_balance"); got != http.StatusPaymentRequired {
		t.Errorf("unexpected status %d", got)
	}
	if got := Text("unregistered"); got != "unregistered" {
		t.Errorf("unknown code should echo itself, got %q", got)
	}
}

func TestMessages(t *testing.T) {
	if got := FieldIsRequired("name"); got != "name required" {
		t.Errorf("unexpected message %q", got)
	}
	if got := NotExist(); got != "does not exist" {
		t.Errorf("unexpected message %q", got)
	}
	if got := FieldIsNotPositive("price"); got != "price must be greater than zero" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestToGRPCCode(t *testing.T) {
	cases := map[string]grpccodes.Code{
		NotFound:        grpccodes.NotFound,
		Validation:      grpccodes.InvalidArgument,
		HandlerNotFound: grpccodes.Unimplemented,
		"no-such-code":  grpccodes.Unknown,
	}
	for code, want := range cases {
		if got := ToGRPCCode(code); got != want {
			t.Errorf("ToGRPCCode(%q) = %v, want %v", code, got, want)
		}
	}

	Register("too_many_requests", "Slow down", http.StatusTooManyRequests)
	if got := ToGRPCCode("too_many_requests"); got != grpccodes.ResourceExhausted {
		t.Errorf("registered code mapped to %v", got)
	}
}
