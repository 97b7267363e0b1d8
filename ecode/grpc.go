package ecode

import (
	"net/http"

	grpccodes "google.golang.org/grpc/codes"
)

var grpcCodes = map[string]grpccodes.Code{
	Internal:        grpccodes.Internal,
	NotFound:        grpccodes.NotFound,
	Conflict:        grpccodes.AlreadyExists,
	OutOfRange:      grpccodes.OutOfRange,
	Validation:      grpccodes.InvalidArgument,
	Unauthorized:    grpccodes.Unauthenticated,
	Forbidden:       grpccodes.PermissionDenied,
	Canceled:        grpccodes.Canceled,
	HandlerNotFound: grpccodes.Unimplemented,
	Uninitialized:   grpccodes.Internal,
	ExternalService: grpccodes.Unavailable,
}

// ToGRPCCode maps a code to a gRPC status code. Codes registered at runtime
// are mapped through their HTTP status.
func ToGRPCCode(code string) grpccodes.Code {
	if c, ok := grpcCodes[code]; ok {
		return c
	}
	switch ToHTTPStatus(code) {
	case http.StatusBadRequest:
		return grpccodes.InvalidArgument
	case http.StatusUnauthorized:
		return grpccodes.Unauthenticated
	case http.StatusForbidden:
		return grpccodes.PermissionDenied
	case http.StatusNotFound:
		return grpccodes.NotFound
	case http.StatusConflict:
		return grpccodes.AlreadyExists
	case http.StatusTooManyRequests:
		return grpccodes.ResourceExhausted
	case http.StatusNotImplemented:
		return grpccodes.Unimplemented
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return grpccodes.Unavailable
	case http.StatusGatewayTimeout:
		return grpccodes.DeadlineExceeded
	default:
		return grpccodes.Unknown
	}
}
