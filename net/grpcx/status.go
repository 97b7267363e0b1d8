// Package grpcx maps result failures to gRPC statuses.
package grpcx

import (
	"github.com/ncobase/mediator/ecode"
	"github.com/ncobase/mediator/result"
	"github.com/ncobase/mediator/validation"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Status converts result errors to a gRPC status. Validation failures map to
// InvalidArgument with every field message. Otherwise the first error with
// an HTTP status decides the code. Remaining failures are Internal with a
// generic message.
func Status(errs []result.Error) *status.Status {
	if len(errs) == 0 {
		return status.New(codes.OK, "")
	}
	if verr, ok := validation.FromResult(errs); ok {
		return status.New(codes.InvalidArgument, verr.Error())
	}
	if e, ok := result.FirstHTTP(errs); ok {
		return status.New(ecode.ToGRPCCode(e.Code), e.Message)
	}
	if errs[0].Code == ecode.Canceled {
		return status.New(codes.Canceled, errs[0].Message)
	}
	return status.New(codes.Internal, ecode.Text(ecode.Internal))
}

// Err returns the gRPC error of a result, nil on success.
func Err(r result.Result) error {
	if r.Succeeded() {
		return nil
	}
	return Status(r.Errors()).Err()
}

// Unwrap returns the value of a result or its gRPC error.
func Unwrap[T any](r result.Of[T]) (T, error) {
	if r.Failed() {
		var zero T
		return zero, Status(r.Errors()).Err()
	}
	return r.Value(), nil
}
