package grpcx

import (
	"context"
	"errors"
	"testing"

	"github.com/ncobase/mediator/result"
	"github.com/ncobase/mediator/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestStatus(t *testing.T) {
	verr := validation.NewError([]validation.FieldError{
		{Field: "name", Code: "required", Message: "name is required"},
		{Field: "price", Code: "gt", Message: "price must be positive"},
	})

	cases := []struct {
		name string
		errs []result.Error
		code codes.Code
	}{
		{"none", nil, codes.OK},
		{"validation", verr.Results(), codes.InvalidArgument},
		{"not found", []result.Error{result.NotFound("product", "1")}, codes.NotFound},
		{"conflict", []result.Error{result.NewError("x", "y"), result.Conflict("dup")}, codes.AlreadyExists},
		{"canceled", []result.Error{result.Canceled(context.Canceled)}, codes.Canceled},
		{"internal", []result.Error{result.Internal(errors.New("secret"))}, codes.Internal},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.code, Status(c.errs).Code())
		})
	}

	st := Status(verr.Results())
	assert.Contains(t, st.Message(), "name is required")
	assert.Contains(t, st.Message(), "price must be positive")
	assert.NotContains(t, Status([]result.Error{result.Internal(errors.New("secret"))}).Message(), "secret")
}

func TestErrAndUnwrap(t *testing.T) {
	assert.NoError(t, Err(result.Ok()))

	err := Err(result.Fail(result.NotFound("product", "")))
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))

	v, err := Unwrap(result.Success(4))
	require.NoError(t, err)
	assert.Equal(t, 4, v)

	_, err = Unwrap(result.Failure[int](result.Conflict("dup")))
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
}
