package validation

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ncobase/mediator/ecode"
	"github.com/ncobase/mediator/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createProduct struct {
	Name  string
	Price float64
}

func fails(errs ...FieldError) Validator[createProduct] {
	return Func[createProduct](func(context.Context, createProduct) ([]FieldError, error) {
		return errs, nil
	})
}

func TestRunWithoutValidators(t *testing.T) {
	errs, err := Run[createProduct](context.Background(), nil, createProduct{})
	assert.NoError(t, err)
	assert.Empty(t, errs)
}

func TestRunAggregatesInValidatorOrder(t *testing.T) {
	slow := Func[createProduct](func(context.Context, createProduct) ([]FieldError, error) {
		time.Sleep(20 * time.Millisecond)
		return []FieldError{{Field: "name", Code: "required", Message: "name required"}}, nil
	})
	validators := []Validator[createProduct]{
		slow,
		fails(),
		fails(
			FieldError{Field: "price", Code: "gt", Message: "price must be greater than zero"},
			FieldError{Field: "name", Code: "max", Message: "name invalid"},
		),
	}

	errs, err := Run(context.Background(), validators, createProduct{})
	require.NoError(t, err)
	require.Len(t, errs, 3)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "price", errs[1].Field)
	assert.Equal(t, "max", errs[2].Code)
}

func TestRunCallsEveryValidator(t *testing.T) {
	var calls atomic.Int32
	counting := Func[createProduct](func(context.Context, createProduct) ([]FieldError, error) {
		calls.Add(1)
		return []FieldError{{Field: "x", Message: "bad"}}, nil
	})

	errs, err := Run(context.Background(), []Validator[createProduct]{counting, counting, counting}, createProduct{})
	require.NoError(t, err)
	assert.Len(t, errs, 3)
	assert.Equal(t, int32(3), calls.Load())
}

func TestRunReturnsInfrastructureErrors(t *testing.T) {
	boom := errors.New("lookup failed")
	broken := Func[createProduct](func(context.Context, createProduct) ([]FieldError, error) {
		return nil, boom
	})

	errs, err := Run(context.Background(), []Validator[createProduct]{fails(FieldError{Field: "a"}), broken}, createProduct{})
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, errs)
}

func TestRunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	v := Func[createProduct](func(context.Context, createProduct) ([]FieldError, error) {
		called = true
		return nil, nil
	})

	_, err := Run(ctx, []Validator[createProduct]{v}, createProduct{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestErrorGroupsByField(t *testing.T) {
	agg := NewError([]FieldError{
		{Field: "name", Code: "required", Message: "name required"},
		{Field: "price", Code: "gt", Message: "price must be greater than zero"},
		{Field: "name", Code: "max", Message: "name invalid"},
	})

	assert.Equal(t, map[string][]string{
		"name":  {"name required", "name invalid"},
		"price": {"price must be greater than zero"},
	}, agg.Fields())
	assert.Len(t, agg.FieldErrors(), 3)
	assert.Contains(t, agg.Error(), "price: price must be greater than zero")

	assert.Nil(t, NewError(nil))
}

func TestResultsRoundTrip(t *testing.T) {
	agg := NewError([]FieldError{{Field: "name", Code: "required", Message: "name required"}})

	errs := agg.Results()
	require.Len(t, errs, 1)
	assert.Equal(t, ecode.Validation, errs[0].Code)
	status, ok := errs[0].HTTPStatus()
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, status)

	back, ok := FromResult(append(errs, result.Internal(errors.New("x"))))
	require.True(t, ok)
	assert.Equal(t, agg.FieldErrors(), back.FieldErrors())

	_, ok = FromResult([]result.Error{result.Conflict("dup")})
	assert.False(t, ok)
}

func TestChecker(t *testing.T) {
	var c Checker
	assert.False(t, c.Required("name", "  "))
	assert.True(t, c.Required("sku", "A-1"))
	assert.False(t, c.Positive("price", 0))
	assert.False(t, c.MaxLength("code", "abcdef", 3))

	errs := c.Errors()
	require.Len(t, errs, 3)
	assert.Equal(t, FieldError{Field: "name", Code: "required", Message: "name required"}, errs[0])
	assert.Equal(t, "price must be greater than zero", errs[1].Message)
	assert.Equal(t, "code", errs[2].Field)
}
