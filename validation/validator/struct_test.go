package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type address struct {
	City string `json:"city" validate:"required"`
}

type signup struct {
	Email   string   `json:"email" validate:"required,email"`
	Name    string   `json:"name" validate:"min=2,max=10"`
	Age     int      `json:"age,omitempty" validate:"gte=18"`
	Role    string   `validate:"oneof=admin user"`
	Address *address `json:"address" validate:"required"`
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	v := NewStruct[signup]()
	errs, err := v.Validate(context.Background(), signup{
		Email:   "not-an-email",
		Name:    "a",
		Age:     12,
		Role:    "root",
		Address: &address{},
	})
	require.NoError(t, err)
	require.Len(t, errs, 5)

	assert.Equal(t, "email", errs[0].Field)
	assert.Equal(t, "email", errs[0].Code)
	assert.Equal(t, "The field 'email' must be a valid email address.", errs[0].Message)

	assert.Equal(t, "name", errs[1].Field)
	assert.Equal(t, "The field 'name' must be at least 2 characters long.", errs[1].Message)

	assert.Equal(t, "age", errs[2].Field)
	assert.Equal(t, "Role", errs[3].Field)
	assert.Equal(t, "address.city", errs[4].Field)
}

func TestStructPasses(t *testing.T) {
	v := NewStruct[signup]()
	errs, err := v.Validate(context.Background(), signup{
		Email:   "a@b.io",
		Name:    "ada",
		Age:     30,
		Role:    "user",
		Address: &address{City: "Paris"},
	})
	assert.NoError(t, err)
	assert.Empty(t, errs)
}

func TestStructLanguage(t *testing.T) {
	v := NewStruct[signup](WithLanguage("zh"), WithValidate(New()))
	errs, err := v.Validate(context.Background(), signup{Name: "ada", Age: 30, Role: "user", Address: &address{City: "x"}})
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "字段 'email' 为必填项。", errs[0].Message)
}

func TestStructRejectsNonStruct(t *testing.T) {
	_, err := NewStruct[*signup]().Validate(context.Background(), nil)
	assert.Error(t, err)
}

func TestValidateStruct(t *testing.T) {
	out := ValidateStruct(&signup{Email: "a@b.io", Name: "ada", Age: 20, Role: "user"})
	assert.Equal(t, map[string]string{"address": "The field 'address' is required."}, out)
}
