package validation

import (
	"strings"

	"github.com/ncobase/mediator/ecode"
)

// Checker collects failures for hand-written validators.
//
//	var c validation.Checker
//	c.Required("name", cmd.Name)
//	c.Positive("price", cmd.Price)
//	return c.Errors(), nil
type Checker struct {
	errs []FieldError
}

// Add records a failure.
func (c *Checker) Add(field, code, message string) {
	c.errs = append(c.errs, FieldError{Field: field, Code: code, Message: message})
}

// Check records a failure when ok is false and reports ok.
func (c *Checker) Check(ok bool, field, code, message string) bool {
	if !ok {
		c.Add(field, code, message)
	}
	return ok
}

// Required fails when value is blank.
func (c *Checker) Required(field, value string) bool {
	return c.Check(strings.TrimSpace(value) != "", field, "required", ecode.FieldIsRequired(field))
}

// Positive fails when value is not greater than zero.
func (c *Checker) Positive(field string, value float64) bool {
	return c.Check(value > 0, field, "gt", ecode.FieldIsNotPositive(field))
}

// MaxLength fails when value has more than n characters.
func (c *Checker) MaxLength(field, value string, n int) bool {
	return c.Check(len([]rune(value)) <= n, field, "max", ecode.FieldIsInvalid(field))
}

// Errors returns the recorded failures.
func (c *Checker) Errors() []FieldError {
	return c.errs
}
