// Package validator adapts github.com/go-playground/validator to the
// validation.Validator interface using struct tags.
package validator

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/ncobase/mediator/validation"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Default returns the shared validate instance. Field names are reported
// by their json tag.
func Default() *validator.Validate {
	once.Do(func() {
		validate = New()
	})
	return validate
}

// New creates a validate instance reporting json field names.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	return v
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

// errorMessages is a nested map of languages to validation tags to messages.
var errorMessages = map[string]map[string]string{
	"en": {
		"required": "The field '%s' is required.",
		"email":    "The field '%s' must be a valid email address.",
		"min":      "The field '%s' must be at least %s characters long.",
		"max":      "The field '%s' must be no longer than %s characters.",
		"lte":      "The field '%s' must be less than or equal to %s.",
		"gte":      "The field '%s' must be greater than or equal to %s.",
		"gt":       "The field '%s' must be greater than %s.",
		"lt":       "The field '%s' must be less than %s.",
		"oneof":    "The field '%s' must be one of %s.",
		"uuid":     "The field '%s' must be a valid UUID.",
		"url":      "The field '%s' must be a valid URL.",
	},
	"zh": {
		"required": "字段 '%s' 为必填项。",
		"email":    "字段 '%s' 必须是有效的电子邮箱地址。",
		"min":      "字段 '%s' 的长度不能少于 %s 个字符。",
		"max":      "字段 '%s' 的长度不能超过 %s 个字符。",
		"lte":      "字段 '%s' 的值必须小于或等于 %s。",
		"gte":      "字段 '%s' 的值必须大于或等于 %s。",
		"gt":       "字段 '%s' 的值必须大于 %s。",
		"lt":       "字段 '%s' 的值必须小于 %s。",
		"oneof":    "字段 '%s' 的值必须是 %s 之一。",
		"uuid":     "字段 '%s' 必须是有效的 UUID。",
		"url":      "字段 '%s' 必须是有效的 URL。",
	},
}

// Message builds a friendly message for a failed tag.
func Message(field string, e validator.FieldError, lang string) string {
	msgs, ok := errorMessages[lang]
	if !ok {
		msgs = errorMessages["en"]
	}
	if msg, ok := msgs[e.Tag()]; ok {
		switch strings.Count(msg, "%s") {
		case 1:
			return fmt.Sprintf(msg, field)
		case 2:
			return fmt.Sprintf(msg, field, e.Param())
		}
	}
	return fmt.Sprintf("Field '%s' is invalid: %s", field, e.Tag())
}

// Struct validates values of T using their `validate` struct tags.
type Struct[T any] struct {
	validate *validator.Validate
	lang     string
}

// Option configures a Struct validator.
type Option func(*options)

type options struct {
	validate *validator.Validate
	lang     string
}

// WithValidate uses v instead of the shared instance.
func WithValidate(v *validator.Validate) Option {
	return func(o *options) { o.validate = v }
}

// WithLanguage selects the message language ("en", "zh").
func WithLanguage(lang string) Option {
	return func(o *options) { o.lang = lang }
}

// NewStruct creates a tag-driven validator for T.
func NewStruct[T any](opts ...Option) *Struct[T] {
	o := options{lang: "en"}
	for _, opt := range opts {
		opt(&o)
	}
	if o.validate == nil {
		o.validate = Default()
	}
	return &Struct[T]{validate: o.validate, lang: o.lang}
}

// Validate implements validation.Validator. Field errors are reported in
// struct field order.
func (s *Struct[T]) Validate(ctx context.Context, v T) ([]validation.FieldError, error) {
	err := s.validate.StructCtx(ctx, v)
	if err == nil {
		return nil, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return nil, fmt.Errorf("validator: %w", err)
		}
		return nil, err
	}

	out := make([]validation.FieldError, 0, len(fieldErrs))
	for _, e := range fieldErrs {
		field := fieldPath(e)
		out = append(out, validation.FieldError{
			Field:   field,
			Code:    e.Tag(),
			Message: Message(field, e, s.lang),
		})
	}
	return out, nil
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

// ValidateStruct validates s and returns a map of JSON field names to
// messages.
func ValidateStruct(s any, lang ...string) map[string]string {
	l := "en"
	if len(lang) > 0 {
		l = lang[0]
	}
	out := make(map[string]string)
	var fieldErrs validator.ValidationErrors
	if errors.As(Default().Struct(s), &fieldErrs) {
		for _, e := range fieldErrs {
			field := fieldPath(e)
			out[field] = Message(field, e, l)
		}
	}
	return out
}
