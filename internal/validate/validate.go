// Package validate runs go-playground/validator struct checks and turns the
// result into a single user-facing error that matches common.ErrValidation.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrijs2005/potholeauth/internal/common"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return strings.ToLower(f.Name)
		}
		return name
	})
	return v
}

// Struct validates s using its `validate` tags.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		return &Error{Errors: fieldErrors}
	}
	return err
}

// Error wraps validator.ValidationErrors with a readable message.
type Error struct {
	Errors validator.ValidationErrors
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Field()+" "+msgForTag(fe))
	}
	return strings.Join(msgs, "; ")
}

func (e *Error) Unwrap() error { return common.ErrValidation }

// Fields maps each failing field to its message.
func (e *Error) Fields() map[string]string {
	fields := make(map[string]string, len(e.Errors))
	for _, fe := range e.Errors {
		fields[fe.Field()] = msgForTag(fe)
	}
	return fields
}

// Message builds a validation error outside of struct tags, e.g. for byte
// length limits the tag language cannot express.
func Message(field, msg string) error {
	return &messageError{field: field, msg: msg}
}

type messageError struct {
	field, msg string
}

func (e *messageError) Error() string { return e.field + " " + e.msg }
func (e *messageError) Unwrap() error { return common.ErrValidation }

func msgForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed on '%s' validation", fe.Tag())
	}
}
