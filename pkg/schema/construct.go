package schema

import (
	"errors"
	"reflect"
	"strings"

	"github.com/dmitrymomot/parambind/pkg/validator"
)

// Validator is implemented by parameter types that check their own
// constraints once every field has been set.
type Validator interface {
	Validate() error
}

// Option configures a construction.
type Option func(*constructor)

// WithLocation tags every reported error with the request location.
func WithLocation(loc string) Option {
	return func(c *constructor) {
		c.location = loc
	}
}

// WithFieldNames makes construction look a field up by its name first and by
// its alias second. Without it an aliased field is read from its alias only.
func WithFieldNames() Option {
	return func(c *constructor) {
		c.byName = true
	}
}

type constructor struct {
	location string
	byName   bool
}

// Construct builds a new instance of the schema's type from data.
// The returned value is addressable. A nil data map applies every default.
// Failures are returned as validator.ValidationErrors.
func Construct(s *Schema, data map[string]any, opts ...Option) (reflect.Value, error) {
	c := &constructor{}
	for _, opt := range opts {
		opt(c)
	}

	dst := reflect.New(s.Type).Elem()
	if errs := c.construct(s, dst, data); len(errs) > 0 {
		if c.location != "" {
			errs = errs.WithLocation(c.location)
		}
		return reflect.Value{}, errs
	}
	return dst, nil
}

// Decode is the generic form of Construct.
func Decode[T any](data map[string]any, opts ...Option) (T, error) {
	var zero T
	s, err := For[T]()
	if err != nil {
		return zero, err
	}
	v, err := Construct(s, data, opts...)
	if err != nil {
		return zero, err
	}
	return v.Interface().(T), nil
}

func (c *constructor) construct(s *Schema, dst reflect.Value, data map[string]any) validator.ValidationErrors {
	var errs validator.ValidationErrors

	for _, f := range s.Fields {
		raw, ok := c.lookup(f, data)
		if !ok || raw == nil {
			switch {
			case f.Required:
				errs.Add(validator.ValidationError{
					Field:   f.WireName(),
					Code:    validator.CodeMissing,
					Message: "field required",
				})
			case f.HasDefault:
				errs = append(errs, c.set(dst.Field(f.Index), defaultValue(f), f.WireName())...)
			}
			continue
		}

		errs = append(errs, c.set(dst.Field(f.Index), raw, f.WireName())...)
	}

	if len(errs) > 0 {
		return errs
	}

	return validate(dst)
}

func (c *constructor) lookup(f *Field, data map[string]any) (any, bool) {
	if data == nil {
		return nil, false
	}
	if c.byName && f.Alias != "" {
		if v, ok := data[f.Name]; ok {
			return v, true
		}
	}
	v, ok := data[f.WireName()]
	return v, ok
}

func validate(dst reflect.Value) validator.ValidationErrors {
	v, ok := dst.Addr().Interface().(Validator)
	if !ok {
		return nil
	}

	err := v.Validate()
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}

	return validator.ValidationErrors{{
		Code:    validator.CodeInvalid,
		Message: err.Error(),
	}}
}

func defaultValue(f *Field) any {
	if f.Collection {
		if f.Default == "" {
			return []string{}
		}
		return strings.Split(f.Default, ",")
	}
	return f.Default
}
