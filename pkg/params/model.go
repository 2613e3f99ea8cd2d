package params

import (
	"fmt"
	"maps"
	"net/http"
	"reflect"

	"github.com/dmitrymomot/parambind/pkg/logger"
	"github.com/dmitrymomot/parambind/pkg/schema"
)

// Model binds one parameter struct type to one request location.
// It is immutable after Declare and safe for concurrent use.
type Model struct {
	location   Location
	schema     *schema.Schema
	collection map[string]struct{}
	aliases    map[string]string

	// singleAttr is the wire key the whole raw mapping is wrapped under.
	singleAttr string
	// nested is the sole field of a query model whose raw form is the whole query.
	nested *schema.Field

	src source
}

// Option configures Declare.
type Option func(*declareOptions)

type declareOptions struct {
	singleAttr string
}

// WithSingleAttr wraps the raw mapping under the named field before
// construction, for models that represent one whole value such as a raw body.
func WithSingleAttr(name string) Option {
	return func(o *declareOptions) { o.singleAttr = name }
}

// Declare builds a Model for struct type typ read from loc.
// It fails with ErrInvalidModel when the field metadata is inconsistent.
func Declare(loc Location, typ reflect.Type, opts ...Option) (*Model, error) {
	src, ok := sources[loc]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, loc)
	}

	var o declareOptions
	for _, opt := range opts {
		opt(&o)
	}

	s, err := schema.Of(typ)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidModel, err)
	}
	if err := checkMetadata(s.Fields); err != nil {
		return nil, err
	}

	m := &Model{
		location:   loc,
		schema:     s,
		collection: DetectCollectionFields(s.Fields),
		aliases:    DetectCollectionFieldAliases(s.Fields),
		src:        src,
	}

	if o.singleAttr != "" {
		f, ok := s.Field(o.singleAttr)
		if !ok {
			return nil, fmt.Errorf("%w: single attribute %q is not a field of %s", ErrInvalidModel, o.singleAttr, s.Type)
		}
		m.singleAttr = f.WireName()
	}

	if loc == LocationQuery && s.Len() == 1 && s.Fields[0].Nested {
		m.nested = s.Fields[0]
	}

	return m, nil
}

// DeclareFor is Declare for the struct type T.
func DeclareFor[T any](loc Location, opts ...Option) (*Model, error) {
	return Declare(loc, reflect.TypeFor[T](), opts...)
}

// MustDeclare is Declare that panics on error, for use at handler registration.
func MustDeclare(loc Location, typ reflect.Type, opts ...Option) *Model {
	m, err := Declare(loc, typ, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// Location returns the request location the model is read from.
func (m *Model) Location() Location { return m.location }

// Schema returns the field descriptor table of the parameter struct.
func (m *Model) Schema() *schema.Schema { return m.schema }

// Type returns the parameter struct type.
func (m *Model) Type() reflect.Type { return m.schema.Type }

// SingleAttr returns the wire key raw data is wrapped under, or "".
func (m *Model) SingleAttr() string { return m.singleAttr }

// CollectionFields returns a copy of the collection field set.
func (m *Model) CollectionFields() map[string]struct{} { return maps.Clone(m.collection) }

// Aliases returns a copy of the collection field alias map.
func (m *Model) Aliases() map[string]string { return maps.Clone(m.aliases) }

// Resolve reads the model's location from r and returns a new instance of
// the parameter struct, as a value of the declared type.
//
// pathParams holds the router's already resolved path segments; it is only
// read by path models.
func (m *Model) Resolve(r *http.Request, api API, pathParams map[string]string) (any, error) {
	v, err := m.resolve(r, api, pathParams)
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

func (m *Model) resolve(r *http.Request, api API, pathParams map[string]string) (reflect.Value, error) {
	log := apiLogger(api)

	data, err := m.src.requestData(r, api, pathParams, m)
	if err != nil {
		if log != nil {
			log.DebugContext(r.Context(), "parameter source failed",
				logger.Location(m.location.String()),
				logger.Model(m.schema.Type.String()),
				logger.Error(err),
			)
		}
		return reflect.Value{}, err
	}

	if data == nil {
		data = map[string]any{}
	} else if m.singleAttr != "" {
		data = map[string]any{m.singleAttr: data}
	}

	opts := []schema.Option{schema.WithLocation(m.location.String())}
	if m.location == LocationHeader {
		opts = append(opts, schema.WithFieldNames())
	}

	v, err := schema.Construct(m.schema, data, opts...)
	if log != nil {
		attrs := []any{
			logger.Location(m.location.String()),
			logger.Model(m.schema.Type.String()),
		}
		if err != nil {
			attrs = append(attrs, logger.Error(err))
		}
		log.DebugContext(r.Context(), "resolved parameters", attrs...)
	}
	return v, err
}

// Resolve is Model.Resolve returning the concrete parameter type.
func Resolve[T any](m *Model, r *http.Request, api API, pathParams map[string]string) (T, error) {
	var zero T
	if want := reflect.TypeFor[T](); want != m.schema.Type {
		return zero, fmt.Errorf("%w: model of %s resolved as %s", ErrInvalidModel, m.schema.Type, want)
	}

	v, err := m.resolve(r, api, pathParams)
	if err != nil {
		return zero, err
	}
	return v.Interface().(T), nil
}
