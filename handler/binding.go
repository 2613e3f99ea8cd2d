package handler

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/dmitrymomot/parambind/pkg/params"
)

// TagIn marks request struct fields bound from a request location.
const TagIn = "in"

type binding struct {
	index  int
	model  *params.Model
	single bool
	ptr    bool
}

// requestBinder resolves every location-tagged field of a request struct,
// in field order.
type requestBinder []binding

func newRequestBinder(t reflect.Type) (requestBinder, error) {
	if t.Kind() != reflect.Struct {
		return nil, nil
	}

	var rb requestBinder
	for i := range t.NumField() {
		sf := t.Field(i)
		tag, ok := sf.Tag.Lookup(TagIn)
		if !ok || tag == "-" {
			continue
		}
		if !sf.IsExported() {
			return nil, fmt.Errorf("%w: field %s is not exported", ErrInvalidRequestType, sf.Name)
		}

		name, opt, _ := strings.Cut(tag, ",")
		loc, ok := params.ParseLocation(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("%w: field %s: unknown location %q", ErrInvalidRequestType, sf.Name, name)
		}

		b := binding{index: i}
		var err error
		switch strings.TrimSpace(opt) {
		case "single":
			b.single = true
			b.model, err = declareSingle(loc, sf)
		case "":
			ft := sf.Type
			if ft.Kind() == reflect.Pointer {
				b.ptr = true
				ft = ft.Elem()
			}
			if ft.Kind() != reflect.Struct {
				return nil, fmt.Errorf("%w: field %s: %s is not a struct, use %q", ErrInvalidRequestType, sf.Name, sf.Type, name+",single")
			}
			b.model, err = params.Declare(loc, ft)
		default:
			return nil, fmt.Errorf("%w: field %s: unknown option %q", ErrInvalidRequestType, sf.Name, opt)
		}
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", sf.Name, err)
		}
		rb = append(rb, b)
	}
	return rb, nil
}

// declareSingle declares a one-field model holding the whole raw mapping of loc.
func declareSingle(loc params.Location, sf reflect.StructField) (*params.Model, error) {
	name := strings.ToLower(sf.Name)
	if tag, _, _ := strings.Cut(sf.Tag.Get("json"), ","); tag != "" && tag != "-" {
		name = tag
	}

	wrapper := reflect.StructOf([]reflect.StructField{{
		Name: "Value",
		Type: sf.Type,
		Tag:  reflect.StructTag(fmt.Sprintf(`json:"%s"`, name)),
	}})
	return params.Declare(loc, wrapper, params.WithSingleAttr(name))
}

func (rb requestBinder) bind(r *http.Request, api params.API, pathParams map[string]string, dst reflect.Value) error {
	for _, b := range rb {
		v, err := b.model.Resolve(r, api, pathParams)
		if err != nil {
			return err
		}

		rv := reflect.ValueOf(v)
		if b.single {
			rv = rv.Field(0)
		}
		if b.ptr {
			p := reflect.New(rv.Type())
			p.Elem().Set(rv)
			rv = p
		}
		dst.Field(b.index).Set(rv)
	}
	return nil
}
