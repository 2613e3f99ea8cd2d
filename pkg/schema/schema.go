package schema

import (
	"fmt"
	"maps"
	"reflect"
	"sync"
	"sync/atomic"
)

// Schema is the ordered field descriptor table of one struct type.
type Schema struct {
	Type   reflect.Type
	Fields []*Field

	byName map[string]*Field
	byWire map[string]*Field
}

// Field returns the descriptor with the given programmatic name.
func (s *Schema) Field(name string) (*Field, bool) {
	f, ok := s.byName[name]
	return f, ok
}

// FieldByWire returns the descriptor read from the given wire key.
func (s *Schema) FieldByWire(key string) (*Field, bool) {
	f, ok := s.byWire[key]
	return f, ok
}

func (s *Schema) Len() int {
	return len(s.Fields)
}

var (
	// RCU: readers load an immutable map, writers copy it under the mutex.
	cachePtr atomic.Pointer[map[reflect.Type]*Schema]
	cacheMu  sync.Mutex
)

func init() {
	m := make(map[reflect.Type]*Schema)
	cachePtr.Store(&m)
}

// Of returns the descriptor table of typ, building and caching it on first use.
// Pointer types are unwrapped.
func Of(typ reflect.Type) (*Schema, error) {
	if typ == nil {
		return nil, ErrNotStruct
	}
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %s", ErrNotStruct, typ)
	}

	if s, ok := (*cachePtr.Load())[typ]; ok {
		return s, nil
	}

	cacheMu.Lock()
	defer cacheMu.Unlock()

	m := cachePtr.Load()
	if s, ok := (*m)[typ]; ok {
		return s, nil
	}

	s, err := build(typ)
	if err != nil {
		return nil, err
	}

	next := make(map[reflect.Type]*Schema, len(*m)+1)
	maps.Copy(next, *m)
	next[typ] = s
	cachePtr.Store(&next)

	return s, nil
}

// For is the generic form of Of.
func For[T any]() (*Schema, error) {
	return Of(reflect.TypeFor[T]())
}

// MustFor is like For but panics on an invalid type.
// Use it for package-level declarations.
func MustFor[T any]() *Schema {
	s, err := For[T]()
	if err != nil {
		panic(err)
	}
	return s
}

func build(typ reflect.Type) (*Schema, error) {
	s := &Schema{
		Type:   typ,
		byName: make(map[string]*Field, typ.NumField()),
		byWire: make(map[string]*Field, typ.NumField()),
	}

	for i := range typ.NumField() {
		f, ok, err := parseField(typ.Field(i), i)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", typ, err)
		}
		if !ok {
			continue
		}

		if prev, dup := s.byName[f.Name]; dup {
			return nil, fmt.Errorf("%w: %s: fields %s and %s share name %q", ErrDuplicateKey, typ, prev.GoName, f.GoName, f.Name)
		}
		if prev, dup := s.byWire[f.WireName()]; dup {
			return nil, fmt.Errorf("%w: %s: fields %s and %s share wire key %q", ErrDuplicateKey, typ, prev.GoName, f.GoName, f.WireName())
		}

		if f.HasDefault {
			if err := checkDefault(f); err != nil {
				return nil, fmt.Errorf("%s: %w", typ, err)
			}
		}

		s.Fields = append(s.Fields, f)
		s.byName[f.Name] = f
		s.byWire[f.WireName()] = f
	}

	return s, nil
}

// checkDefault coerces the default literal once so a bad literal fails at
// declaration instead of on the first request that omits the field.
func checkDefault(f *Field) error {
	dst := reflect.New(f.Type).Elem()
	c := &constructor{}
	if errs := c.set(dst, defaultValue(f), f.Name); len(errs) > 0 {
		return fmt.Errorf("%w: field %s: %q: %s", ErrInvalidDefault, f.GoName, f.Default, errs[0].Message)
	}
	return nil
}
