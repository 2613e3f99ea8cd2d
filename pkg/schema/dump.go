package schema

import (
	"encoding"
	"reflect"
)

// Dump serializes a parameter struct into a mapping keyed by wire names.
// Text marshalers are rendered as strings, nested structs as maps and nil
// pointers are omitted. Passing the result to Construct yields an equal value.
func Dump(v any) (map[string]any, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, ErrNotStruct
		}
		rv = rv.Elem()
	}

	s, err := Of(rv.Type())
	if err != nil {
		return nil, err
	}
	return dumpStruct(s, rv)
}

func dumpStruct(s *Schema, rv reflect.Value) (map[string]any, error) {
	out := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		fv := rv.Field(f.Index)
		if fv.Kind() == reflect.Pointer && fv.IsNil() {
			continue
		}
		val, err := dumpValue(fv)
		if err != nil {
			return nil, err
		}
		out[f.WireName()] = val
	}
	return out, nil
}

func dumpValue(v reflect.Value) (any, error) {
	t := v.Type()
	if t == fileHeaderType || t == bytesType {
		return v.Interface(), nil
	}
	if t.Implements(textMarshalerType) {
		text, err := v.Interface().(encoding.TextMarshaler).MarshalText()
		return string(text), err
	}

	switch t.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return nil, nil
		}
		return dumpValue(v.Elem())

	case reflect.Struct:
		s, err := Of(t)
		if err != nil {
			return nil, err
		}
		return dumpStruct(s, v)

	case reflect.Slice:
		if v.IsNil() {
			return nil, nil
		}
		items := make([]any, v.Len())
		for i := range v.Len() {
			item, err := dumpValue(v.Index(i))
			if err != nil {
				return nil, err
			}
			items[i] = item
		}
		return items, nil

	case reflect.Map:
		if v.IsNil() {
			return nil, nil
		}
		m := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			item, err := dumpValue(iter.Value())
			if err != nil {
				return nil, err
			}
			m[iter.Key().String()] = item
		}
		return m, nil
	}

	return v.Interface(), nil
}
