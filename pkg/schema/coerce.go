package schema

import (
	"encoding"
	"encoding/json"
	"math"
	"mime/multipart"
	"reflect"
	"strconv"
	"strings"

	"github.com/dmitrymomot/parambind/pkg/validator"
)

// set coerces raw into dst. A nil raw value leaves dst untouched.
func (c *constructor) set(dst reflect.Value, raw any, field string) validator.ValidationErrors {
	if raw == nil {
		return nil
	}

	t := dst.Type()
	switch {
	case t == fileHeaderType:
		fh, ok := lastFile(raw)
		if !ok {
			return fail(field, validator.CodeFile, "value is not a valid file")
		}
		dst.Set(reflect.ValueOf(fh))
		return nil

	case t.Kind() == reflect.Pointer:
		elem := reflect.New(t.Elem())
		if errs := c.set(elem.Elem(), raw, field); len(errs) > 0 {
			return errs
		}
		dst.Set(elem)
		return nil

	case t.Kind() != reflect.Interface && isTextType(t):
		return setText(dst, raw, field)
	}

	switch t.Kind() {
	case reflect.Slice:
		if t == bytesType {
			return setBytes(dst, raw, field)
		}
		return c.setSlice(dst, raw, field)

	case reflect.Map:
		return c.setMap(dst, raw, field)

	case reflect.Struct:
		return c.setStruct(dst, raw, field)

	case reflect.Interface:
		rv := reflect.ValueOf(raw)
		if !rv.Type().AssignableTo(t) {
			return fail(field, validator.CodeUnexpected, "value type is not assignable")
		}
		dst.Set(rv)
		return nil

	case reflect.String:
		switch v := scalar(raw).(type) {
		case string:
			dst.SetString(v)
		case json.Number:
			dst.SetString(v.String())
		case []byte:
			dst.SetString(string(v))
		default:
			return fail(field, validator.CodeString, "str type expected")
		}
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := toInt64(scalar(raw))
		if !ok || dst.OverflowInt(n) {
			return fail(field, validator.CodeInteger, "value is not a valid integer")
		}
		dst.SetInt(n)
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := toUint64(scalar(raw))
		if !ok || dst.OverflowUint(n) {
			return fail(field, validator.CodeInteger, "value is not a valid integer")
		}
		dst.SetUint(n)
		return nil

	case reflect.Float32, reflect.Float64:
		n, ok := toFloat64(scalar(raw))
		if !ok || dst.OverflowFloat(n) {
			return fail(field, validator.CodeFloat, "value is not a valid float")
		}
		dst.SetFloat(n)
		return nil

	case reflect.Bool:
		b, ok := toBool(scalar(raw))
		if !ok {
			return fail(field, validator.CodeBool, "value could not be parsed to a boolean")
		}
		dst.SetBool(b)
		return nil
	}

	return fail(field, validator.CodeUnexpected, "unsupported field type "+t.String())
}

func (c *constructor) setSlice(dst reflect.Value, raw any, field string) validator.ValidationErrors {
	var items []any
	switch v := raw.(type) {
	case []string:
		items = make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
	case []any:
		items = v
	case []*multipart.FileHeader:
		items = make([]any, len(v))
		for i, fh := range v {
			items[i] = fh
		}
	default:
		rv := reflect.ValueOf(raw)
		if rv.Kind() != reflect.Slice || rv.Type() == bytesType {
			return fail(field, validator.CodeList, "value is not a valid list")
		}
		items = make([]any, rv.Len())
		for i := range rv.Len() {
			items[i] = rv.Index(i).Interface()
		}
	}

	var errs validator.ValidationErrors
	slice := reflect.MakeSlice(dst.Type(), len(items), len(items))
	for i, item := range items {
		errs = append(errs, c.set(slice.Index(i), item, field+"."+strconv.Itoa(i))...)
	}
	if len(errs) > 0 {
		return errs
	}

	dst.Set(slice)
	return nil
}

func (c *constructor) setMap(dst reflect.Value, raw any, field string) validator.ValidationErrors {
	t := dst.Type()
	m, ok := raw.(map[string]any)
	if !ok || t.Key().Kind() != reflect.String {
		return fail(field, validator.CodeObject, "value is not a valid dict")
	}

	var errs validator.ValidationErrors
	out := reflect.MakeMapWithSize(t, len(m))
	for k, v := range m {
		elem := reflect.New(t.Elem()).Elem()
		if e := c.set(elem, v, field+"."+k); len(e) > 0 {
			errs = append(errs, e...)
			continue
		}
		out.SetMapIndex(reflect.ValueOf(k).Convert(t.Key()), elem)
	}
	if len(errs) > 0 {
		return errs
	}

	dst.Set(out)
	return nil
}

func (c *constructor) setStruct(dst reflect.Value, raw any, field string) validator.ValidationErrors {
	m, ok := raw.(map[string]any)
	if !ok {
		return fail(field, validator.CodeObject, "value is not a valid dict")
	}

	s, err := Of(dst.Type())
	if err != nil {
		return fail(field, validator.CodeUnexpected, err.Error())
	}

	// Nested models resolve their own aliases; name lookup applies to the top level only.
	inner := &constructor{location: c.location}
	if errs := inner.construct(s, dst, m); len(errs) > 0 {
		return errs.WithPrefix(field)
	}
	return nil
}

func setText(dst reflect.Value, raw any, field string) validator.ValidationErrors {
	var text string
	switch v := scalar(raw).(type) {
	case string:
		text = v
	case []byte:
		text = string(v)
	case json.Number:
		text = v.String()
	default:
		return fail(field, validator.CodeString, "str type expected")
	}

	u := dst.Addr().Interface().(encoding.TextUnmarshaler)
	if err := u.UnmarshalText([]byte(text)); err != nil {
		return fail(field, validator.CodeInvalid, err.Error())
	}
	return nil
}

func setBytes(dst reflect.Value, raw any, field string) validator.ValidationErrors {
	switch v := scalar(raw).(type) {
	case string:
		dst.SetBytes([]byte(v))
	case []byte:
		dst.SetBytes(append([]byte(nil), v...))
	default:
		return fail(field, validator.CodeBytes, "byte type expected")
	}
	return nil
}

func fail(field, code, msg string) validator.ValidationErrors {
	return validator.ValidationErrors{{Field: field, Code: code, Message: msg}}
}

// scalar reduces a repeated wire value to its last occurrence.
func scalar(raw any) any {
	if v, ok := raw.([]string); ok {
		if len(v) == 0 {
			return nil
		}
		return v[len(v)-1]
	}
	return raw
}

func lastFile(raw any) (*multipart.FileHeader, bool) {
	switch v := raw.(type) {
	case *multipart.FileHeader:
		return v, v != nil
	case []*multipart.FileHeader:
		if len(v) == 0 {
			return nil, false
		}
		return v[len(v)-1], true
	}
	return nil, false
}

func toInt64(raw any) (int64, bool) {
	switch v := raw.(type) {
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		return n, err == nil
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		return int64(u), u <= math.MaxInt64
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, false
		}
		return int64(f), true
	}
	return 0, false
}

func toUint64(raw any) (uint64, bool) {
	switch v := raw.(type) {
	case string:
		n, err := strconv.ParseUint(v, 10, 64)
		return n, err == nil
	case json.Number:
		n, err := strconv.ParseUint(v.String(), 10, 64)
		return n, err == nil
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		return uint64(n), n >= 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint(), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
			return 0, false
		}
		return uint64(f), true
	}
	return 0, false
}

func toFloat64(raw any) (float64, bool) {
	switch v := raw.(type) {
	case string:
		n, err := strconv.ParseFloat(v, 64)
		return n, err == nil
	case json.Number:
		n, err := v.Float64()
		return n, err == nil
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func toBool(raw any) (bool, bool) {
	switch v := raw.(type) {
	case bool:
		return v, true
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b, true
		}
		// Be lenient with boolean values
		switch strings.ToLower(v) {
		case "on", "yes", "y":
			return true, true
		case "off", "no", "n":
			return false, true
		}
	}
	return false, false
}
