package schema

import (
	"encoding"
	"fmt"
	"mime/multipart"
	"reflect"
	"strings"
)

// Tag names read from struct fields.
const (
	TagName    = "json"
	TagAlias   = "alias"
	TagDefault = "default"
	TagParam   = "param"
)

var (
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
	textMarshalerType   = reflect.TypeFor[encoding.TextMarshaler]()
	fileHeaderType      = reflect.TypeFor[*multipart.FileHeader]()
	bytesType           = reflect.TypeFor[[]byte]()
)

// Field describes one declared field of a parameter struct.
// It is immutable once its Schema is built.
type Field struct {
	// Name is the programmatic field name.
	Name string
	// Alias is the wire key, empty when the field is transmitted under Name.
	Alias string
	// GoName is the Go struct field name.
	GoName string
	Type   reflect.Type
	Index  int

	// Collection reports whether the field's wire key may repeat.
	Collection bool
	// Nested reports whether the field's raw representation is a structured payload.
	Nested   bool
	Required bool

	Default    string
	HasDefault bool
}

// WireName returns the key the field is read from: the alias when set.
func (f *Field) WireName() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

// StructType returns the struct type behind a nested field, unwrapping a pointer.
func (f *Field) StructType() reflect.Type {
	t := f.Type
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func (f *Field) String() string {
	if f.Alias != "" {
		return fmt.Sprintf("%s(%s)", f.Name, f.Alias)
	}
	return f.Name
}

// parseField builds the descriptor for a struct field. ok is false for
// skipped fields.
func parseField(sf reflect.StructField, index int) (*Field, bool, error) {
	if !sf.IsExported() {
		return nil, false, nil
	}

	name := strings.ToLower(sf.Name)
	if tag, has := sf.Tag.Lookup(TagName); has {
		if tag == "-" {
			return nil, false, nil
		}
		if n, _, _ := strings.Cut(tag, ","); n != "" {
			name = n
		}
	}

	f := &Field{
		Name:       name,
		Alias:      sf.Tag.Get(TagAlias),
		GoName:     sf.Name,
		Type:       sf.Type,
		Index:      index,
		Collection: isCollection(sf.Type),
	}
	f.Default, f.HasDefault = sf.Tag.Lookup(TagDefault)

	if opts := sf.Tag.Get(TagParam); opts != "" {
		for opt := range strings.SplitSeq(opts, ",") {
			switch strings.TrimSpace(opt) {
			case "required":
				f.Required = true
			case "nested":
				f.Nested = true
			case "":
			default:
				return nil, false, fmt.Errorf("%w: field %s: unknown param option %q", ErrInvalidTag, sf.Name, opt)
			}
		}
	}

	if f.Nested {
		st := f.StructType()
		if st.Kind() != reflect.Struct || isScalarStruct(st) {
			return nil, false, fmt.Errorf("%w: field %s: nested requires a struct type, got %s", ErrInvalidTag, sf.Name, sf.Type)
		}
	}

	if f.Required && f.HasDefault {
		return nil, false, fmt.Errorf("%w: field %s: required field cannot declare a default", ErrInvalidTag, sf.Name)
	}

	switch k := sf.Type.Kind(); {
	case k == reflect.Array && !isTextType(sf.Type), k == reflect.Chan, k == reflect.Func:
		return nil, false, fmt.Errorf("%w: field %s: %s", ErrUnsupportedType, sf.Name, sf.Type)
	}

	return f, true, nil
}

// isCollection reports whether values of t are read as repeated wire values.
func isCollection(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Slice && t != bytesType && !isTextType(t)
}

func isTextType(t reflect.Type) bool {
	return t.Implements(textUnmarshalerType) || reflect.PointerTo(t).Implements(textUnmarshalerType)
}

// isScalarStruct reports struct types decoded from a single text value, such as time.Time.
func isScalarStruct(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && isTextType(t)
}
