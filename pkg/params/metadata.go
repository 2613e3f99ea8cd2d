package params

import (
	"fmt"

	"github.com/dmitrymomot/parambind/pkg/schema"
)

// DetectCollectionFields returns the names of fields read as repeated values.
// A nested field contributes the fields of its own struct instead of itself;
// nesting is followed one level deep.
func DetectCollectionFields(fields []*schema.Field) map[string]struct{} {
	result := make(map[string]struct{})
	for _, f := range flatten(fields) {
		if f.Collection {
			result[f.Name] = struct{}{}
		}
	}
	return result
}

// DetectCollectionFieldAliases maps collection field names to their wire
// aliases, walking nested fields like DetectCollectionFields.
func DetectCollectionFieldAliases(fields []*schema.Field) map[string]string {
	result := make(map[string]string)
	for _, f := range flatten(fields) {
		if f.Collection && f.Alias != "" {
			result[f.Name] = f.Alias
		}
	}
	return result
}

func flatten(fields []*schema.Field) []*schema.Field {
	out := make([]*schema.Field, 0, len(fields))
	for _, f := range fields {
		if !f.Nested {
			out = append(out, f)
			continue
		}
		inner, err := schema.Of(f.StructType())
		if err != nil {
			continue
		}
		out = append(out, inner.Fields...)
	}
	return out
}

// checkMetadata rejects field sets whose keys would be read both as a list
// and as a scalar.
func checkMetadata(fields []*schema.Field) error {
	for _, f := range fields {
		if !f.Nested {
			continue
		}
		if _, err := schema.Of(f.StructType()); err != nil {
			return fmt.Errorf("%w: nested field %s: %w", ErrInvalidModel, f.Name, err)
		}
	}

	flat := flatten(fields)
	byKey := make(map[string]*schema.Field, len(flat)*2)
	claim := func(key string, f *schema.Field) error {
		prev, ok := byKey[key]
		if !ok {
			byKey[key] = f
			return nil
		}
		if prev.Collection != f.Collection {
			return fmt.Errorf("%w: key %q is claimed by %s and %s with different collection types", ErrInvalidModel, key, prev, f)
		}
		return nil
	}

	for _, f := range flat {
		if err := claim(f.Name, f); err != nil {
			return err
		}
	}
	for _, f := range flat {
		if f.Alias == "" {
			continue
		}
		if err := claim(f.Alias, f); err != nil {
			return err
		}
	}
	return nil
}
