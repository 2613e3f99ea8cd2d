// Package schema builds the field descriptor table of a parameter struct and
// constructs typed instances from raw parameter mappings.
//
// A descriptor table is computed once per struct type from its tags and cached
// for the life of the process:
//
//	type Filters struct {
//	    SlugIn   []string `json:"slug__in" alias:"slugs"`
//	    Category string   `json:"category"`
//	    Limit    int      `json:"limit" default:"10"`
//	    Query    string   `json:"q" param:"required"`
//	}
//
// Supported tags:
//   - `json:"name"`: programmatic field name (lowercased Go name when absent, "-" skips)
//   - `alias:"wire"`: the key the field is transmitted under
//   - `default:"literal"`: value applied when the key is missing (comma-separated for slices)
//   - `param:"required"`: missing key is a validation error
//   - `param:"nested"`: the field's raw representation is itself a structured payload
//
// Slice fields (other than []byte) are collection fields: their wire key may
// repeat to carry several values.
//
// Construct turns a map[string]any into a typed value. Scalars are coerced
// from strings or decoded payload values, nested maps become nested structs,
// and every failure is reported as one validator.ValidationError. Types that
// implement Validator get their Validate method called once all fields are set.
package schema
