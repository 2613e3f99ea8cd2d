// Package validator describes field-level validation failures produced while
// binding request parameters, and provides small rule helpers for model
// Validate hooks.
//
// A ValidationError names the failing field, the request location it was read
// from (query, path, header, cookie, body, form, file), a machine-readable code
// and a human-readable message. ValidationErrors aggregates them and satisfies
// the error interface, so a whole request can report every failing field at
// once.
//
// # Usage
//
//	func (f Filters) Validate() error {
//	    return validator.Apply(
//	        validator.MaxLen("q", f.Q, 100),
//	        validator.Range("limit", f.Limit, 1, 100),
//	        validator.MaxItems("tags", f.Tags, 10),
//	    )
//	}
//
// The binding engine fills in the Location of errors returned from Validate, so
// rules only need the field name.
//
// # Codes
//
// Codes follow a dotted "<kind>_error.<detail>" layout, for example
// CodeMissing ("value_error.missing") or CodeInteger ("type_error.integer").
// Clients can switch on them without parsing messages.
package validator
