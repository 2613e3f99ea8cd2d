// Package parser decodes raw request data into raw parameter mappings.
//
// A Parser has two jobs. ParseBody turns the request payload into a
// map[string]any, and ParseQueryDict reduces a multi-valued container (query
// string, form values, uploaded files) to a mapping whose values are either a
// single value or the full list of values of a repeated key.
//
// JSON is the default payload format. YAML, TOML and MessagePack parsers share
// the same query handling through the embedded QueryDict, and Negotiating picks
// one of them by the request's Content-Type:
//
//	p := parser.NewNegotiating(parser.JSON{},
//	    parser.WithFormat("application/yaml", parser.YAML{}),
//	    parser.WithFormat("application/msgpack", parser.MsgPack{}),
//	)
//
// # Collections and aliases
//
// ParseQueryDict reads a key as a list when the key is a collection field
// name, or when it is the alias of a collection field. A key matching both a
// field name and another field's alias is decided by the field name. Every
// other key yields its last value.
package parser
