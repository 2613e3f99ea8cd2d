// Package params turns raw HTTP request data into typed parameter structs.
//
// A Model is declared once per parameter struct and request location:
//
//	type SearchParams struct {
//	    Tags  []string `json:"tags" alias:"t"`
//	    Limit int      `json:"limit" default:"10"`
//	}
//
//	var searchModel = params.MustDeclare(params.LocationQuery, reflect.TypeFor[SearchParams]())
//
// Declaration builds the field descriptor table, computes which fields are
// collections (repeatable keys) and which collection fields are aliased, and
// rejects inconsistent metadata. The result is immutable and safe to share
// between requests.
//
// Per request, Resolve asks the location's source for a raw mapping, wraps it
// under the single attribute when one is declared, and constructs the struct:
//
//	p, err := params.Resolve[SearchParams](searchModel, r, api, nil)
//
// Construction failures are returned as validator.ValidationErrors tagged with
// the model's location. A malformed body yields a 400 core.HTTPError wrapping
// ErrMalformedBody.
//
// # Locations
//
//   - query: URL query string, collection and alias aware
//   - path: path parameters resolved by the router
//   - header: request headers, looked up by field name then alias
//   - cookie: request cookies, last duplicate wins
//   - body: request payload decoded by the API's parser
//   - form: urlencoded or multipart form values, collection and alias aware
//   - file: multipart file parts, collection and alias aware
package params
