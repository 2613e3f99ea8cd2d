// Package parambind binds raw HTTP request data to typed parameter structs.
//
// Parameter structs describe their wire format with struct tags:
//
//	type ListArticles struct {
//	    Tags  []string `json:"tags" alias:"t"`        // ?t=go&t=http
//	    Limit int      `json:"limit" default:"10"`
//	    Sort  string   `json:"sort" param:"required"`
//	}
//
// The binding engine lives in pkg/params: a Model pairs a struct type with a
// request location (query, path, header, cookie, body, form, file) and
// resolves it per request. Raw containers and payloads are reduced to plain
// mappings by a pkg/parser Parser, and pkg/schema constructs the struct,
// applying defaults and reporting validator.ValidationErrors.
//
// API is the handle models are resolved against:
//
//	api := parambind.New(
//	    parambind.WithDebug(true),
//	    parambind.WithParser(parser.YAML{}),
//	)
//
// or, from PARAMBIND_* environment variables:
//
//	api, err := parambind.NewFromEnv()
//
// The handler package wires models into typed HTTP handlers:
//
//	type listRequest struct {
//	    Query ListArticles `in:"query"`
//	    Path  struct {
//	        Author string `json:"author"`
//	    } `in:"path"`
//	}
//
//	r := chi.NewRouter()
//	r.Get("/authors/{author}/articles", handler.Wrap(api, listArticles))
//
// # Configuration
//
//	PARAMBIND_DEBUG          include decoder errors in 400 responses (default false)
//	PARAMBIND_BODY_FORMAT    json, yaml, toml or msgpack (default json)
//	PARAMBIND_NEGOTIATE      pick the body parser by Content-Type (default false)
//	PARAMBIND_MAX_BODY_SIZE  body size limit in bytes (default 1048576)
//	PARAMBIND_ENV            development, staging or production (default production)
//	PARAMBIND_SERVICE        service name attached to log records
//	PARAMBIND_LOG_LEVEL      debug, info, warn or error
//	PARAMBIND_LOG_FORMAT     json or text
package parambind
