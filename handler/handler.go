package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"reflect"

	"github.com/dmitrymomot/parambind/pkg/logger"
	"github.com/dmitrymomot/parambind/pkg/params"
)

// HandlerFunc handles a request whose parameters are already bound into R.
//
// R is a struct whose fields carry an `in` tag naming the request location
// each field is resolved from:
//
//	type getArticle struct {
//		Path struct {
//			ID uuid.UUID `json:"id"`
//		} `in:"path"`
//		Query struct {
//			Fields []string `json:"fields" alias:"f"`
//		} `in:"query"`
//		Auth struct {
//			Token string `json:"authorization"`
//		} `in:"header"`
//	}
//
// Fields tagged with ",single" receive the whole raw mapping of their
// location, for example `in:"body,single"` on a map[string]any field.
type HandlerFunc[R any] func(ctx Context, req R) Response

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// ErrorHandler handles errors from binding or rendering.
type ErrorHandler func(ctx Context, err error)

// PathParamsFunc extracts router path parameters from a request.
type PathParamsFunc func(r *http.Request) map[string]string

// Decorator wraps a HandlerFunc to add cross-cutting functionality.
// The first decorator in a list is the outermost wrapper.
type Decorator[R any] func(HandlerFunc[R]) HandlerFunc[R]

// WrapOption configures the Wrap function.
type WrapOption[R any] func(*wrapConfig[R])

type wrapConfig[R any] struct {
	errorHandler ErrorHandler
	pathParams   PathParamsFunc
	decorators   []Decorator[R]
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler[R any](h ErrorHandler) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithPathParams replaces ChiPathParams as the path parameter source.
func WithPathParams[R any](f PathParamsFunc) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		if f != nil {
			c.pathParams = f
		}
	}
}

// WithDecorators adds decorators to wrap the handler.
func WithDecorators[R any](decorators ...Decorator[R]) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// Wrap converts a typed HandlerFunc to http.HandlerFunc.
//
// Parameter models for R are declared once, here; Wrap panics when R's
// tags or parameter metadata are inconsistent. Per request the models are
// resolved in field order and the first error goes to the error handler.
//
//	r := chi.NewRouter()
//	r.Get("/articles/{id}", handler.Wrap(api, getArticleHandler))
func Wrap[R any](api params.API, h HandlerFunc[R], opts ...WrapOption[R]) http.HandlerFunc {
	binder, err := newRequestBinder(reflect.TypeFor[R]())
	if err != nil {
		panic(fmt.Errorf("handler: %s: %w", reflect.TypeFor[R](), err))
	}

	cfg := &wrapConfig[R]{
		errorHandler: NewErrorHandler(apiLogger(api)),
		pathParams:   ChiPathParams,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	finalHandler := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		finalHandler = cfg.decorators[i](finalHandler)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		pathParams := cfg.pathParams(r)
		ctx := newContext(w, r, pathParams)

		var req R
		if err := binder.bind(r, api, pathParams, reflect.ValueOf(&req).Elem()); err != nil {
			cfg.errorHandler(ctx, err)
			return
		}

		response := finalHandler(ctx, req)
		if response == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}

func apiLogger(api params.API) *slog.Logger {
	if p, ok := api.(interface{ Logger() *slog.Logger }); ok {
		if log := p.Logger(); log != nil {
			return log
		}
	}
	return logger.Discard()
}
