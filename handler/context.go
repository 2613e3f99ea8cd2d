package handler

import (
	"context"
	"net/http"
	"time"
)

// Context wraps http.Request and http.ResponseWriter with context.Context.
// It embeds the request's context and exposes the resolved path parameters.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	PathParams() map[string]string
}

// NewContext creates a Context for a request. Path parameters are read from
// the chi route context.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return newContext(w, r, ChiPathParams(r))
}

func newContext(w http.ResponseWriter, r *http.Request, pathParams map[string]string) Context {
	return &httpContext{w: w, r: r, pathParams: pathParams}
}

type httpContext struct {
	w          http.ResponseWriter
	r          *http.Request
	pathParams map[string]string
}

func (c *httpContext) Request() *http.Request {
	return c.r
}

func (c *httpContext) ResponseWriter() http.ResponseWriter {
	return c.w
}

func (c *httpContext) PathParams() map[string]string {
	return c.pathParams
}

// Delegate context.Context methods to the request's context
func (c *httpContext) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

func (c *httpContext) Done() <-chan struct{} {
	return c.r.Context().Done()
}

func (c *httpContext) Err() error {
	return c.r.Context().Err()
}

func (c *httpContext) Value(key any) any {
	return c.r.Context().Value(key)
}
