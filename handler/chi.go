package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ChiPathParams returns the URL parameters chi matched for r, or nil when the
// request was not routed by chi.
func ChiPathParams(r *http.Request) map[string]string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return nil
	}

	keys, values := rctx.URLParams.Keys, rctx.URLParams.Values
	out := make(map[string]string, len(keys))
	for i, k := range keys {
		if i < len(values) {
			out[k] = values[i]
		}
	}
	return out
}
