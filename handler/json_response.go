package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/parambind/pkg/validator"
)

// ErrorResponse is the body of every error response. Detail is a message
// string, or a list of ValidationDetail for validation failures.
type ErrorResponse struct {
	Detail any `json:"detail"`
}

// ValidationDetail describes one failing field.
type ValidationDetail struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationDetails converts validation errors to their response form.
func ValidationDetails(errs validator.ValidationErrors) []ValidationDetail {
	out := make([]ValidationDetail, 0, len(errs))
	for _, e := range errs {
		out = append(out, ValidationDetail{
			Loc:  e.Loc(),
			Msg:  e.Message,
			Type: e.Code,
		})
	}
	return out
}

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// JSON encodes v as the response body with status 200 unless overridden.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: v}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders err the way the default error handler does.
func JSONError(err error, opts ...JSONOption) Response {
	info := classifyError(err)
	r := &jsonResponse{status: info.StatusCode, body: ErrorResponse{Detail: info.Detail}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
