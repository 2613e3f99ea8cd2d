package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/parambind/core"
	"github.com/dmitrymomot/parambind/handler"
	"github.com/dmitrymomot/parambind/pkg/logger"
	"github.com/dmitrymomot/parambind/pkg/validator"
)

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		status   int
		detail   any
		logLevel string
	}{
		{
			name:     "generic error",
			err:      errors.New("database is down"),
			status:   http.StatusInternalServerError,
			detail:   "Internal Server Error",
			logLevel: "ERROR",
		},
		{
			name:     "http error",
			err:      core.ErrBadRequest.WithMessage("Cannot parse request body"),
			status:   http.StatusBadRequest,
			detail:   "Cannot parse request body",
			logLevel: "WARN",
		},
		{
			name:     "http error without message",
			err:      core.ErrRequestEntityTooLarge,
			status:   http.StatusRequestEntityTooLarge,
			detail:   "request_entity_too_large",
			logLevel: "WARN",
		},
		{
			name: "validation errors",
			err: validator.ValidationErrors{{
				Field:    "limit",
				Location: "query",
				Code:     validator.CodeInteger,
				Message:  "value is not a valid integer",
			}},
			status: http.StatusUnprocessableEntity,
			detail: []any{map[string]any{
				"loc":  []any{"query", "limit"},
				"msg":  "value is not a valid integer",
				"type": "type_error.integer",
			}},
			logLevel: "WARN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logs := &bytes.Buffer{}
			h := handler.NewErrorHandler(logger.New(logger.WithOutput(logs)))

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/articles", nil)
			h(handler.NewContext(w, r), tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.detail, body["detail"])

			var entry map[string]any
			require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
			assert.Equal(t, tt.logLevel, entry["level"])
			assert.Equal(t, "request error", entry["msg"])
			assert.EqualValues(t, tt.status, entry["status_code"])
			assert.Equal(t, "/articles", entry["path"])
		})
	}
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	err := fmtWrap(validator.ValidationErrors{{Field: "q", Location: "query", Code: validator.CodeMissing, Message: "field required"}})

	require.NoError(t, handler.JSONError(err).Render(w, r))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"detail":[{"loc":["query","q"],"msg":"field required","type":"value_error.missing"}]}`, w.Body.String())

	w = httptest.NewRecorder()
	require.NoError(t, handler.JSONError(errors.New("boom"), handler.WithJSONStatus(http.StatusBadGateway)).Render(w, r))
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func fmtWrap(err error) error {
	return errors.Join(errors.New("resolve query"), err)
}

func TestJSON(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	require.NoError(t, handler.JSON(map[string]int{"limit": 10}).Render(w, r))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"limit":10}`, w.Body.String())

	w = httptest.NewRecorder()
	require.NoError(t, handler.JSON([]string{"a"}, handler.WithJSONStatus(http.StatusCreated)).Render(w, r))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `["a"]`, w.Body.String())
}

func TestValidationDetails(t *testing.T) {
	t.Parallel()

	got := handler.ValidationDetails(validator.ValidationErrors{
		{Field: "author.name", Location: "body", Code: validator.CodeMissing, Message: "field required"},
		{Field: "x", Code: validator.CodeInvalid, Message: "bad"},
	})
	assert.Equal(t, []handler.ValidationDetail{
		{Loc: []string{"body", "author", "name"}, Msg: "field required", Type: "value_error.missing"},
		{Loc: []string{"x"}, Msg: "bad", Type: "value_error"},
	}, got)
}
