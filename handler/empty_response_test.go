package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/parambind"
	"github.com/dmitrymomot/parambind/handler"
)

func TestEmpty(t *testing.T) {
	t.Run("returns 204 No Content", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/test", nil)

		resp := handler.Empty()
		err := resp.Render(w, r)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("no content-type header", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/test", nil)

		resp := handler.Empty()
		err := resp.Render(w, r)

		require.NoError(t, err)
		assert.Empty(t, w.Header().Get("Content-Type"))
	})
}

func TestEmptyWithStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{
			name:   "201 Created",
			status: http.StatusCreated,
		},
		{
			name:   "202 Accepted",
			status: http.StatusAccepted,
		},
		{
			name:   "200 OK",
			status: http.StatusOK,
		},
		{
			name:   "205 Reset Content",
			status: http.StatusResetContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/test", nil)

			resp := handler.EmptyWithStatus(tt.status)
			err := resp.Render(w, r)

			require.NoError(t, err)
			assert.Equal(t, tt.status, w.Code)
			assert.Empty(t, w.Body.String())
		})
	}
}

func TestEmpty_Integration(t *testing.T) {
	t.Parallel()

	type deleteRequest struct {
		Path struct {
			ID string `json:"id" param:"required"`
		} `in:"path"`
	}

	api := parambind.New()

	t.Run("DELETE endpoint with Empty response", func(t *testing.T) {
		t.Parallel()

		var got string
		h := func(ctx handler.Context, req deleteRequest) handler.Response {
			got = req.Path.ID
			return handler.Empty()
		}

		router := chi.NewRouter()
		router.Delete("/items/{id}", handler.Wrap(api, h))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/items/123", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
		assert.Equal(t, "123", got)
	})

	t.Run("POST endpoint with EmptyWithStatus Created", func(t *testing.T) {
		t.Parallel()

		type createRequest struct {
			Body struct {
				Name string `json:"name"`
			} `in:"body"`
		}

		httpHandler := handler.Wrap(api, func(ctx handler.Context, req createRequest) handler.Response {
			return handler.EmptyWithStatus(http.StatusCreated)
		})

		w := httptest.NewRecorder()
		httpHandler(w, httptest.NewRequest(http.MethodPost, "/items", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Empty(t, w.Body.String())
	})
}
