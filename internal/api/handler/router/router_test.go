package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestRouter(calls *[]string) Router {
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				*calls = append(*calls, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	return New(WithRoutes(Route{
		Path:   "/v1/sales",
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*calls = append(*calls, "handler")
			w.WriteHeader(http.StatusOK)
		}),
		Middlewares: []func(http.Handler) http.Handler{tag("first"), tag("second")},
	}))
}

func TestRouter_AppliesRouteMiddlewaresInOrder(t *testing.T) {
	var calls []string
	rt := newTestRouter(&calls)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sales", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"first", "second", "handler"}, calls)
}

func TestRouter_NotFound(t *testing.T) {
	var calls []string
	rt := newTestRouter(&calls)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"RES_001"`)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Empty(t, calls)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	var calls []string
	rt := newTestRouter(&calls)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/sales", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"RES_002"`)
}
