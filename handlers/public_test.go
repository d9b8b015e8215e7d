package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_EmptyQueryRedirectsHome(t *testing.T) {
	// No storage dependency: the redirect must happen before any query.
	h := &Handler{}

	tests := []string{"/search", "/search?q=", "/search?q=%20%20"}
	for _, target := range tests {
		t.Run(target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, target, nil)

			h.Search(rec, req)

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/", rec.Header().Get("Location"))
		})
	}
}

func TestCategory_UnknownKeyIs404(t *testing.T) {
	h := &Handler{}

	r := chi.NewRouter()
	r.Get("/category/{key}", h.Category)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/category/astrology", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPost_NonNumericIDIs404(t *testing.T) {
	h := &Handler{}

	r := chi.NewRouter()
	r.Get("/post/{id}", h.Post)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/post/not-a-number", nil)
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
