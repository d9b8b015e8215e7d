package handlers

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Katta/config"
	"Katta/database"
	"Katta/models"
	"Katta/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		siteURL  string
		request  func() *http.Request
		expected string
	}{
		{
			name:    "configured site url wins",
			siteURL: "https://sarakarikatta.example/",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "http://other.host/sitemap.xml", nil)
			},
			expected: "https://sarakarikatta.example",
		},
		{
			name: "falls back to request host",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "http://localhost:5000/sitemap.xml", nil)
			},
			expected: "http://localhost:5000",
		},
		{
			name: "tls request uses https",
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "http://example.org/sitemap.xml", nil)
				req.TLS = &tls.ConnectionState{}
				return req
			},
			expected: "https://example.org",
		},
		{
			name: "forwarded proto is honored",
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "http://example.org/sitemap.xml", nil)
				req.Header.Set("X-Forwarded-Proto", "https")
				return req
			},
			expected: "https://example.org",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{cfg: &config.Config{SiteURL: tt.siteURL}}
			assert.Equal(t, tt.expected, h.baseURL(tt.request()))
		})
	}
}

func setupSitemapHandler(t *testing.T) (*Handler, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	h := &Handler{
		cfg:   &config.Config{SiteURL: "https://sarakarikatta.example"},
		posts: services.NewPostService(database.NewStore(db, database.SQLite)),
	}
	return h, mock, func() { db.Close() }
}

func TestSitemap(t *testing.T) {
	h, mock, cleanup := setupSitemapHandler(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{
		"id", "title", "category", "summary", "content",
		"official_link", "form_link", "created_at", "updated_at",
	}).AddRow(int64(5), "Title", "jobs", "Summary", "Content", "", "",
		mustTime(t, "2025-06-01"), mustTime(t, "2025-06-02"))

	mock.ExpectQuery("SELECT (.+) FROM posts ORDER BY created_at DESC").
		WillReturnRows(rows)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	h.Sitemap(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/xml")

	body := rec.Body.String()
	assert.Contains(t, body, `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`)
	assert.Contains(t, body, "<loc>https://sarakarikatta.example/</loc>")
	for _, c := range models.Categories {
		assert.Contains(t, body, "<loc>https://sarakarikatta.example/category/"+c.Key+"</loc>")
	}
	assert.Contains(t, body, "<loc>https://sarakarikatta.example/post/5</loc>")
	assert.Contains(t, body, "<lastmod>2025-06-02</lastmod>")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRobots(t *testing.T) {
	h := &Handler{cfg: &config.Config{SiteURL: "https://sarakarikatta.example"}}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/robots.txt", nil)
	h.Robots(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")

	body := rec.Body.String()
	assert.Contains(t, body, "User-agent: *")
	assert.Contains(t, body, "Disallow: /admin")
	assert.Contains(t, body, "Sitemap: https://sarakarikatta.example/sitemap.xml")
}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}
