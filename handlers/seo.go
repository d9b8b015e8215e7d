package handlers

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"Katta/models"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// SitemapURLSet is the urlset root of a sitemap document.
type SitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

type SitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// baseURL resolves the canonical site prefix: the configured SITE_URL when
// set, otherwise the scheme and host of the inbound request.
func (h *Handler) baseURL(r *http.Request) string {
	if h.cfg.SiteURL != "" {
		return strings.TrimRight(h.cfg.SiteURL, "/")
	}

	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

// Sitemap enumerates the home page, the five categories and every post.
func (h *Handler) Sitemap(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.All()
	if err != nil {
		h.serverError(w, "failed to load posts for sitemap", err)
		return
	}

	base := h.baseURL(r)

	urlSet := SitemapURLSet{Xmlns: sitemapNamespace}
	urlSet.URLs = append(urlSet.URLs, SitemapURL{Loc: base + "/"})
	for _, c := range models.Categories {
		urlSet.URLs = append(urlSet.URLs, SitemapURL{Loc: fmt.Sprintf("%s/category/%s", base, c.Key)})
	}
	for _, p := range posts {
		urlSet.URLs = append(urlSet.URLs, SitemapURL{
			Loc:     fmt.Sprintf("%s/post/%d", base, p.ID),
			LastMod: p.UpdatedAt.Format("2006-01-02"),
		})
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write([]byte(xml.Header))
	if err := xml.NewEncoder(w).Encode(urlSet); err != nil {
		h.serverError(w, "failed to encode sitemap", err)
	}
}

// Robots points crawlers at the sitemap and keeps them out of the admin area.
func (h *Handler) Robots(w http.ResponseWriter, r *http.Request) {
	base := h.baseURL(r)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "User-agent: *\nAllow: /\nDisallow: /admin\n\nSitemap: %s/sitemap.xml\n", base)
}
