package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"Katta/models"
	"Katta/services"

	"github.com/go-chi/chi/v5"
)

type categoryBlock struct {
	Key   string
	Label string
	Posts []models.Post
}

type homePage struct {
	basePage
	Posts  []models.Post
	Blocks []categoryBlock
}

type listPage struct {
	basePage
	Key   string
	Label string
	Posts []models.Post
}

type postPage struct {
	basePage
	Post    *models.Post
	Related []models.Post
}

// Home renders the digest: latest posts overall plus a block per category.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.Recent(services.HomePostLimit)
	if err != nil {
		h.serverError(w, "failed to load home posts", err)
		return
	}

	blocks := make([]categoryBlock, 0, len(models.Categories))
	for _, c := range models.Categories {
		catPosts, err := h.posts.RecentByCategory(c.Key, services.CategoryBlockSize)
		if err != nil {
			h.serverError(w, "failed to load category block", err)
			return
		}
		blocks = append(blocks, categoryBlock{Key: c.Key, Label: c.Label, Posts: catPosts})
	}

	h.render(w, r, "index", homePage{
		basePage: h.base(w, r),
		Posts:    posts,
		Blocks:   blocks,
	})
}

// Category lists every post under one category key, 404 for unknown keys.
func (h *Handler) Category(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if !models.ValidCategory(key) {
		http.NotFound(w, r)
		return
	}

	posts, err := h.posts.ListByCategory(key)
	if err != nil {
		h.serverError(w, "failed to load category posts", err)
		return
	}

	h.render(w, r, "category", listPage{
		basePage: h.base(w, r),
		Key:      key,
		Label:    models.CategoryLabel(key),
		Posts:    posts,
	})
}

// Post renders one post plus related posts in the same category.
func (h *Handler) Post(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	post, err := h.posts.GetByID(id)
	if errors.Is(err, services.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.serverError(w, "failed to load post", err)
		return
	}

	related, err := h.posts.Related(post.Category, post.ID)
	if err != nil {
		h.serverError(w, "failed to load related posts", err)
		return
	}

	h.render(w, r, "post", postPage{
		basePage: h.base(w, r),
		Post:     post,
		Related:  related,
	})
}

// Search renders substring matches on the listing page. An empty query goes
// home without touching storage.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	posts, err := h.posts.Search(q)
	if err != nil {
		h.serverError(w, "failed to search posts", err)
		return
	}

	h.render(w, r, "category", listPage{
		basePage: h.base(w, r),
		Key:      "search",
		Label:    "Search: " + q,
		Posts:    posts,
	})
}
