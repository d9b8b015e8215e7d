package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"Katta/models"
	"Katta/services"
)

type adminPage struct {
	basePage
	Posts      []models.Post
	Categories []models.Category
}

// Admin renders the dashboard and processes its three form actions. POSTs
// redirect back so a refresh never replays an action.
func (h *Handler) Admin(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		switch action := r.FormValue("action"); action {
		case "create":
			h.createPost(w, r)
		case "delete":
			h.deletePost(w, r)
		case "update_password":
			h.updatePassword(w, r)
		default:
			slog.Warn("unknown admin action", "action", action)
		}
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	posts, err := h.posts.All()
	if err != nil {
		h.serverError(w, "failed to load posts for admin", err)
		return
	}

	h.render(w, r, "admin", adminPage{
		basePage:   h.base(w, r),
		Posts:      posts,
		Categories: models.Categories,
	})
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.posts.Create(services.PostInput{
		Title:        r.FormValue("title"),
		Category:     r.FormValue("category"),
		Summary:      r.FormValue("summary"),
		Content:      r.FormValue("content"),
		OfficialLink: r.FormValue("official_link"),
		FormLink:     r.FormValue("form_link"),
	})
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			h.sessions.AddFlash(w, r, services.FlashError, "Title, summary, content and a valid category are required")
			return
		}
		slog.Error("failed to create post", "error", err)
		h.sessions.AddFlash(w, r, services.FlashError, "Failed to create post")
		return
	}

	slog.Info("post created", "id", post.ID, "category", post.Category)
	h.sessions.AddFlash(w, r, services.FlashSuccess, "Post created")
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.FormValue("post_id"), 10, 64)
	if err != nil {
		h.sessions.AddFlash(w, r, services.FlashError, "Invalid post id")
		return
	}

	if err := h.posts.Delete(id); err != nil {
		slog.Error("failed to delete post", "id", id, "error", err)
		h.sessions.AddFlash(w, r, services.FlashError, "Failed to delete post")
		return
	}

	slog.Info("post deleted", "id", id)
	h.sessions.AddFlash(w, r, services.FlashSuccess, "Post deleted")
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	username := h.sessions.CurrentUsername(r)
	oldPassword := r.FormValue("old_password")
	newPassword := r.FormValue("new_password")

	err := h.auth.ChangePassword(username, oldPassword, newPassword)
	switch {
	case errors.Is(err, services.ErrValidation):
		h.sessions.AddFlash(w, r, services.FlashError, "New password must be at least 8 characters")
	case errors.Is(err, services.ErrInvalidCredentials):
		h.sessions.AddFlash(w, r, services.FlashError, "Old password wrong")
	case err != nil:
		slog.Error("failed to update password", "username", username, "error", err)
		h.sessions.AddFlash(w, r, services.FlashError, "Failed to update password")
	default:
		slog.Info("password updated", "username", username)
		h.sessions.AddFlash(w, r, services.FlashSuccess, "Password updated")
	}
}
