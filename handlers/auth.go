package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"Katta/services"
)

type loginPage struct {
	basePage
}

// Login shows the credential form and processes submissions. Failures carry
// one generic message so the response cannot reveal which factor was wrong.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		username := strings.TrimSpace(r.FormValue("username"))
		password := strings.TrimSpace(r.FormValue("password"))

		user, err := h.auth.Authenticate(username, password)
		if err != nil {
			if !errors.Is(err, services.ErrInvalidCredentials) {
				h.serverError(w, "login failed", err)
				return
			}
			slog.Warn("login failed", "username", username)
			h.sessions.AddFlash(w, r, services.FlashError, "Invalid username/password")
		} else {
			if err := h.sessions.SignIn(w, r, user.Username); err != nil {
				h.serverError(w, "failed to save session", err)
				return
			}
			slog.Info("user authenticated", "username", user.Username)
			h.sessions.AddFlash(w, r, services.FlashSuccess, "Login successful")
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
	}

	h.render(w, r, "login", loginPage{basePage: h.base(w, r)})
}

// Logout clears the authenticated identity and returns to the home page.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.SignOut(w, r); err != nil {
		slog.Warn("failed to clear session", "error", err)
	}
	h.sessions.AddFlash(w, r, services.FlashSuccess, "Logged out")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
