package handlers

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"Katta/config"
	"Katta/models"
	"Katta/services"
)

// Brand is the one-place site identity injected into every page.
type Brand struct {
	SiteName string
	Tagline  string
	LogoText string
}

var brand = Brand{
	SiteName: "Sarakari Katta",
	Tagline:  "तुमच्या प्रगतीचा सोबती",
	LogoText: "SK",
}

// Ads carries the ad-network presentation config. Enabled is false whenever
// the client id is unset, which hides every slot.
type Ads struct {
	Enabled       bool
	Client        string
	SlotTop       string
	SlotSide      string
	SlotInContent string
}

// basePage is embedded in every per-page data struct.
type basePage struct {
	Brand    Brand
	Nav      []models.Category
	Year     int
	Ads      Ads
	Username string
	Flashes  []services.Flash
}

// Handler holds every dependency the route layer needs. Nothing is read
// from package-level state.
type Handler struct {
	cfg       *config.Config
	posts     *services.PostService
	auth      *services.AuthService
	sessions  *services.SessionManager
	ads       Ads
	templates map[string]*template.Template
}

var pageTemplates = []string{"index", "category", "post", "login", "admin"}

func New(cfg *config.Config, posts *services.PostService, auth *services.AuthService, sessions *services.SessionManager) (*Handler, error) {
	h := &Handler{
		cfg:      cfg,
		posts:    posts,
		auth:     auth,
		sessions: sessions,
		ads: Ads{
			Enabled:       cfg.AdsEnabled(),
			Client:        cfg.AdsenseClient,
			SlotTop:       cfg.AdsSlotTop,
			SlotSide:      cfg.AdsSlotSide,
			SlotInContent: cfg.AdsSlotInContent,
		},
		templates: make(map[string]*template.Template),
	}

	for _, page := range pageTemplates {
		tmpl, err := template.New(page).Funcs(funcMap()).ParseFiles(
			"templates/layouts/base.html",
			"templates/pages/"+page+".html",
			"templates/components/navigation.html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		h.templates[page] = tmpl
	}

	return h, nil
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Format("02 Jan 2006")
		},
		"truncate": func(s string, n int) string {
			if len(s) <= n {
				return s
			}
			return s[:n] + "..."
		},
	}
}

// base builds the cross-page data for the current request. Consuming the
// flashes here means they show exactly once.
func (h *Handler) base(w http.ResponseWriter, r *http.Request) basePage {
	return basePage{
		Brand:    brand,
		Nav:      models.Categories,
		Year:     time.Now().Year(),
		Ads:      h.ads,
		Username: h.sessions.CurrentUsername(r),
		Flashes:  h.sessions.Flashes(w, r),
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, page string, data any) {
	tmpl, ok := h.templates[page]
	if !ok {
		slog.Error("unknown template", "page", page)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		slog.Error("error rendering template", "page", page, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) serverError(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, "error", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
