package main

import (
	"log"
	"log/slog"
	"net/http"

	"Katta/config"
	"Katta/database"
	"Katta/handlers"
	"Katta/logger"
	"Katta/middleware"
	"Katta/services"

	"github.com/go-chi/chi/v5"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(cfg.Environment, cfg.Debug)

	// Connect to database
	store, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer store.Close()

	// Run migrations
	if err := database.Migrate(store); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Seed admin user
	if err := database.SeedAdminUser(store, cfg); err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}

	sessions := services.NewSessionManager(cfg)
	posts := services.NewPostService(store)
	auth := services.NewAuthService(store)

	h, err := handlers.New(cfg, posts, auth, sessions)
	if err != nil {
		log.Fatal("Failed to load templates:", err)
	}

	// Setup routes
	r := chi.NewRouter()
	r.Use(middleware.Logging)

	// Static files
	fs := http.FileServer(http.Dir("static"))
	r.Handle("/static/*", http.StripPrefix("/static/", fs))

	// Public routes
	r.Get("/", h.Home)
	r.Get("/category/{key}", h.Category)
	r.Get("/post/{id}", h.Post)
	r.Get("/search", h.Search)
	r.Get("/sitemap.xml", h.Sitemap)
	r.Get("/robots.txt", h.Robots)

	// Admin area
	r.Route("/admin", func(ar chi.Router) {
		ar.Get("/login", h.Login)
		ar.Post("/login", h.Login)
		ar.Get("/logout", h.Logout)

		ar.Group(func(pr chi.Router) {
			pr.Use(middleware.RequireAuth(sessions))
			pr.Get("/", h.Admin)
			pr.Post("/", h.Admin)
		})
	})

	addr := ":" + cfg.ServerPort
	slog.Info("katta is starting",
		"addr", addr,
		"env", cfg.Environment,
		"backend", store.Dialect().String())

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("FATAL: Server failed to start: %v", err)
	}
}
