package database

import (
	"fmt"
	"log/slog"
	"time"

	"Katta/config"

	"golang.org/x/crypto/bcrypt"
)

// AdminUsername is the single administrative account. There is no signup
// flow; any other user has to be created by hand in the database.
const AdminUsername = "admin"

// SeedAdminUser ensures the admin account exists. The insert-if-absent form
// keeps a second startup (or a parallel worker) from adding another row.
func SeedAdminUser(store *Store, cfg *config.Config) error {
	if cfg.AdminPassword == config.DefaultAdminPassword {
		slog.Warn("default admin password in use, change it after first login",
			"username", AdminUsername)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	// ON CONFLICT DO NOTHING is understood by both backends.
	_, err = store.Exec(
		`INSERT INTO users (username, password_hash, created_at) VALUES (?, ?, ?)
		 ON CONFLICT (username) DO NOTHING`,
		AdminUsername,
		string(hashedPassword),
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	return nil
}
