package database

import (
	"fmt"
)

// Migrate creates the schema if it does not exist yet. Every statement is
// idempotent so parallel workers can race through startup safely.
func Migrate(store *Store) error {
	pk := store.Dialect().AutoIncrementPK()

	usersSQL := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS users (
		id %s,
		username VARCHAR(255) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`, pk)

	if _, err := store.Exec(usersSQL); err != nil {
		return fmt.Errorf("failed to run users migration: %w", err)
	}

	postsSQL := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS posts (
		id %s,
		title VARCHAR(255) NOT NULL,
		category VARCHAR(50) NOT NULL,
		summary TEXT NOT NULL,
		content TEXT NOT NULL,
		official_link TEXT NOT NULL DEFAULT '',
		form_link TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`, pk)

	if _, err := store.Exec(postsSQL); err != nil {
		return fmt.Errorf("failed to run posts migration: %w", err)
	}

	if _, err := store.Exec(`CREATE INDEX IF NOT EXISTS idx_posts_category ON posts (category)`); err != nil {
		return fmt.Errorf("failed to create posts category index: %w", err)
	}

	return nil
}
