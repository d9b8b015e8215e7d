package services

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"Katta/database"
	"Katta/models"
)

const postColumns = "id, title, category, summary, content, official_link, form_link, created_at, updated_at"

// Home digest and related-post limits.
const (
	HomePostLimit     = 12
	CategoryBlockSize = 4
	RelatedPostLimit  = 6
)

// PostService is the read/write repository for posts.
type PostService struct {
	store *database.Store
}

func NewPostService(store *database.Store) *PostService {
	return &PostService{store: store}
}

// PostInput carries the fields of a post submission. Values are trimmed
// before validation.
type PostInput struct {
	Title        string
	Category     string
	Summary      string
	Content      string
	OfficialLink string
	FormLink     string
}

// Recent returns the newest posts across all categories.
func (s *PostService) Recent(limit int) ([]models.Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM posts ORDER BY created_at DESC, id DESC LIMIT ?`, postColumns)
	rows, err := s.store.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent posts: %w", err)
	}
	return scanPosts(rows)
}

// RecentByCategory returns the newest posts in one category, for the
// home-page digest blocks.
func (s *PostService) RecentByCategory(category string, limit int) ([]models.Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM posts WHERE category = ? ORDER BY created_at DESC, id DESC LIMIT ?`, postColumns)
	rows, err := s.store.Query(query, category, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts for category %s: %w", category, err)
	}
	return scanPosts(rows)
}

// ListByCategory returns every post in one category, newest first.
func (s *PostService) ListByCategory(category string) ([]models.Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM posts WHERE category = ? ORDER BY created_at DESC, id DESC`, postColumns)
	rows, err := s.store.Query(query, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts for category %s: %w", category, err)
	}
	return scanPosts(rows)
}

// All returns every post, newest first. Used by the admin page.
func (s *PostService) All() ([]models.Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM posts ORDER BY created_at DESC, id DESC`, postColumns)
	rows, err := s.store.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return scanPosts(rows)
}

// GetByID fetches one post, or ErrNotFound when the id is absent.
func (s *PostService) GetByID(id int64) (*models.Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM posts WHERE id = ?`, postColumns)
	var p models.Post
	err := scanPost(s.store.QueryRow(query, id), &p)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post %d: %w", id, err)
	}
	return &p, nil
}

// Related returns up to RelatedPostLimit posts sharing a category, excluding
// the given id.
func (s *PostService) Related(category string, excludeID int64) ([]models.Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM posts WHERE category = ? AND id <> ? ORDER BY created_at DESC, id DESC LIMIT ?`, postColumns)
	rows, err := s.store.Query(query, category, excludeID, RelatedPostLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list related posts: %w", err)
	}
	return scanPosts(rows)
}

// Search matches a substring against title, summary and content,
// case-insensitively, newest first.
func (s *PostService) Search(q string) ([]models.Post, error) {
	like := s.store.Dialect().Like()
	query := fmt.Sprintf(
		`SELECT %s FROM posts WHERE title %[2]s ? OR summary %[2]s ? OR content %[2]s ? ORDER BY created_at DESC, id DESC`,
		postColumns, like)
	pattern := "%" + q + "%"
	rows, err := s.store.Query(query, pattern, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}
	return scanPosts(rows)
}

// Create validates and inserts a new post, returning it with its assigned id.
func (s *PostService) Create(input PostInput) (*models.Post, error) {
	p := models.Post{
		Title:        strings.TrimSpace(input.Title),
		Category:     strings.TrimSpace(input.Category),
		Summary:      strings.TrimSpace(input.Summary),
		Content:      strings.TrimSpace(input.Content),
		OfficialLink: strings.TrimSpace(input.OfficialLink),
		FormLink:     strings.TrimSpace(input.FormLink),
	}

	if p.Title == "" || p.Summary == "" || p.Content == "" {
		return nil, fmt.Errorf("%w: title, summary and content are required", ErrValidation)
	}
	if !models.ValidCategory(p.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, p.Category)
	}

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	id, err := s.store.InsertReturningID(
		`INSERT INTO posts (title, category, summary, content, official_link, form_link, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Title, p.Category, p.Summary, p.Content, p.OfficialLink, p.FormLink, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	p.ID = id

	return &p, nil
}

// Delete removes a post by id. Deleting an absent id is a no-op, not an
// error.
func (s *PostService) Delete(id int64) error {
	if _, err := s.store.Exec(`DELETE FROM posts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete post %d: %w", id, err)
	}
	return nil
}

func scanPosts(rows *sql.Rows) ([]models.Post, error) {
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Category, &p.Summary, &p.Content,
			&p.OfficialLink, &p.FormLink, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner, p *models.Post) error {
	return row.Scan(
		&p.ID, &p.Title, &p.Category, &p.Summary, &p.Content,
		&p.OfficialLink, &p.FormLink, &p.CreatedAt, &p.UpdatedAt,
	)
}
