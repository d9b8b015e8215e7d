package models

import "time"

type Post struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Summary      string    `json:"summary"`
	Content      string    `json:"content"`
	OfficialLink string    `json:"official_link,omitempty"`
	FormLink     string    `json:"form_link,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
