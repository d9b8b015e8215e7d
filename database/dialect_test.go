package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDialect_Rebind(t *testing.T) {
	tests := []struct {
		name     string
		dialect  Dialect
		query    string
		expected string
	}{
		{
			name:     "sqlite passes through",
			dialect:  SQLite,
			query:    "SELECT * FROM posts WHERE id = ?",
			expected: "SELECT * FROM posts WHERE id = ?",
		},
		{
			name:     "postgres numbers placeholders",
			dialect:  Postgres,
			query:    "INSERT INTO posts (title, category) VALUES (?, ?)",
			expected: "INSERT INTO posts (title, category) VALUES ($1, $2)",
		},
		{
			name:     "postgres many placeholders",
			dialect:  Postgres,
			query:    "VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
			expected: "VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)",
		},
		{
			name:     "question mark inside literal is kept",
			dialect:  Postgres,
			query:    "SELECT * FROM posts WHERE title = 'what?' AND id = ?",
			expected: "SELECT * FROM posts WHERE title = 'what?' AND id = $1",
		},
		{
			name:     "no placeholders",
			dialect:  Postgres,
			query:    "SELECT 1",
			expected: "SELECT 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.dialect.Rebind(tt.query))
		})
	}
}

func TestDialect_Like(t *testing.T) {
	assert.Equal(t, "ILIKE", Postgres.Like())
	assert.Equal(t, "LIKE", SQLite.Like())
}

func TestDialect_AutoIncrementPK(t *testing.T) {
	assert.Equal(t, "SERIAL PRIMARY KEY", Postgres.AutoIncrementPK())
	assert.Equal(t, "INTEGER PRIMARY KEY AUTOINCREMENT", SQLite.AutoIncrementPK())
}

func TestDialect_DriverName(t *testing.T) {
	assert.Equal(t, "pgx", Postgres.DriverName())
	assert.Equal(t, "sqlite", SQLite.DriverName())
}
