package services

import (
	"database/sql"
	"fmt"

	"Katta/database"
	"Katta/models"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength applies to password changes, not to the seeded default.
const MinPasswordLength = 8

// AuthService verifies credentials and manages the stored password hash.
type AuthService struct {
	store *database.Store
}

func NewAuthService(store *database.Store) *AuthService {
	return &AuthService{store: store}
}

// Authenticate checks a username/password pair. Unknown user and wrong
// password both come back as ErrInvalidCredentials so the response cannot
// reveal which factor was wrong.
func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.getUserByUsername(username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// ChangePassword replaces the stored hash after verifying the old password.
func (s *AuthService) ChangePassword(username, oldPassword, newPassword string) error {
	if len(newPassword) < MinPasswordLength {
		return fmt.Errorf("%w: new password must be at least %d characters", ErrValidation, MinPasswordLength)
	}

	user, err := s.getUserByUsername(username)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if _, err := s.store.Exec(
		`UPDATE users SET password_hash = ? WHERE username = ?`,
		string(hashedPassword), username,
	); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

func (s *AuthService) getUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.store.QueryRow(
		`SELECT id, username, password_hash, created_at FROM users WHERE username = ?`,
		username,
	).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
