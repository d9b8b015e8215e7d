package services

import (
	"database/sql"
	"testing"
	"time"

	"Katta/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupAuthService(t *testing.T) (*AuthService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	svc := NewAuthService(database.NewStore(db, database.SQLite))
	return svc, mock, func() { db.Close() }
}

func userRows(t *testing.T, username, password string) *sqlmock.Rows {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
		AddRow(int64(1), username, string(hash), time.Now())
}

func TestAuthService_Authenticate(t *testing.T) {
	svc, mock, cleanup := setupAuthService(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE username = ").
		WithArgs("admin").
		WillReturnRows(userRows(t, "admin", "correct-horse-battery"))

	user, err := svc.Authenticate("admin", "correct-horse-battery")

	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	svc, mock, cleanup := setupAuthService(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE username = ").
		WithArgs("admin").
		WillReturnRows(userRows(t, "admin", "correct-horse-battery"))

	user, err := svc.Authenticate("admin", "wrong")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Authenticate_UnknownUser(t *testing.T) {
	svc, mock, cleanup := setupAuthService(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE username = ").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	user, err := svc.Authenticate("ghost", "whatever")

	assert.Nil(t, user)
	// Unknown user and wrong password must be indistinguishable.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_ChangePassword_TooShort(t *testing.T) {
	svc, mock, cleanup := setupAuthService(t)
	defer cleanup()

	err := svc.ChangePassword("admin", "old-password", "short")

	assert.ErrorIs(t, err, ErrValidation)
	// No read, no write: the hash must stay untouched.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthService_ChangePassword_WrongOldPassword(t *testing.T) {
	svc, mock, cleanup := setupAuthService(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE username = ").
		WithArgs("admin").
		WillReturnRows(userRows(t, "admin", "actual-old-password"))

	err := svc.ChangePassword("admin", "guessed-wrong", "new-password-123")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthService_ChangePassword(t *testing.T) {
	svc, mock, cleanup := setupAuthService(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE username = ").
		WithArgs("admin").
		WillReturnRows(userRows(t, "admin", "actual-old-password"))
	mock.ExpectExec("UPDATE users SET password_hash = ").
		WithArgs(sqlmock.AnyArg(), "admin").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := svc.ChangePassword("admin", "actual-old-password", "new-password-123")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
