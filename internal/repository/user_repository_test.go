package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobhub/job-board/internal/domain"
	apperrors "github.com/jobhub/job-board/pkg/util/errorutil"
)

var userColumnNames = []string{"id", "name", "email", "is_company", "password_hash", "created_at"}

func TestUserRepository_GetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE email=\$1`).
		WithArgs("hr@acme.io").
		WillReturnRows(pgxmock.NewRows(userColumnNames).AddRow(int64(1), "Acme", "hr@acme.io", true, "hash", now))

	user, err := NewUserRepository(mock).GetByEmail(context.Background(), "hr@acme.io")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "Acme", user.Name)
	assert.True(t, user.IsCompany)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail_Miss(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE email=\$1`).
		WithArgs("nobody@acme.io").
		WillReturnError(pgx.ErrNoRows)

	user, err := NewUserRepository(mock).GetByEmail(context.Background(), "nobody@acme.io")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestUserRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(`INSERT INTO users \(name, email, is_company, password_hash\)`).
		WithArgs("Bob", "bob@mail.io", false, "hash").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(2), now))

	user := &domain.User{Name: "Bob", Email: "bob@mail.io", PasswordHash: "hash"}
	require.NoError(t, NewUserRepository(mock).Create(context.Background(), user))
	assert.Equal(t, int64(2), user.ID)
	assert.Equal(t, now, user.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Bob", "bob@mail.io", false, "hash").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"})

	err = NewUserRepository(mock).Create(context.Background(), &domain.User{Name: "Bob", Email: "bob@mail.io", PasswordHash: "hash"})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeConflict, apperrors.ToDomainError(err).Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
