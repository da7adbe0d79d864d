package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"fwsr-hub/internal/domain"
	"fwsr-hub/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

// setupTestDB creates a new sqlx.DB instance and sqlmock for repository testing.
func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

func userColumns() []string {
	return []string{"ID", "EMAIL", "PASSWORD_HASH", "GOOGLE_ID", "NAME", "PROFILE_PICTURE_URL", "CREATED_AT", "UPDATED_AT", "DELETED_AT"}
}

func TestUserToModelAndBack(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	domainUser := &domain.User{
		ID:                "01J0USER00000000000000001",
		Email:             "brand@example.com",
		PasswordHash:      "$2a$10$hash",
		GoogleID:          "google123",
		Name:              "Test Brand",
		ProfilePictureURL: "http://example.com/pic.jpg",
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	model := userToModel(domainUser)
	assert.Equal(t, domainUser.ID, model.ID)
	assert.Equal(t, domainUser.Email, model.Email)
	assert.True(t, model.PasswordHash.Valid)
	assert.True(t, model.GoogleID.Valid)
	assert.False(t, model.DeletedAt.Valid)

	back := userToDomain(model)
	assert.Equal(t, domainUser.ID, back.ID)
	assert.Equal(t, domainUser.PasswordHash, back.PasswordHash)
	assert.Equal(t, domainUser.Name, back.Name)
	assert.Nil(t, back.DeletedAt)
}

func TestUserToModel_EmptyOptionalFields(t *testing.T) {
	model := userToModel(&domain.User{ID: "u1", Email: "a@b.c"})
	assert.False(t, model.PasswordHash.Valid)
	assert.False(t, model.GoogleID.Valid)
	assert.False(t, model.Name.Valid)
	assert.False(t, model.ProfilePictureURL.Valid)
}

func TestUserToDomain_DeletedAt(t *testing.T) {
	deleted := time.Now().Add(-time.Hour)
	model := &models.User{
		ID:        "u1",
		Email:     "a@b.c",
		DeletedAt: sql.NullTime{Time: deleted, Valid: true},
	}
	u := userToDomain(model)
	assert.NotNil(t, u.DeletedAt)
	assert.True(t, deleted.Equal(*u.DeletedAt))
}

func TestSQLXUserRepository_CreateUser(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateUser(context.Background(), &domain.User{
		ID:           "01J0USER00000000000000001",
		Email:        "brand@example.com",
		PasswordHash: "$2a$10$hash",
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXUserRepository_GetUserByEmail(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXUserRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(userColumns()).AddRow(
		"01J0USER00000000000000001", "brand@example.com",
		sql.NullString{String: "$2a$10$hash", Valid: true},
		sql.NullString{}, sql.NullString{String: "Test Brand", Valid: true},
		sql.NullString{}, now, now, sql.NullTime{},
	)
	mock.ExpectPrepare("SELECT \\* FROM users WHERE email").
		ExpectQuery().
		WillReturnRows(rows)

	user, err := repo.GetUserByEmail(context.Background(), "brand@example.com")

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "01J0USER00000000000000001", user.ID)
	assert.Equal(t, "Test Brand", user.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXUserRepository_GetUserByEmail_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXUserRepository(db)

	mock.ExpectPrepare("SELECT \\* FROM users WHERE email").
		ExpectQuery().
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetUserByEmail(context.Background(), "nobody@example.com")

	assert.NoError(t, err, "not found is not an error")
	assert.Nil(t, user)
}

func TestSQLXUserRepository_GetUserByGoogleID(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXUserRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(userColumns()).AddRow(
		"01J0USER00000000000000001", "brand@example.com",
		sql.NullString{}, sql.NullString{String: "google123", Valid: true},
		sql.NullString{}, sql.NullString{}, now, now, sql.NullTime{},
	)
	mock.ExpectPrepare("SELECT \\* FROM users WHERE google_id").
		ExpectQuery().
		WillReturnRows(rows)

	user, err := repo.GetUserByGoogleID(context.Background(), "google123")

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "google123", user.GoogleID)
}

func TestSQLXUserRepository_UpdateUser(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateUser(context.Background(), &domain.User{
		ID:    "01J0USER00000000000000001",
		Email: "brand@example.com",
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXUserRepository_UpdateUser_NoRows(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateUser(context.Background(), &domain.User{ID: "missing"})

	assert.True(t, errors.Is(err, sql.ErrNoRows))
}
