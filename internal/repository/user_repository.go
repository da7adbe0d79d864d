package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fwsr-hub/internal/domain"
	"fwsr-hub/internal/repository/models"
	"fwsr-hub/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxUserRepository implements domain.UserRepository using sqlx.
type sqlxUserRepository struct {
	db *sqlx.DB
}

// NewSQLXUserRepository creates a new instance of sqlxUserRepository.
func NewSQLXUserRepository(db *sqlx.DB) domain.UserRepository {
	return &sqlxUserRepository{db: db}
}

func userToModel(u *domain.User) *models.User {
	m := &models.User{
		ID:                u.ID,
		Email:             u.Email,
		PasswordHash:      util.StringToNullString(u.PasswordHash),
		GoogleID:          util.StringToNullString(u.GoogleID),
		Name:              util.StringToNullString(u.Name),
		ProfilePictureURL: util.StringToNullString(u.ProfilePictureURL),
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
	if u.DeletedAt != nil {
		m.DeletedAt = util.TimeToNullTime(*u.DeletedAt)
	}
	return m
}

func userToDomain(m *models.User) *domain.User {
	u := &domain.User{
		ID:                m.ID,
		Email:             m.Email,
		PasswordHash:      m.PasswordHash.String,
		GoogleID:          m.GoogleID.String,
		Name:              m.Name.String,
		ProfilePictureURL: m.ProfilePictureURL.String,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
	if m.DeletedAt.Valid {
		t := m.DeletedAt.Time
		u.DeletedAt = &t
	}
	return u
}

// CreateUser inserts a new user into the database.
func (r *sqlxUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, email, password_hash, google_id, name, profile_picture_url, created_at, updated_at)
	          VALUES (:id, :email, :password_hash, :google_id, :name, :profile_picture_url, :created_at, :updated_at)`

	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	if _, err := r.db.NamedExecContext(ctx, query, userToModel(user)); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by their internal ID.
func (r *sqlxUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT * FROM users WHERE id = :id AND deleted_at IS NULL`,
		map[string]interface{}{"id": userID})
}

// GetUserByEmail retrieves a user by their email address.
func (r *sqlxUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT * FROM users WHERE email = :email AND deleted_at IS NULL`,
		map[string]interface{}{"email": email})
}

// GetUserByGoogleID retrieves a user by their Google ID.
func (r *sqlxUserRepository) GetUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT * FROM users WHERE google_id = :google_id AND deleted_at IS NULL`,
		map[string]interface{}{"google_id": googleID})
}

func (r *sqlxUserRepository) getOne(ctx context.Context, query string, args map[string]interface{}) (*domain.User, error) {
	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare user query: %w", err)
	}
	defer stmt.Close()

	var user models.User
	if err := stmt.GetContext(ctx, &user, args); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found is not an error, services decide
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return userToDomain(&user), nil
}

// UpdateUser updates an existing user's information.
func (r *sqlxUserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	user.UpdatedAt = time.Now()

	query := `UPDATE users SET
	            email = :email,
	            password_hash = :password_hash,
	            google_id = :google_id,
	            name = :name,
	            profile_picture_url = :profile_picture_url,
	            updated_at = :updated_at
	          WHERE id = :id AND deleted_at IS NULL`

	result, err := r.db.NamedExecContext(ctx, query, userToModel(user))
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
