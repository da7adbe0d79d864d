package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fwsr-hub/internal/domain"
	"fwsr-hub/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// sqlxChatSessionRepository implements domain.ChatSessionRepository using sqlx.
type sqlxChatSessionRepository struct {
	db *sqlx.DB
}

// NewSQLXChatSessionRepository creates a new instance of sqlxChatSessionRepository.
func NewSQLXChatSessionRepository(db *sqlx.DB) domain.ChatSessionRepository {
	return &sqlxChatSessionRepository{db: db}
}

func chatSessionToModel(s *domain.ChatSession) *models.ChatSession {
	return &models.ChatSession{
		ID:        s.ID,
		UserID:    s.UserID,
		PlanID:    s.PlanID,
		Messages:  models.MessagesJSON(s.Messages),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// CreateSession inserts a new chat session with its initial transcript.
func (r *sqlxChatSessionRepository) CreateSession(ctx context.Context, session *domain.ChatSession) error {
	query := `INSERT INTO chat_sessions (id, user_id, plan_id, messages, created_at, updated_at)
	          VALUES (:id, :user_id, :plan_id, :messages, :created_at, :updated_at)`

	session.CreatedAt = time.Now()
	session.UpdatedAt = session.CreatedAt

	if _, err := r.db.NamedExecContext(ctx, query, chatSessionToModel(session)); err != nil {
		return fmt.Errorf("failed to create chat session: %w", err)
	}
	return nil
}

// UpdateSession replaces the stored transcript with the given one.
// The whole transcript is written on each turn, last write wins.
func (r *sqlxChatSessionRepository) UpdateSession(ctx context.Context, session *domain.ChatSession) error {
	query := `UPDATE chat_sessions SET messages = :messages, updated_at = :updated_at WHERE id = :id`

	session.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, query, chatSessionToModel(session))
	if err != nil {
		return fmt.Errorf("failed to update chat session: %w", err)
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

// GetLatestSessionByUserID retrieves the most recently updated session for a user.
func (r *sqlxChatSessionRepository) GetLatestSessionByUserID(ctx context.Context, userID string) (*domain.ChatSession, error) {
	query := `SELECT * FROM chat_sessions WHERE user_id = :user_id
	          ORDER BY updated_at DESC FETCH FIRST 1 ROWS ONLY`

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare query for GetLatestSessionByUserID: %w", err)
	}
	defer stmt.Close()

	var m models.ChatSession
	args := map[string]interface{}{"user_id": userID}
	if err := stmt.GetContext(ctx, &m, args); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest chat session: %w", err)
	}

	return &domain.ChatSession{
		ID:        m.ID,
		UserID:    m.UserID,
		PlanID:    m.PlanID,
		Messages:  []domain.ChatMessage(m.Messages),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}
