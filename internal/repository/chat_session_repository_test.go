package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"fwsr-hub/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestSQLXChatSessionRepository_CreateSession(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXChatSessionRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO chat_sessions")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	session := &domain.ChatSession{
		ID:     "01J0SESS00000000000000001",
		UserID: "user-1",
		PlanID: "chat",
		Messages: []domain.ChatMessage{
			{Role: domain.RoleModel, Content: "Welcome."},
		},
	}
	err := repo.CreateSession(context.Background(), session)

	assert.NoError(t, err)
	assert.False(t, session.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXChatSessionRepository_GetLatestSessionByUserID(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXChatSessionRepository(db)

	transcript := []domain.ChatMessage{
		{Role: domain.RoleModel, Content: "Welcome."},
		{Role: domain.RoleUser, Content: "Draft my Social CoC"},
	}
	raw, err := json.Marshal(transcript)
	assert.NoError(t, err)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"ID", "USER_ID", "PLAN_ID", "MESSAGES", "CREATED_AT", "UPDATED_AT"}).
		AddRow("01J0SESS00000000000000001", "user-1", "chat", string(raw), now, now)
	mock.ExpectPrepare("SELECT \\* FROM chat_sessions WHERE user_id").
		ExpectQuery().
		WillReturnRows(rows)

	session, err := repo.GetLatestSessionByUserID(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.NotNil(t, session)
	assert.Len(t, session.Messages, 2)
	assert.Equal(t, domain.RoleUser, session.Messages[1].Role)
	assert.Equal(t, "Draft my Social CoC", session.Messages[1].Content)
}

func TestSQLXChatSessionRepository_GetLatestSessionByUserID_None(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXChatSessionRepository(db)

	mock.ExpectPrepare("SELECT \\* FROM chat_sessions WHERE user_id").
		ExpectQuery().
		WillReturnError(sql.ErrNoRows)

	session, err := repo.GetLatestSessionByUserID(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Nil(t, session)
}

func TestSQLXChatSessionRepository_UpdateSession_NoRows(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXChatSessionRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE chat_sessions SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateSession(context.Background(), &domain.ChatSession{ID: "missing"})

	assert.ErrorIs(t, err, sql.ErrNoRows)
}
