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

// sqlxAssessmentResultRepository implements domain.AssessmentResultRepository using sqlx.
type sqlxAssessmentResultRepository struct {
	db *sqlx.DB
}

// NewSQLXAssessmentResultRepository creates a new instance of sqlxAssessmentResultRepository.
func NewSQLXAssessmentResultRepository(db *sqlx.DB) domain.AssessmentResultRepository {
	return &sqlxAssessmentResultRepository{db: db}
}

// CreateResult inserts a completed assessment run.
func (r *sqlxAssessmentResultRepository) CreateResult(ctx context.Context, result *domain.AssessmentResult) error {
	query := `INSERT INTO assessment_results (id, user_id, answers, score, created_at)
	          VALUES (:id, :user_id, :answers, :score, :created_at)`

	result.CreatedAt = time.Now()
	m := &models.AssessmentResult{
		ID:        result.ID,
		UserID:    util.StringToNullString(result.UserID),
		Answers:   models.AnswersJSON(result.Answers),
		Score:     float64(result.Score),
		CreatedAt: result.CreatedAt,
	}

	if _, err := r.db.NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to create assessment result: %w", err)
	}
	return nil
}

// GetLatestResultByUserID retrieves the most recent result for a user.
func (r *sqlxAssessmentResultRepository) GetLatestResultByUserID(ctx context.Context, userID string) (*domain.AssessmentResult, error) {
	query := `SELECT * FROM assessment_results WHERE user_id = :user_id
	          ORDER BY created_at DESC FETCH FIRST 1 ROWS ONLY`

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare query for GetLatestResultByUserID: %w", err)
	}
	defer stmt.Close()

	var m models.AssessmentResult
	args := map[string]interface{}{"user_id": userID}
	if err := stmt.GetContext(ctx, &m, args); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest assessment result: %w", err)
	}

	return &domain.AssessmentResult{
		ID:        m.ID,
		UserID:    m.UserID.String,
		Answers:   domain.Results(m.Answers),
		Score:     int(m.Score),
		CreatedAt: m.CreatedAt,
	}, nil
}
