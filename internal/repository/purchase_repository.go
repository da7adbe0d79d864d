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

// sqlxPurchaseRepository implements domain.PurchaseRepository using sqlx.
type sqlxPurchaseRepository struct {
	db *sqlx.DB
}

// NewSQLXPurchaseRepository creates a new instance of sqlxPurchaseRepository.
func NewSQLXPurchaseRepository(db *sqlx.DB) domain.PurchaseRepository {
	return &sqlxPurchaseRepository{db: db}
}

// CreatePurchase inserts a new purchase in pending state.
func (r *sqlxPurchaseRepository) CreatePurchase(ctx context.Context, purchase *domain.Purchase) error {
	query := `INSERT INTO purchases (id, user_id, plan_id, amount, status, created_at, updated_at)
	          VALUES (:id, :user_id, :plan_id, :amount, :status, :created_at, :updated_at)`

	purchase.CreatedAt = time.Now()
	purchase.UpdatedAt = purchase.CreatedAt
	m := &models.Purchase{
		ID:        purchase.ID,
		UserID:    purchase.UserID,
		PlanID:    purchase.PlanID,
		Amount:    float64(purchase.Amount),
		Status:    string(purchase.Status),
		CreatedAt: purchase.CreatedAt,
		UpdatedAt: purchase.UpdatedAt,
	}

	if _, err := r.db.NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to create purchase: %w", err)
	}
	return nil
}

// GetPurchaseByID retrieves a purchase by its order id.
func (r *sqlxPurchaseRepository) GetPurchaseByID(ctx context.Context, id string) (*domain.Purchase, error) {
	query := `SELECT * FROM purchases WHERE id = :id`

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare query for GetPurchaseByID: %w", err)
	}
	defer stmt.Close()

	var m models.Purchase
	args := map[string]interface{}{"id": id}
	if err := stmt.GetContext(ctx, &m, args); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get purchase: %w", err)
	}

	return &domain.Purchase{
		ID:        m.ID,
		UserID:    m.UserID,
		PlanID:    m.PlanID,
		Amount:    int(m.Amount),
		Status:    domain.PurchaseStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

// UpdatePurchaseStatus transitions a purchase to the given settlement state.
func (r *sqlxPurchaseRepository) UpdatePurchaseStatus(ctx context.Context, id string, status domain.PurchaseStatus) error {
	query := `UPDATE purchases SET status = :status, updated_at = :updated_at WHERE id = :id`

	args := map[string]interface{}{
		"id":         id,
		"status":     string(status),
		"updated_at": time.Now(),
	}

	result, err := r.db.NamedExecContext(ctx, query, args)
	if err != nil {
		return fmt.Errorf("failed to update purchase status: %w", err)
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
