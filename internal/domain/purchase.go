package domain

import (
	"context"
	"time"
)

// PurchaseStatus tracks the checkout lifecycle as reported by the payment
// gateway.
type PurchaseStatus string

const (
	PurchasePending PurchaseStatus = "pending"
	PurchasePaid    PurchaseStatus = "paid"
	PurchaseFailed  PurchaseStatus = "failed"
)

// Purchase is one checkout attempt for a plan. Its ID doubles as the
// gateway order id.
type Purchase struct {
	ID        string
	UserID    string
	PlanID    string
	Amount    int // EUR, whole units
	Status    PurchaseStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PurchaseRepository persists checkout attempts.
type PurchaseRepository interface {
	CreatePurchase(ctx context.Context, purchase *Purchase) error
	GetPurchaseByID(ctx context.Context, id string) (*Purchase, error)
	UpdatePurchaseStatus(ctx context.Context, id string, status PurchaseStatus) error
}
