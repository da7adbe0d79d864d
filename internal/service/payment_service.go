package service

import (
	"context"
	"crypto/sha512"
	"fmt"

	"fwsr-hub/internal/catalog"
	"fwsr-hub/internal/config"
	"fwsr-hub/internal/domain"
	"fwsr-hub/internal/logger"
	"fwsr-hub/internal/util"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"go.uber.org/zap"
)

// CheckoutResult carries the payment redirect for the client.
type CheckoutResult struct {
	OrderID     string
	RedirectURL string
}

// PaymentNotification is the gateway webhook payload the service verifies.
type PaymentNotification struct {
	OrderID           string
	StatusCode        string
	GrossAmount       string
	SignatureKey      string
	TransactionStatus string
}

// PaymentService creates checkout sessions and settles gateway notifications.
type PaymentService interface {
	Checkout(ctx context.Context, userID string, planID string) (*CheckoutResult, error)
	HandleNotification(ctx context.Context, notification *PaymentNotification) error
}

type paymentServiceImpl struct {
	purchaseRepo domain.PurchaseRepository
	userRepo     domain.UserRepository
	snapClient   snap.Client
	serverKey    string
	frontendURL  string
}

// NewPaymentService creates a PaymentService backed by the Midtrans Snap API.
func NewPaymentService(purchaseRepo domain.PurchaseRepository, userRepo domain.UserRepository, cfg *config.Config) PaymentService {
	env := midtrans.Sandbox
	if cfg.Midtrans.Production {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(cfg.Midtrans.ServerKey, env)

	return &paymentServiceImpl{
		purchaseRepo: purchaseRepo,
		userRepo:     userRepo,
		snapClient:   client,
		serverKey:    cfg.Midtrans.ServerKey,
		frontendURL:  cfg.FrontendURL,
	}
}

// Checkout writes a pending purchase row, then creates a Snap transaction
// for it. The purchase ULID doubles as the gateway order id. A gateway
// failure keeps the row pending so the client may retry.
func (s *paymentServiceImpl) Checkout(ctx context.Context, userID string, planID string) (*CheckoutResult, error) {
	plan, ok := catalog.PlanByID(planID)
	if !ok {
		return nil, domain.NewInvalidPlanError(planID)
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load user for checkout", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("User %s not found", userID))
	}

	purchase := &domain.Purchase{
		ID:     util.NewULID(),
		UserID: userID,
		PlanID: plan.ID,
		Amount: plan.Price,
		Status: domain.PurchasePending,
	}
	if err := s.purchaseRepo.CreatePurchase(ctx, purchase); err != nil {
		return nil, domain.NewInternalError("failed to create purchase", err)
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  purchase.ID,
			GrossAmt: int64(plan.Price),
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		Callbacks: &snap.Callbacks{
			Finish: fmt.Sprintf("%s/?payment=success", s.frontendURL),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: user.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    plan.ID,
				Price: int64(plan.Price),
				Qty:   1,
				Name:  plan.Name,
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := s.snapClient.CreateTransaction(snapReq)
	if midErr != nil {
		logger.Get().Error("Snap transaction creation failed",
			zap.String("orderID", purchase.ID),
			zap.String("planID", plan.ID),
			zap.Error(midErr))
		return nil, domain.NewError(domain.CodeCheckoutFailed,
			"Payment failed to initialize. Please try again.", midErr)
	}

	logger.Get().Info("Checkout session created",
		zap.String("orderID", purchase.ID),
		zap.String("planID", plan.ID),
		zap.String("userID", userID))

	return &CheckoutResult{
		OrderID:     purchase.ID,
		RedirectURL: snapResp.RedirectURL,
	}, nil
}

// HandleNotification verifies the gateway signature and settles the
// purchase. Midtrans signature = SHA512(order_id + status_code +
// gross_amount + server_key).
func (s *paymentServiceImpl) HandleNotification(ctx context.Context, notification *PaymentNotification) error {
	appLogger := logger.Get()

	signatureInput := notification.OrderID + notification.StatusCode + notification.GrossAmount + s.serverKey
	expectedSignature := fmt.Sprintf("%x", sha512.Sum512([]byte(signatureInput)))
	if notification.SignatureKey != expectedSignature {
		appLogger.Warn("Webhook signature mismatch",
			zap.String("orderID", notification.OrderID))
		return domain.NewError(domain.CodeInvalidSignature, "Invalid notification signature", nil)
	}

	purchase, err := s.purchaseRepo.GetPurchaseByID(ctx, notification.OrderID)
	if err != nil {
		return domain.NewInternalError("failed to load purchase for notification", err)
	}
	if purchase == nil {
		return domain.NewNotFoundError(fmt.Sprintf("Purchase %s not found", notification.OrderID))
	}

	var newStatus domain.PurchaseStatus
	switch notification.TransactionStatus {
	case "capture", "settlement":
		newStatus = domain.PurchasePaid
	case "deny", "cancel", "expire":
		newStatus = domain.PurchaseFailed
	case "pending":
		return nil
	default:
		appLogger.Info("Ignoring unknown transaction status",
			zap.String("orderID", notification.OrderID),
			zap.String("status", notification.TransactionStatus))
		return nil
	}

	if purchase.Status == newStatus {
		return nil
	}

	if err := s.purchaseRepo.UpdatePurchaseStatus(ctx, purchase.ID, newStatus); err != nil {
		return domain.NewInternalError("failed to update purchase status", err)
	}

	appLogger.Info("Purchase settled",
		zap.String("orderID", purchase.ID),
		zap.String("from", string(purchase.Status)),
		zap.String("to", string(newStatus)))
	return nil
}
