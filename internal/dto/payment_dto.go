package dto

// PlanResponse is one purchasable package.
type PlanResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    int      `json:"price"` // EUR, whole units
	Features []string `json:"features"`
}

// CheckoutRequest starts a checkout for a plan.
type CheckoutRequest struct {
	PlanID string `json:"plan_id" validate:"required"`
}

// CheckoutResponse carries the payment redirect for the client.
type CheckoutResponse struct {
	OrderID     string `json:"order_id"`
	RedirectURL string `json:"redirect_url"`
}

// PaymentNotificationRequest is the gateway's webhook payload. Only the
// fields used for verification and settlement are mapped.
type PaymentNotificationRequest struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
}
