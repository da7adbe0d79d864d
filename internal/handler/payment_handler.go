package handler

import (
	"fwsr-hub/internal/catalog"
	"fwsr-hub/internal/domain"
	"fwsr-hub/internal/dto"
	"fwsr-hub/internal/logger"
	"fwsr-hub/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PaymentHandler exposes plan listing, checkout, and the gateway webhook.
type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// GetPlans lists the purchasable packages.
func (h *PaymentHandler) GetPlans(c *fiber.Ctx) error {
	plans := catalog.Plans()
	out := make([]dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, dto.PlanResponse{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Features: p.Features,
		})
	}
	return c.JSON(out)
}

// Checkout creates a pending purchase and returns the gateway redirect.
func (h *PaymentHandler) Checkout(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if req.PlanID == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("plan_id")}
	}

	result, err := h.paymentService.Checkout(c.Context(), userID, req.PlanID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CheckoutResponse{
		OrderID:     result.OrderID,
		RedirectURL: result.RedirectURL,
	})
}

// Notification is the public gateway webhook. Signature failures map to 401
// through the error middleware.
func (h *PaymentHandler) Notification(c *fiber.Ctx) error {
	var req dto.PaymentNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid notification body")
	}

	logger.Get().Info("Payment notification received",
		zap.String("orderID", req.OrderID),
		zap.String("status", req.TransactionStatus))

	err := h.paymentService.HandleNotification(c.Context(), &service.PaymentNotification{
		OrderID:           req.OrderID,
		StatusCode:        req.StatusCode,
		GrossAmount:       req.GrossAmount,
		SignatureKey:      req.SignatureKey,
		TransactionStatus: req.TransactionStatus,
	})
	if err != nil {
		return err
	}

	return c.JSON(dto.MessageResponse{Message: "ok"})
}
