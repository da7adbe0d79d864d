package handler

import (
	"fwsr-hub/internal/domain"
	"fwsr-hub/internal/dto"
	"fwsr-hub/internal/middleware"
	"fwsr-hub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// FlowHandler exposes the per-session navigation state machine.
type FlowHandler struct {
	flowService service.FlowService
}

func NewFlowHandler(flowService service.FlowService) *FlowHandler {
	return &FlowHandler{flowService: flowService}
}

func flowStateToResponse(state *domain.FlowState, authenticated bool) dto.FlowStateResponse {
	return dto.FlowStateResponse{
		View:           string(state.View),
		PendingPlanID:  state.PendingPlanID,
		SelectedPlanID: state.SelectedPlanID,
		Authenticated:  authenticated,
	}
}

func isAuthenticated(c *fiber.Ctx) bool {
	userID, ok := c.Locals(middleware.UserIDKey).(string)
	return ok && userID != ""
}

// GetFlow returns the session's current flow state.
func (h *FlowHandler) GetFlow(c *fiber.Ctx) error {
	sessionID := ensureSessionID(c)
	state, err := h.flowService.GetState(c.Context(), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(flowStateToResponse(state, isAuthenticated(c)))
}

// Navigate switches the session to the requested view.
func (h *FlowHandler) Navigate(c *fiber.Ctx) error {
	var req dto.NavigateRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	view, err := domain.ParseView(req.View)
	if err != nil {
		return err
	}

	sessionID := ensureSessionID(c)
	state, err := h.flowService.Navigate(c.Context(), sessionID, view)
	if err != nil {
		return err
	}
	return c.JSON(flowStateToResponse(state, isAuthenticated(c)))
}

// SelectPlan begins plan selection. Unauthenticated sessions park the plan
// and get told to authenticate; authenticated ones move to payment.
func (h *FlowHandler) SelectPlan(c *fiber.Ctx) error {
	var req dto.SelectPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if req.PlanID == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("plan_id")}
	}

	sessionID := ensureSessionID(c)
	outcome, state, err := h.flowService.SelectPlan(c.Context(), sessionID, req.PlanID, isAuthenticated(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.SelectPlanResponse{
		Outcome: string(outcome),
		View:    string(state.View),
	})
}

// CancelPlan discards a parked plan selection after the auth dialog is
// dismissed.
func (h *FlowHandler) CancelPlan(c *fiber.Ctx) error {
	sessionID := ensureSessionID(c)
	state, err := h.flowService.CancelAuth(c.Context(), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(flowStateToResponse(state, isAuthenticated(c)))
}

// CompletePayment routes the session after a successful checkout return.
func (h *FlowHandler) CompletePayment(c *fiber.Ctx) error {
	sessionID := ensureSessionID(c)
	state, err := h.flowService.CompletePayment(c.Context(), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(flowStateToResponse(state, isAuthenticated(c)))
}
