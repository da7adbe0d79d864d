package dto

// FlowStateResponse mirrors the navigation state held for a browser session.
type FlowStateResponse struct {
	View           string `json:"view"`
	PendingPlanID  string `json:"pending_plan_id,omitempty"`
	SelectedPlanID string `json:"selected_plan_id,omitempty"`
	Authenticated  bool   `json:"authenticated"`
}

// NavigateRequest changes the session's current view.
type NavigateRequest struct {
	View string `json:"view" validate:"required"`
}

// SelectPlanRequest begins plan selection for the session.
type SelectPlanRequest struct {
	PlanID string `json:"plan_id" validate:"required"`
}

// SelectPlanResponse reports the outcome of a plan selection.
type SelectPlanResponse struct {
	Outcome string `json:"outcome"` // "auth_required" or "to_payment"
	View    string `json:"view"`
}
