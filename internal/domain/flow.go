package domain

import "fmt"

// View is one screen of the client flow. The server tracks the current view
// per browser session so plan selection and auth gating survive reloads.
type View string

const (
	ViewLanding     View = "landing"
	ViewHowItWorks  View = "how-it-works"
	ViewStandards   View = "standards"
	ViewAbout       View = "about"
	ViewNews        View = "news"
	ViewCalculating View = "calculating"
	ViewResult      View = "result"
	ViewPayment     View = "payment"
	ViewChat        View = "chat"
	ViewTerms       View = "terms"
	ViewPrivacy     View = "privacy"
)

var knownViews = map[View]bool{
	ViewLanding:     true,
	ViewHowItWorks:  true,
	ViewStandards:   true,
	ViewAbout:       true,
	ViewNews:        true,
	ViewCalculating: true,
	ViewResult:      true,
	ViewPayment:     true,
	ViewChat:        true,
	ViewTerms:       true,
	ViewPrivacy:     true,
}

// ParseView validates a raw view name against the closed enumeration.
func ParseView(raw string) (View, error) {
	v := View(raw)
	if !knownViews[v] {
		return "", NewError(CodeInvalidInput, fmt.Sprintf("Unknown view: %q", raw), nil)
	}
	return v, nil
}

// SelectPlanOutcome tells the caller what the flow did with a plan selection.
type SelectPlanOutcome string

const (
	// OutcomeAuthRequired means the plan id was parked and the client should
	// open the authentication dialog. The view does not change.
	OutcomeAuthRequired SelectPlanOutcome = "auth_required"
	// OutcomeToPayment means the plan was resolved and the flow moved to the
	// payment view.
	OutcomeToPayment SelectPlanOutcome = "to_payment"
)

// FlowState is the per-session navigation state. The zero value is a fresh
// session sitting on the landing view.
type FlowState struct {
	View           View   `json:"view"`
	PendingPlanID  string `json:"pending_plan_id,omitempty"`
	SelectedPlanID string `json:"selected_plan_id,omitempty"`
}

// NewFlowState returns the initial state.
func NewFlowState() *FlowState {
	return &FlowState{View: ViewLanding}
}

// normalize repairs a state loaded from storage: an empty or unknown view
// falls back to landing.
func (f *FlowState) normalize() {
	if !knownViews[f.View] {
		f.View = ViewLanding
	}
}

// Navigate switches to the target view unconditionally. Guards belong to
// callers.
func (f *FlowState) Navigate(target View) {
	f.normalize()
	f.View = target
}

// SelectPlan implements the auth-gated plan selection continuation. Without
// an authenticated identity the plan id is held in a single pending slot
// (last set wins) and the view is untouched. With one, the selection sticks
// and the flow moves to payment.
func (f *FlowState) SelectPlan(planID string, authenticated bool) SelectPlanOutcome {
	f.normalize()
	if !authenticated {
		f.PendingPlanID = planID
		return OutcomeAuthRequired
	}
	f.SelectedPlanID = planID
	f.PendingPlanID = ""
	f.View = ViewPayment
	return OutcomeToPayment
}

// ResumeAfterAuth resumes a deferred plan selection once authentication
// succeeded. Returns true if a pending plan was promoted to payment.
func (f *FlowState) ResumeAfterAuth() bool {
	f.normalize()
	if f.PendingPlanID == "" {
		return false
	}
	planID := f.PendingPlanID
	f.PendingPlanID = ""
	f.SelectedPlanID = planID
	f.View = ViewPayment
	return true
}

// CancelAuth discards a deferred plan selection. No transition occurs.
func (f *FlowState) CancelAuth() {
	f.PendingPlanID = ""
}

// CompletePayment routes the flow after a successful checkout return: the
// survey plan starts the assessment, everything else opens the workroom.
func (f *FlowState) CompletePayment() {
	f.normalize()
	if f.SelectedPlanID == "survey" {
		f.View = ViewCalculating
	} else {
		f.View = ViewChat
	}
}
