package service

import (
	"context"
	"encoding/json"
	"testing"

	"fwsr-hub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func marshalFlowState(t *testing.T, state *domain.FlowState) string {
	t.Helper()
	data, err := json.Marshal(state)
	if err != nil {
		t.Fatalf("marshal flow state: %v", err)
	}
	return string(data)
}

func TestFlowService_GetState_FreshSession(t *testing.T) {
	mockCache := new(MockCache)
	svc := NewFlowService(mockCache)

	mockCache.On("Get", mock.Anything, mock.AnythingOfType("string")).Return("", domain.ErrCacheMiss)
	mockCache.On("Set", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("string"), flowStateTTL).Return(nil)

	state, err := svc.GetState(context.Background(), "sess-1")

	assert.NoError(t, err)
	assert.Equal(t, domain.ViewLanding, state.View)
	assert.Empty(t, state.PendingPlanID)
	mockCache.AssertExpectations(t)
}

func TestFlowService_GetState_CorruptRecordResets(t *testing.T) {
	mockCache := new(MockCache)
	svc := NewFlowService(mockCache)

	mockCache.On("Get", mock.Anything, mock.AnythingOfType("string")).Return("{not json", nil)
	mockCache.On("Set", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("string"), flowStateTTL).Return(nil)

	state, err := svc.GetState(context.Background(), "sess-1")

	assert.NoError(t, err)
	assert.Equal(t, domain.ViewLanding, state.View)
}

func TestFlowService_Navigate(t *testing.T) {
	mockCache := new(MockCache)
	svc := NewFlowService(mockCache)

	stored := marshalFlowState(t, &domain.FlowState{View: domain.ViewLanding})
	mockCache.On("Get", mock.Anything, mock.AnythingOfType("string")).Return(stored, nil)

	var written string
	mockCache.On("Set", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("string"), flowStateTTL).
		Run(func(args mock.Arguments) { written = args.String(2) }).
		Return(nil)

	state, err := svc.Navigate(context.Background(), "sess-1", domain.ViewStandards)

	assert.NoError(t, err)
	assert.Equal(t, domain.ViewStandards, state.View)

	var persisted domain.FlowState
	assert.NoError(t, json.Unmarshal([]byte(written), &persisted))
	assert.Equal(t, domain.ViewStandards, persisted.View)
}

func TestFlowService_SelectPlan_UnknownPlan(t *testing.T) {
	mockCache := new(MockCache)
	svc := NewFlowService(mockCache)

	_, _, err := svc.SelectPlan(context.Background(), "sess-1", "enterprise", true)

	assert.Error(t, err)
	domainErr, ok := err.(*domain.DomainError)
	assert.True(t, ok)
	assert.Equal(t, domain.CodeInvalidPlan, domainErr.Code)
	mockCache.AssertNotCalled(t, "Set")
}

func TestFlowService_SelectPlan_UnauthenticatedParksPlan(t *testing.T) {
	mockCache := new(MockCache)
	svc := NewFlowService(mockCache)

	mockCache.On("Get", mock.Anything, mock.AnythingOfType("string")).Return("", domain.ErrCacheMiss)
	mockCache.On("Set", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("string"), flowStateTTL).Return(nil)

	outcome, state, err := svc.SelectPlan(context.Background(), "sess-1", "survey", false)

	assert.NoError(t, err)
	assert.Equal(t, domain.OutcomeAuthRequired, outcome)
	assert.Equal(t, "survey", state.PendingPlanID)
	assert.Equal(t, domain.ViewLanding, state.View)
}

func TestFlowService_SelectPlan_AuthenticatedGoesToPayment(t *testing.T) {
	mockCache := new(MockCache)
	svc := NewFlowService(mockCache)

	mockCache.On("Get", mock.Anything, mock.AnythingOfType("string")).Return("", domain.ErrCacheMiss)
	mockCache.On("Set", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("string"), flowStateTTL).Return(nil)

	outcome, state, err := svc.SelectPlan(context.Background(), "sess-1", "chat", true)

	assert.NoError(t, err)
	assert.Equal(t, domain.OutcomeToPayment, outcome)
	assert.Equal(t, "chat", state.SelectedPlanID)
	assert.Equal(t, domain.ViewPayment, state.View)
}

func TestFlowService_ResumeAfterAuth(t *testing.T) {
	mockCache := new(MockCache)
	svc := NewFlowService(mockCache)

	stored := marshalFlowState(t, &domain.FlowState{View: domain.ViewStandards, PendingPlanID: "auditor"})
	mockCache.On("Get", mock.Anything, mock.AnythingOfType("string")).Return(stored, nil)
	mockCache.On("Set", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("string"), flowStateTTL).Return(nil)

	resumed, state, err := svc.ResumeAfterAuth(context.Background(), "sess-1")

	assert.NoError(t, err)
	assert.True(t, resumed)
	assert.Equal(t, "auditor", state.SelectedPlanID)
	assert.Equal(t, domain.ViewPayment, state.View)
}

func TestFlowService_CompletePayment(t *testing.T) {
	mockCache := new(MockCache)
	svc := NewFlowService(mockCache)

	stored := marshalFlowState(t, &domain.FlowState{View: domain.ViewPayment, SelectedPlanID: "survey"})
	mockCache.On("Get", mock.Anything, mock.AnythingOfType("string")).Return(stored, nil)
	mockCache.On("Set", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("string"), flowStateTTL).Return(nil)

	state, err := svc.CompletePayment(context.Background(), "sess-1")

	assert.NoError(t, err)
	assert.Equal(t, domain.ViewCalculating, state.View)
}
