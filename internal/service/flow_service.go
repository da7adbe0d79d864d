package service

import (
	"context"
	"encoding/json"
	"time"

	"fwsr-hub/internal/cache"
	"fwsr-hub/internal/catalog"
	"fwsr-hub/internal/domain"
	"fwsr-hub/internal/logger"

	"go.uber.org/zap"
)

// flowStateTTL is the sliding lifetime of a browser session's flow record.
const flowStateTTL = 30 * 24 * time.Hour

// FlowService tracks the per-session navigation state machine.
type FlowService interface {
	GetState(ctx context.Context, sessionID string) (*domain.FlowState, error)
	Navigate(ctx context.Context, sessionID string, view domain.View) (*domain.FlowState, error)
	SelectPlan(ctx context.Context, sessionID string, planID string, authenticated bool) (domain.SelectPlanOutcome, *domain.FlowState, error)
	CancelAuth(ctx context.Context, sessionID string) (*domain.FlowState, error)
	ResumeAfterAuth(ctx context.Context, sessionID string) (bool, *domain.FlowState, error)
	CompletePayment(ctx context.Context, sessionID string) (*domain.FlowState, error)
}

type flowServiceImpl struct {
	cache domain.Cache
}

// NewFlowService creates a FlowService persisting state through the cache port.
func NewFlowService(cacheClient domain.Cache) FlowService {
	return &flowServiceImpl{cache: cacheClient}
}

func flowStateKey(sessionID string) string {
	return cache.GenerateCacheKey("flow", "state", sessionID)
}

// load reads the session's state. A missing or corrupt record resets to the
// zero state at landing.
func (s *flowServiceImpl) load(ctx context.Context, sessionID string) *domain.FlowState {
	raw, err := s.cache.Get(ctx, flowStateKey(sessionID))
	if err != nil {
		if err != domain.ErrCacheMiss {
			logger.Get().Warn("Failed to read flow state, resetting",
				zap.String("sessionID", sessionID), zap.Error(err))
		}
		return domain.NewFlowState()
	}

	var state domain.FlowState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		logger.Get().Warn("Corrupt flow state record, resetting",
			zap.String("sessionID", sessionID), zap.Error(err))
		return domain.NewFlowState()
	}
	return &state
}

func (s *flowServiceImpl) save(ctx context.Context, sessionID string, state *domain.FlowState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return domain.NewInternalError("failed to serialize flow state", err)
	}
	if err := s.cache.Set(ctx, flowStateKey(sessionID), string(data), flowStateTTL); err != nil {
		return domain.NewInternalError("failed to persist flow state", err)
	}
	return nil
}

func (s *flowServiceImpl) GetState(ctx context.Context, sessionID string) (*domain.FlowState, error) {
	state := s.load(ctx, sessionID)
	// Refresh the sliding TTL on read.
	if err := s.save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *flowServiceImpl) Navigate(ctx context.Context, sessionID string, view domain.View) (*domain.FlowState, error) {
	state := s.load(ctx, sessionID)
	state.Navigate(view)
	if err := s.save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *flowServiceImpl) SelectPlan(ctx context.Context, sessionID string, planID string, authenticated bool) (domain.SelectPlanOutcome, *domain.FlowState, error) {
	if _, ok := catalog.PlanByID(planID); !ok {
		return "", nil, domain.NewInvalidPlanError(planID)
	}

	state := s.load(ctx, sessionID)
	outcome := state.SelectPlan(planID, authenticated)
	if err := s.save(ctx, sessionID, state); err != nil {
		return "", nil, err
	}
	return outcome, state, nil
}

func (s *flowServiceImpl) CancelAuth(ctx context.Context, sessionID string) (*domain.FlowState, error) {
	state := s.load(ctx, sessionID)
	state.CancelAuth()
	if err := s.save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *flowServiceImpl) ResumeAfterAuth(ctx context.Context, sessionID string) (bool, *domain.FlowState, error) {
	state := s.load(ctx, sessionID)
	resumed := state.ResumeAfterAuth()
	if err := s.save(ctx, sessionID, state); err != nil {
		return false, nil, err
	}
	return resumed, state, nil
}

func (s *flowServiceImpl) CompletePayment(ctx context.Context, sessionID string) (*domain.FlowState, error) {
	state := s.load(ctx, sessionID)
	state.CompletePayment()
	if err := s.save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return state, nil
}
