package handler

import (
	"context"
	"log"
	"os"
	"testing"

	"fwsr-hub/internal/config"
	"fwsr-hub/internal/domain"
	"fwsr-hub/internal/logger"
	"fwsr-hub/internal/middleware"
	"fwsr-hub/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Level: "debug", Env: "test"}); err != nil {
		log.Fatalf("Failed to initialize logger for handler tests: %v", err)
	}
	exitCode := m.Run()
	logger.Sync()
	os.Exit(exitCode)
}

// newTestApp builds a fiber app with the central error handler, matching the
// production wiring.
func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
}

// asUser simulates an authenticated request by planting the user id the way
// the auth middleware does.
func asUser(userID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(middleware.UserIDKey, userID)
		return c.Next()
	}
}

// --- MockFlowService ---
type MockFlowService struct {
	mock.Mock
}

func (m *MockFlowService) GetState(ctx context.Context, sessionID string) (*domain.FlowState, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlowState), args.Error(1)
}

func (m *MockFlowService) Navigate(ctx context.Context, sessionID string, view domain.View) (*domain.FlowState, error) {
	args := m.Called(ctx, sessionID, view)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlowState), args.Error(1)
}

func (m *MockFlowService) SelectPlan(ctx context.Context, sessionID string, planID string, authenticated bool) (domain.SelectPlanOutcome, *domain.FlowState, error) {
	args := m.Called(ctx, sessionID, planID, authenticated)
	if args.Get(1) == nil {
		return domain.SelectPlanOutcome(args.String(0)), nil, args.Error(2)
	}
	return domain.SelectPlanOutcome(args.String(0)), args.Get(1).(*domain.FlowState), args.Error(2)
}

func (m *MockFlowService) CancelAuth(ctx context.Context, sessionID string) (*domain.FlowState, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlowState), args.Error(1)
}

func (m *MockFlowService) ResumeAfterAuth(ctx context.Context, sessionID string) (bool, *domain.FlowState, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(1) == nil {
		return args.Bool(0), nil, args.Error(2)
	}
	return args.Bool(0), args.Get(1).(*domain.FlowState), args.Error(2)
}

func (m *MockFlowService) CompletePayment(ctx context.Context, sessionID string) (*domain.FlowState, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlowState), args.Error(1)
}

// --- MockExplainerService ---
type MockExplainerService struct {
	mock.Mock
}

func (m *MockExplainerService) Explain(ctx context.Context, pillarID string) (string, error) {
	args := m.Called(ctx, pillarID)
	return args.String(0), args.Error(1)
}

// --- MockChatService ---
type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) GetSession(ctx context.Context, userID string, planID string) (*domain.ChatSession, error) {
	args := m.Called(ctx, userID, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatSession), args.Error(1)
}

func (m *MockChatService) Send(ctx context.Context, userID string, content string) (*domain.ChatSession, error) {
	args := m.Called(ctx, userID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatSession), args.Error(1)
}

// --- MockAssessmentService ---
type MockAssessmentService struct {
	mock.Mock
}

func (m *MockAssessmentService) Start(ctx context.Context, userID string) (*service.CurrentQuestion, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CurrentQuestion), args.Error(1)
}

func (m *MockAssessmentService) Current(ctx context.Context, userID string) (*service.CurrentQuestion, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CurrentQuestion), args.Error(1)
}

func (m *MockAssessmentService) Answer(ctx context.Context, userID string, value domain.ComplianceValue) (*service.AnswerOutcome, error) {
	args := m.Called(ctx, userID, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AnswerOutcome), args.Error(1)
}

func (m *MockAssessmentService) AnswerFeedback(ctx context.Context, pillarID string, value domain.ComplianceValue) string {
	args := m.Called(ctx, pillarID, value)
	return args.String(0)
}

// --- MockResultService ---
type MockResultService struct {
	mock.Mock
}

func (m *MockResultService) GetResult(ctx context.Context, userID string) (*service.ResultView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ResultView), args.Error(1)
}
