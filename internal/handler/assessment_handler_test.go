package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fwsr-hub/internal/catalog"
	"fwsr-hub/internal/domain"
	"fwsr-hub/internal/dto"
	"fwsr-hub/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupAssessmentApp(mockAssessment *MockAssessmentService, mockResult *MockResultService, mockFlow *MockFlowService, authenticated bool) *fiber.App {
	app := newTestApp()
	h := NewAssessmentHandler(mockAssessment, mockResult, mockFlow)

	group := app.Group("/api/assessment")
	if authenticated {
		group.Use(asUser("user-1"))
	}
	group.Post("/start", h.Start)
	group.Get("/current", h.Current)
	group.Post("/answer", h.Answer)
	group.Post("/answer/feedback", h.AnswerFeedback)
	group.Get("/result", h.Result)
	return app
}

func firstQuestion() *service.CurrentQuestion {
	pillars := catalog.Pillars()
	return &service.CurrentQuestion{
		Pillar:         pillars[0],
		Question:       pillars[0].Questions[0],
		QuestionNumber: 1,
		QuestionTotal:  len(pillars[0].Questions),
		PillarNumber:   1,
		PillarTotal:    len(pillars),
		Progress:       0,
	}
}

func TestAssessmentHandler_RequiresAuth(t *testing.T) {
	app := setupAssessmentApp(new(MockAssessmentService), new(MockResultService), new(MockFlowService), false)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/assessment/start", nil))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAssessmentHandler_Start(t *testing.T) {
	mockAssessment := new(MockAssessmentService)
	app := setupAssessmentApp(mockAssessment, new(MockResultService), new(MockFlowService), true)

	mockAssessment.On("Start", mock.Anything, "user-1").Return(firstQuestion(), nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/assessment/start", nil))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body dto.CurrentQuestionResponse
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "01", body.PillarID)
	assert.Equal(t, 19, body.PillarTotal)
	assert.NotEmpty(t, body.Options)
}

func TestAssessmentHandler_Current_NoActiveRun(t *testing.T) {
	mockAssessment := new(MockAssessmentService)
	app := setupAssessmentApp(mockAssessment, new(MockResultService), new(MockFlowService), true)

	mockAssessment.On("Current", mock.Anything, "user-1").
		Return(nil, domain.NewError(domain.CodeNoActiveRun, "No active assessment run", nil))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/assessment/current", nil))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestAssessmentHandler_Answer_Advances(t *testing.T) {
	mockAssessment := new(MockAssessmentService)
	mockFlow := new(MockFlowService)
	app := setupAssessmentApp(mockAssessment, new(MockResultService), mockFlow, true)

	mockAssessment.On("Answer", mock.Anything, "user-1", domain.ValueYes).
		Return(&service.AnswerOutcome{Next: firstQuestion()}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/assessment/answer", strings.NewReader(`{"value":"yes"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.AnswerResponse
	json.NewDecoder(resp.Body).Decode(&body)
	assert.False(t, body.Completed)
	assert.NotNil(t, body.Next)
	mockFlow.AssertNotCalled(t, "Navigate")
}

func TestAssessmentHandler_Answer_LegacyUnsureValue(t *testing.T) {
	mockAssessment := new(MockAssessmentService)
	app := setupAssessmentApp(mockAssessment, new(MockResultService), new(MockFlowService), true)

	mockAssessment.On("Answer", mock.Anything, "user-1", domain.ValuePartial).
		Return(&service.AnswerOutcome{Next: firstQuestion()}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/assessment/answer", strings.NewReader(`{"value":"unsure"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockAssessment.AssertExpectations(t)
}

func TestAssessmentHandler_Answer_Completion(t *testing.T) {
	mockAssessment := new(MockAssessmentService)
	mockFlow := new(MockFlowService)
	app := setupAssessmentApp(mockAssessment, new(MockResultService), mockFlow, true)

	results := domain.Results{{QuestionID: "q1_1", PillarID: "01", Value: domain.ValueYes}}
	mockAssessment.On("Answer", mock.Anything, "user-1", domain.ValueYes).
		Return(&service.AnswerOutcome{
			Completed: true,
			Results:   results,
			Summary:   domain.Summarize(results),
		}, nil)
	mockFlow.On("Navigate", mock.Anything, mock.AnythingOfType("string"), domain.ViewResult).
		Return(&domain.FlowState{View: domain.ViewResult}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/assessment/answer", strings.NewReader(`{"value":"yes"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.AnswerResponse
	json.NewDecoder(resp.Body).Decode(&body)
	assert.True(t, body.Completed)
	assert.NotNil(t, body.Completion)
	assert.Equal(t, 100, body.Completion.Summary.Score)
	mockFlow.AssertExpectations(t)
}

func TestAssessmentHandler_Answer_InvalidValue(t *testing.T) {
	mockAssessment := new(MockAssessmentService)
	app := setupAssessmentApp(mockAssessment, new(MockResultService), new(MockFlowService), true)

	req := httptest.NewRequest(http.MethodPost, "/api/assessment/answer", strings.NewReader(`{"value":"maybe"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	mockAssessment.AssertNotCalled(t, "Answer")
}

func TestAssessmentHandler_AnswerFeedback(t *testing.T) {
	mockAssessment := new(MockAssessmentService)
	app := setupAssessmentApp(mockAssessment, new(MockResultService), new(MockFlowService), true)

	mockAssessment.On("AnswerFeedback", mock.Anything, "02", domain.ValueNo).
		Return("Wage gaps this size usually block certification.")

	req := httptest.NewRequest(http.MethodPost, "/api/assessment/answer/feedback",
		strings.NewReader(`{"pillar_id":"02","value":"no"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.AnswerFeedbackResponse
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "Wage gaps this size usually block certification.", body.Feedback)
}

func TestAssessmentHandler_Result(t *testing.T) {
	mockResult := new(MockResultService)
	app := setupAssessmentApp(new(MockAssessmentService), mockResult, new(MockFlowService), true)

	results := domain.Results{
		{QuestionID: "q1_1", PillarID: "01", Value: domain.ValueYes},
		{QuestionID: "q2_1", PillarID: "02", Value: domain.ValueNo},
	}
	mockResult.On("GetResult", mock.Anything, "user-1").Return(&service.ResultView{
		Summary:          domain.Summarize(results),
		PillarGrid:       results.PillarValues(),
		Results:          results,
		ExecutiveSummary: "The applicant is halfway to eligibility.",
	}, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/assessment/result", nil))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.ResultResponse
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, 50, body.Summary.Score)
	assert.Equal(t, "yes", body.PillarGrid["01"])
	assert.Equal(t, "no", body.PillarGrid["02"])
	assert.Equal(t, "The applicant is halfway to eligibility.", body.ExecutiveSummary)
}

func TestAssessmentHandler_Result_NoneCompleted(t *testing.T) {
	mockResult := new(MockResultService)
	app := setupAssessmentApp(new(MockAssessmentService), mockResult, new(MockFlowService), true)

	mockResult.On("GetResult", mock.Anything, "user-1").
		Return(nil, domain.NewError(domain.CodeResultNotFound, "No completed assessment found", nil))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/assessment/result", nil))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
