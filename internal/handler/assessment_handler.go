package handler

import (
	"fwsr-hub/internal/domain"
	"fwsr-hub/internal/dto"
	"fwsr-hub/internal/logger"
	"fwsr-hub/internal/middleware"
	"fwsr-hub/internal/service"
	"fwsr-hub/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AssessmentHandler drives the 19-pillar questionnaire endpoints.
type AssessmentHandler struct {
	assessmentService service.AssessmentService
	resultService     service.ResultService
	flowService       service.FlowService
	validator         *validation.Validator
}

func NewAssessmentHandler(assessmentService service.AssessmentService, resultService service.ResultService, flowService service.FlowService) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentService: assessmentService,
		resultService:     resultService,
		flowService:       flowService,
		validator:         validation.NewValidator(),
	}
}

func requireUserID(c *fiber.Ctx) (string, error) {
	userID, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return "", domain.NewUnauthorizedError("User ID not found in context")
	}
	return userID, nil
}

func currentQuestionToResponse(q *service.CurrentQuestion) *dto.CurrentQuestionResponse {
	options := make([]dto.QuestionOptionResponse, 0, len(q.Question.Options))
	for _, opt := range q.Question.Options {
		options = append(options, dto.QuestionOptionResponse{
			Value: string(opt.Value),
			Label: opt.Label,
			Risk:  string(opt.Risk),
		})
	}
	return &dto.CurrentQuestionResponse{
		PillarID:       q.Pillar.ID,
		PillarTitle:    q.Pillar.Title,
		QuestionID:     q.Question.ID,
		QuestionText:   q.Question.Text,
		Options:        options,
		QuestionNumber: q.QuestionNumber,
		QuestionTotal:  q.QuestionTotal,
		PillarNumber:   q.PillarNumber,
		PillarTotal:    q.PillarTotal,
		Progress:       q.Progress,
	}
}

func resultsToResponse(results domain.Results) []dto.RecordedAnswerResponse {
	out := make([]dto.RecordedAnswerResponse, 0, len(results))
	for _, a := range results {
		out = append(out, dto.RecordedAnswerResponse{
			QuestionID: a.QuestionID,
			PillarID:   a.PillarID,
			Value:      string(a.Value),
		})
	}
	return out
}

func summaryToResponse(s domain.Summary) dto.SummaryResponse {
	return dto.SummaryResponse{
		Total:          s.Total,
		Compliant:      s.Compliant,
		Unsure:         s.Unsure,
		Score:          s.Score,
		Classification: string(s.Classification),
	}
}

// Start begins a fresh assessment run.
func (h *AssessmentHandler) Start(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	current, err := h.assessmentService.Start(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(currentQuestionToResponse(current))
}

// Current returns the question the active run points at.
func (h *AssessmentHandler) Current(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	current, err := h.assessmentService.Current(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(currentQuestionToResponse(current))
}

// Answer records an answer for the current question. The final answer also
// moves the session flow to the result view.
func (h *AssessmentHandler) Answer(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req dto.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	value, err := domain.ParseComplianceValue(req.Value)
	if err != nil {
		return err
	}

	outcome, err := h.assessmentService.Answer(c.Context(), userID, value)
	if err != nil {
		return err
	}

	if !outcome.Completed {
		return c.JSON(dto.AnswerResponse{Next: currentQuestionToResponse(outcome.Next)})
	}

	sessionID := ensureSessionID(c)
	if _, err := h.flowService.Navigate(c.Context(), sessionID, domain.ViewResult); err != nil {
		logger.Get().Warn("Failed to advance flow to result view",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	return c.JSON(dto.AnswerResponse{
		Completed: true,
		Completion: &dto.CompletionResponse{
			Results: resultsToResponse(outcome.Results),
			Summary: summaryToResponse(outcome.Summary),
		},
	})
}

// AnswerFeedback returns a one-line audit remark for a recorded answer.
// Always 200; generation failures fall back to a fixed line.
func (h *AssessmentHandler) AnswerFeedback(c *fiber.Ctx) error {
	if _, err := requireUserID(c); err != nil {
		return err
	}

	var req dto.AnswerFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidatePillarID(req.PillarID); len(errs) > 0 {
		return errs
	}
	value, err := domain.ParseComplianceValue(req.Value)
	if err != nil {
		return err
	}

	feedback := h.assessmentService.AnswerFeedback(c.Context(), req.PillarID, value)
	return c.JSON(dto.AnswerFeedbackResponse{Feedback: feedback})
}

// Result presents the identity's most recent completed assessment.
func (h *AssessmentHandler) Result(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	view, err := h.resultService.GetResult(c.Context(), userID)
	if err != nil {
		return err
	}

	grid := make(map[string]string, len(view.PillarGrid))
	for pillarID, value := range view.PillarGrid {
		grid[pillarID] = string(value)
	}

	return c.JSON(dto.ResultResponse{
		Summary:          summaryToResponse(view.Summary),
		PillarGrid:       grid,
		Results:          resultsToResponse(view.Results),
		ExecutiveSummary: view.ExecutiveSummary,
	})
}
