package service

import (
	"context"
	"encoding/json"
	"time"

	"fwsr-hub/internal/cache"
	"fwsr-hub/internal/catalog"
	"fwsr-hub/internal/domain"
	"fwsr-hub/internal/logger"
	"fwsr-hub/internal/util"

	"go.uber.org/zap"
)

// runTTL is how long an unfinished assessment run stays resumable.
const runTTL = 24 * time.Hour

// CurrentQuestion is the cursor position of an active run.
type CurrentQuestion struct {
	Pillar         domain.Pillar
	Question       domain.Question
	QuestionNumber int // 1-based within the pillar
	QuestionTotal  int
	PillarNumber   int // 1-based
	PillarTotal    int
	Progress       int // 0-100
}

// AnswerOutcome is the result of recording one answer. On completion the
// frozen results and summary are set.
type AnswerOutcome struct {
	Completed bool
	Next      *CurrentQuestion
	Results   domain.Results
	Summary   domain.Summary
}

// AssessmentService drives the linear 19-pillar questionnaire.
type AssessmentService interface {
	Start(ctx context.Context, userID string) (*CurrentQuestion, error)
	Current(ctx context.Context, userID string) (*CurrentQuestion, error)
	Answer(ctx context.Context, userID string, value domain.ComplianceValue) (*AnswerOutcome, error)
	AnswerFeedback(ctx context.Context, pillarID string, value domain.ComplianceValue) string
}

// answerFeedbackFallback is returned when feedback generation fails. The
// audit proceeds regardless.
const answerFeedbackFallback = "Noted. Ensure supporting documentation is available for the dossier review."

type assessmentServiceImpl struct {
	cache      domain.Cache
	resultRepo domain.AssessmentResultRepository
	textGen    domain.TextGenerator
}

// NewAssessmentService creates an AssessmentService. Runs live in the cache,
// completed results are written through the repository.
func NewAssessmentService(cacheClient domain.Cache, resultRepo domain.AssessmentResultRepository, textGen domain.TextGenerator) AssessmentService {
	return &assessmentServiceImpl{
		cache:      cacheClient,
		resultRepo: resultRepo,
		textGen:    textGen,
	}
}

func runKey(userID string) string {
	return cache.GenerateCacheKey("assessment", "run", userID)
}

// Start begins a fresh run, replacing any unfinished one.
func (s *assessmentServiceImpl) Start(ctx context.Context, userID string) (*CurrentQuestion, error) {
	run := domain.NewRun()
	if err := s.saveRun(ctx, userID, run); err != nil {
		return nil, err
	}
	return s.currentOf(run)
}

// Current returns the question the active run points at.
func (s *assessmentServiceImpl) Current(ctx context.Context, userID string) (*CurrentQuestion, error) {
	run, err := s.loadRun(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.currentOf(run)
}

// Answer records a value for the current question. Completion freezes the
// results, scores them, and writes the result row best-effort.
func (s *assessmentServiceImpl) Answer(ctx context.Context, userID string, value domain.ComplianceValue) (*AnswerOutcome, error) {
	run, err := s.loadRun(ctx, userID)
	if err != nil {
		return nil, err
	}

	completed, err := run.Answer(catalog.Pillars(), value)
	if err != nil {
		return nil, err
	}

	if err := s.saveRun(ctx, userID, run); err != nil {
		return nil, err
	}

	if !completed {
		next, err := s.currentOf(run)
		if err != nil {
			return nil, err
		}
		return &AnswerOutcome{Next: next}, nil
	}

	summary := domain.Summarize(run.Answers)
	s.persistResult(ctx, userID, run.Answers, summary)

	return &AnswerOutcome{
		Completed: true,
		Results:   run.Answers,
		Summary:   summary,
	}, nil
}

// persistResult writes the completed run. Failures are logged, never
// surfaced; the in-memory summary already reached the client.
func (s *assessmentServiceImpl) persistResult(ctx context.Context, userID string, results domain.Results, summary domain.Summary) {
	result := &domain.AssessmentResult{
		ID:      util.NewULID(),
		UserID:  userID,
		Answers: results,
		Score:   summary.Score,
	}
	if err := s.resultRepo.CreateResult(ctx, result); err != nil {
		logger.Get().Error("Failed to persist assessment result",
			zap.String("userID", userID),
			zap.Error(err))
	}
}

// AnswerFeedback asks for a one-line audit remark on a recorded answer.
// Any failure substitutes the fixed fallback line.
func (s *assessmentServiceImpl) AnswerFeedback(ctx context.Context, pillarID string, value domain.ComplianceValue) string {
	pillar, ok := catalog.PillarByID(pillarID)
	if !ok {
		return answerFeedbackFallback
	}

	text, err := s.textGen.Generate(ctx, domain.TaskAnswerFeedback, domain.GenerationPayload{
		PillarID:    pillar.ID,
		PillarTitle: pillar.Title,
		Answer:      value,
	})
	if err != nil {
		logger.Get().Warn("Answer feedback generation failed, using fallback",
			zap.String("pillarID", pillarID), zap.Error(err))
		return answerFeedbackFallback
	}
	return text
}

func (s *assessmentServiceImpl) currentOf(run *domain.Run) (*CurrentQuestion, error) {
	pillars := catalog.Pillars()
	pillar, question, err := run.Current(pillars)
	if err != nil {
		return nil, err
	}
	return &CurrentQuestion{
		Pillar:         pillar,
		Question:       question,
		QuestionNumber: run.QuestionIndex + 1,
		QuestionTotal:  len(pillar.Questions),
		PillarNumber:   run.PillarIndex + 1,
		PillarTotal:    len(pillars),
		Progress:       run.Progress(len(pillars)),
	}, nil
}

func (s *assessmentServiceImpl) loadRun(ctx context.Context, userID string) (*domain.Run, error) {
	raw, err := s.cache.Get(ctx, runKey(userID))
	if err != nil {
		if err == domain.ErrCacheMiss {
			return nil, domain.NewError(domain.CodeNoActiveRun, "No active assessment run", nil)
		}
		return nil, domain.NewInternalError("failed to read assessment run", err)
	}

	var run domain.Run
	if err := json.Unmarshal([]byte(raw), &run); err != nil {
		return nil, domain.NewInternalError("corrupt assessment run record", err)
	}
	return &run, nil
}

func (s *assessmentServiceImpl) saveRun(ctx context.Context, userID string, run *domain.Run) error {
	data, err := json.Marshal(run)
	if err != nil {
		return domain.NewInternalError("failed to serialize assessment run", err)
	}
	if err := s.cache.Set(ctx, runKey(userID), string(data), runTTL); err != nil {
		return domain.NewInternalError("failed to persist assessment run", err)
	}
	return nil
}
