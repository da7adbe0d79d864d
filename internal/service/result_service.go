package service

import (
	"context"

	"fwsr-hub/internal/domain"
	"fwsr-hub/internal/logger"

	"go.uber.org/zap"
)

// executiveSummaryFallback replaces a failed verdict generation. The result
// page renders it verbatim.
const executiveSummaryFallback = "A technical error occurred while synthesizing the audit verdict. Please consult a manual auditor."

// brandPlaceholder stands in for the applicant's brand name until intake
// collects one.
const brandPlaceholder = "CLIENT_BRAND"

// ResultView is the assembled result-page payload.
type ResultView struct {
	Summary          domain.Summary
	PillarGrid       map[string]domain.ComplianceValue
	Results          domain.Results
	ExecutiveSummary string
}

// ResultService presents the most recent completed assessment.
type ResultService interface {
	GetResult(ctx context.Context, userID string) (*ResultView, error)
}

type resultServiceImpl struct {
	resultRepo domain.AssessmentResultRepository
	textGen    domain.TextGenerator
}

// NewResultService creates a ResultService.
func NewResultService(resultRepo domain.AssessmentResultRepository, textGen domain.TextGenerator) ResultService {
	return &resultServiceImpl{resultRepo: resultRepo, textGen: textGen}
}

// GetResult loads the identity's latest result, recomputes the summary from
// the stored answers, and requests the executive summary. Generation failure
// substitutes the fixed fallback, never an error status.
func (s *resultServiceImpl) GetResult(ctx context.Context, userID string) (*ResultView, error) {
	result, err := s.resultRepo.GetLatestResultByUserID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load assessment result", err)
	}
	if result == nil {
		return nil, domain.NewError(domain.CodeResultNotFound, "No completed assessment found", nil)
	}

	summary := domain.Summarize(result.Answers)

	text, err := s.textGen.Generate(ctx, domain.TaskExecutiveSummary, domain.GenerationPayload{
		Results:   result.Answers,
		BrandName: brandPlaceholder,
	})
	if err != nil {
		logger.Get().Warn("Executive summary generation failed, using fallback",
			zap.String("userID", userID), zap.Error(err))
		text = executiveSummaryFallback
	}

	return &ResultView{
		Summary:          summary,
		PillarGrid:       result.Answers.PillarValues(),
		Results:          result.Answers,
		ExecutiveSummary: text,
	}, nil
}
