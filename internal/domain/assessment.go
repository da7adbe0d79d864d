package domain

import (
	"context"
	"fmt"
	"math"
	"time"
)

// ComplianceValue is the recorded answer state for a question.
type ComplianceValue string

const (
	ValueYes     ComplianceValue = "yes"
	ValueNo      ComplianceValue = "no"
	ValuePartial ComplianceValue = "partial"
)

// ParseComplianceValue normalizes a raw answer value. The legacy clients sent
// "unsure" for the middle state; it maps to partial.
func ParseComplianceValue(raw string) (ComplianceValue, error) {
	switch raw {
	case "yes":
		return ValueYes, nil
	case "no":
		return ValueNo, nil
	case "partial", "unsure":
		return ValuePartial, nil
	}
	return "", NewError(CodeInvalidAnswer, fmt.Sprintf("Invalid compliance value: %q", raw), nil)
}

// RecordedAnswer is one entry of a quiz run's results.
type RecordedAnswer struct {
	QuestionID string          `json:"question_id"`
	PillarID   string          `json:"pillar_id"`
	Value      ComplianceValue `json:"value"`
}

// Results is the per-question answer record produced by one assessment run,
// in traversal order. Keys (question ids) are unique.
type Results []RecordedAnswer

// Value returns the recorded value for a question id, if present.
func (r Results) Value(questionID string) (ComplianceValue, bool) {
	for _, a := range r {
		if a.QuestionID == questionID {
			return a.Value, true
		}
	}
	return "", false
}

// PillarValues collapses results to one value per pillar: the worst recorded
// value wins (no < partial < yes), matching the result grid coloring.
func (r Results) PillarValues() map[string]ComplianceValue {
	rank := map[ComplianceValue]int{ValueNo: 0, ValuePartial: 1, ValueYes: 2}
	out := make(map[string]ComplianceValue)
	for _, a := range r {
		cur, ok := out[a.PillarID]
		if !ok || rank[a.Value] < rank[cur] {
			out[a.PillarID] = a.Value
		}
	}
	return out
}

// Classification is the overall audit outcome.
type Classification string

const (
	ClassificationAtRisk  Classification = "at_risk"
	ClassificationPartial Classification = "partial_compliance"
)

// riskThreshold is the score below which eligibility is classified at risk.
const riskThreshold = 70

// Summary is the scored view of a completed results record.
type Summary struct {
	Total          int            `json:"total"`
	Compliant      int            `json:"compliant"` // exact "yes" count
	Unsure         int            `json:"unsure"`    // partial/unsure count
	Score          int            `json:"score"`     // weighted percentage
	Classification Classification `json:"classification"`
}

// Summarize computes the canonical weighted score: yes = 1 point,
// partial = 0.5, no = 0; score = round(100 * points / answered). The strict
// yes-only count is reported separately as Compliant.
func Summarize(results Results) Summary {
	s := Summary{Total: len(results)}
	var points float64
	for _, a := range results {
		switch a.Value {
		case ValueYes:
			s.Compliant++
			points += 1
		case ValuePartial:
			s.Unsure++
			points += 0.5
		}
	}
	if s.Total > 0 {
		s.Score = int(math.Round(100 * points / float64(s.Total)))
	}
	if s.Score < riskThreshold {
		s.Classification = ClassificationAtRisk
	} else {
		s.Classification = ClassificationPartial
	}
	return s
}

// RunStatus tracks whether an assessment run is still accepting answers.
type RunStatus string

const (
	RunRunning   RunStatus = "running"
	RunCompleted RunStatus = "completed"
)

// Run is the state of one linear assessment traversal. Two cursors walk the
// pillar catalog; there is no backward navigation. A run completes exactly
// once, when the last question of the last pillar is answered.
type Run struct {
	PillarIndex   int       `json:"pillar_index"`
	QuestionIndex int       `json:"question_index"`
	Answers       Results   `json:"answers"`
	Status        RunStatus `json:"status"`
	StartedAt     time.Time `json:"started_at"`
}

// NewRun starts a fresh run at pillar 0, question 0.
func NewRun() *Run {
	return &Run{
		Answers:   Results{},
		Status:    RunRunning,
		StartedAt: time.Now(),
	}
}

// Current returns the pillar and question the cursors point at.
func (r *Run) Current(pillars []Pillar) (Pillar, Question, error) {
	if r.Status == RunCompleted {
		return Pillar{}, Question{}, NewError(CodeRunCompleted, "Assessment already completed", nil)
	}
	if r.PillarIndex >= len(pillars) {
		return Pillar{}, Question{}, NewInternalError("assessment cursor out of range", nil)
	}
	p := pillars[r.PillarIndex]
	if r.QuestionIndex >= len(p.Questions) {
		return Pillar{}, Question{}, NewInternalError("question cursor out of range", nil)
	}
	return p, p.Questions[r.QuestionIndex], nil
}

// Progress is the coarse pillar-level completion percentage.
func (r *Run) Progress(totalPillars int) int {
	if totalPillars == 0 {
		return 0
	}
	if r.Status == RunCompleted {
		return 100
	}
	return int(math.Round(100 * float64(r.PillarIndex) / float64(totalPillars)))
}

// Answer records value for the current question and advances the cursors.
// It returns true when the run transitions to completed, which happens
// exactly once per run.
func (r *Run) Answer(pillars []Pillar, value ComplianceValue) (bool, error) {
	pillar, question, err := r.Current(pillars)
	if err != nil {
		return false, err
	}
	if !question.HasOption(value) {
		return false, NewError(CodeInvalidAnswer,
			fmt.Sprintf("Value %q is not an option for question %s", value, question.ID), nil)
	}
	if _, dup := r.Answers.Value(question.ID); dup {
		return false, NewInternalError("question answered twice: "+question.ID, nil)
	}

	r.Answers = append(r.Answers, RecordedAnswer{
		QuestionID: question.ID,
		PillarID:   pillar.ID,
		Value:      value,
	})

	if r.QuestionIndex < len(pillar.Questions)-1 {
		r.QuestionIndex++
		return false, nil
	}
	if r.PillarIndex < len(pillars)-1 {
		r.PillarIndex++
		r.QuestionIndex = 0
		return false, nil
	}
	r.Status = RunCompleted
	return true, nil
}

// AssessmentResult is one persisted quiz-result record.
type AssessmentResult struct {
	ID        string
	UserID    string
	Answers   Results
	Score     int
	CreatedAt time.Time
}

// AssessmentResultRepository persists completed assessment runs.
type AssessmentResultRepository interface {
	CreateResult(ctx context.Context, result *AssessmentResult) error
	GetLatestResultByUserID(ctx context.Context, userID string) (*AssessmentResult, error)
}
