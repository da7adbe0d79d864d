package dto

// QuestionOptionResponse is one selectable answer for a question.
type QuestionOptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Risk  string `json:"risk"`
}

// CurrentQuestionResponse describes the cursor position of an active run.
type CurrentQuestionResponse struct {
	PillarID       string                   `json:"pillar_id"`
	PillarTitle    string                   `json:"pillar_title"`
	QuestionID     string                   `json:"question_id"`
	QuestionText   string                   `json:"question_text"`
	Options        []QuestionOptionResponse `json:"options"`
	QuestionNumber int                      `json:"question_number"` // 1-based within the pillar
	QuestionTotal  int                      `json:"question_total"`
	PillarNumber   int                      `json:"pillar_number"` // 1-based
	PillarTotal    int                      `json:"pillar_total"`
	Progress       int                      `json:"progress"` // 0-100
}

// AnswerRequest records an answer for the current question.
type AnswerRequest struct {
	Value string `json:"value" validate:"required"`
}

// RecordedAnswerResponse is one entry of a completed results map.
type RecordedAnswerResponse struct {
	QuestionID string `json:"question_id"`
	PillarID   string `json:"pillar_id"`
	Value      string `json:"value"`
}

// SummaryResponse carries the computed compliance score.
type SummaryResponse struct {
	Total          int    `json:"total"`
	Compliant      int    `json:"compliant"`
	Unsure         int    `json:"unsure"`
	Score          int    `json:"score"`
	Classification string `json:"classification"`
}

// AnswerResponse is returned after recording an answer. Exactly one of Next
// or Completion is set.
type AnswerResponse struct {
	Completed  bool                     `json:"completed"`
	Next       *CurrentQuestionResponse `json:"next,omitempty"`
	Completion *CompletionResponse      `json:"completion,omitempty"`
}

// CompletionResponse is the payload returned when the final answer lands.
type CompletionResponse struct {
	Results []RecordedAnswerResponse `json:"results"`
	Summary SummaryResponse          `json:"summary"`
}

// AnswerFeedbackRequest asks for a one-line remark on a recorded answer.
type AnswerFeedbackRequest struct {
	PillarID string `json:"pillar_id" validate:"required"`
	Value    string `json:"value" validate:"required"`
}

// AnswerFeedbackResponse carries the generated (or fallback) remark.
type AnswerFeedbackResponse struct {
	Feedback string `json:"feedback"`
}

// ResultResponse is the full result-page payload.
type ResultResponse struct {
	Summary          SummaryResponse          `json:"summary"`
	PillarGrid       map[string]string        `json:"pillar_grid"` // pillar id -> worst recorded value
	Results          []RecordedAnswerResponse `json:"results"`
	ExecutiveSummary string                   `json:"executive_summary"`
}
