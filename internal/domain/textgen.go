package domain

import "context"

// GenerationTask selects the prompt template used by the text-generation service.
type GenerationTask string

const (
	TaskChatTurn         GenerationTask = "chat"
	TaskPillarExplainer  GenerationTask = "explain_pillar"
	TaskAnswerFeedback   GenerationTask = "audit_feedback"
	TaskExecutiveSummary GenerationTask = "executive_summary"
)

// GenerationPayload carries the task-specific inputs for one generation call.
// Only the fields relevant to the task are read.
type GenerationPayload struct {
	// TaskChatTurn: the full transcript, oldest first, ending with the
	// latest user message.
	Messages []ChatMessage

	// TaskPillarExplainer and TaskAnswerFeedback.
	PillarID    string
	PillarTitle string

	// TaskAnswerFeedback: the compliance value the brand recorded.
	Answer ComplianceValue

	// TaskExecutiveSummary.
	Results   Results
	BrandName string
}

// TextGenerator is the single entry point to the external text-generation
// service. Every call is attempted exactly once; callers substitute their own
// fallback text on failure.
type TextGenerator interface {
	Generate(ctx context.Context, task GenerationTask, payload GenerationPayload) (string, error)
}
