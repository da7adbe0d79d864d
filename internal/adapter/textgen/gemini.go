package textgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"fwsr-hub/internal/config"
	"fwsr-hub/internal/domain"
	"fwsr-hub/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"
)

// systemPrompt frames every advisory chat turn. The persona and guidelines
// come from the FWSR audit desk playbook.
const systemPrompt = `You are a Senior Sustainability Auditor for the Fashion Week Sustainability Requirements (FWSR) Hub.
The year is 2026. You help fashion brands comply with the 19 Minimum Standards for Berlin Fashion Week.

Your Tone: Direct, technical, and efficient. No marketing jargon. No "Silicon Valley" buzzwords.

Your Goal:
1. Identify exactly which documents are missing.
2. Provide concrete checklists for Pillar compliance.
3. Help draft technical documents like RSLs and Social Codes of Conduct.

Guidelines:
- If a brand lacks a strategy (Pillar 01), tell them exactly what sections it must contain.
- Use regulatory terms: REACH, ILO, Supply Chain Act, GOTS.
- Be concise. Focus on the required proof.`

// geminiGenerator implements domain.TextGenerator against the Gemini API.
// Long-form tasks use the chat model, short single-shot tasks the fast model.
type geminiGenerator struct {
	client  *googleai.GoogleAI
	cfg     config.GeminiConfig
	timeout time.Duration
}

// NewGeminiGenerator creates a generator backed by the Google AI client.
func NewGeminiGenerator(ctx context.Context, cfg config.GeminiConfig) (domain.TextGenerator, error) {
	client, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.APIKey),
		googleai.WithDefaultModel(cfg.ChatModel),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &geminiGenerator{client: client, cfg: cfg, timeout: timeout}, nil
}

// Generate runs a single generation call for the given task. Each call is
// attempted exactly once; callers substitute fallback text on error.
func (g *geminiGenerator) Generate(ctx context.Context, task domain.GenerationTask, payload domain.GenerationPayload) (string, error) {
	l := logger.Get()

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	var (
		text string
		err  error
	)
	switch task {
	case domain.TaskChatTurn:
		text, err = g.chatTurn(ctx, payload.Messages)
	case domain.TaskPillarExplainer:
		text, err = g.singleShot(ctx, g.cfg.FastModel, explainerPrompt(payload))
	case domain.TaskAnswerFeedback:
		text, err = g.singleShot(ctx, g.cfg.FastModel, feedbackPrompt(payload))
	case domain.TaskExecutiveSummary:
		text, err = g.singleShot(ctx, g.cfg.ChatModel, summaryPrompt(payload))
	default:
		return "", domain.NewError(domain.CodeInvalidInput, fmt.Sprintf("unknown generation task %q", task), nil)
	}

	if err != nil {
		l.Error("Gemini generation failed",
			zap.String("task", string(task)),
			zap.Error(err))
		return "", domain.NewTextGenError(err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		l.Warn("Gemini returned empty response", zap.String("task", string(task)))
		return "", domain.NewTextGenError(fmt.Errorf("empty response for task %s", task))
	}
	return text, nil
}

func (g *geminiGenerator) chatTurn(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	content := make([]llms.MessageContent, 0, len(messages)+1)
	content = append(content, llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt))
	for _, m := range messages {
		role := llms.ChatMessageTypeHuman
		if m.Role == domain.RoleModel {
			role = llms.ChatMessageTypeAI
		}
		content = append(content, llms.TextParts(role, m.Content))
	}

	resp, err := g.client.GenerateContent(ctx, content,
		llms.WithModel(g.cfg.ChatModel),
		llms.WithTemperature(0.3))
	if err != nil {
		return "", fmt.Errorf("chat generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat generation returned no choices")
	}
	return resp.Choices[0].Content, nil
}

func (g *geminiGenerator) singleShot(ctx context.Context, model, prompt string) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, g.client, prompt,
		llms.WithModel(model),
		llms.WithTemperature(0.2))
}

func explainerPrompt(p domain.GenerationPayload) string {
	return fmt.Sprintf("Briefly explain the technical importance of Pillar %s: %s for a fashion brand applying to a major fashion week. Keep it under 60 words, focus on regulatory risk.",
		p.PillarID, p.PillarTitle)
}

func feedbackPrompt(p domain.GenerationPayload) string {
	if p.Answer == domain.ValueYes {
		return fmt.Sprintf("A brand claims they satisfy %q. Briefly state one technical document they MUST have ready to prove this. Keep it under 20 words.", p.PillarTitle)
	}
	return fmt.Sprintf("A brand admits they FAIL %q. Briefly state the primary regulatory risk this creates for their Fashion Week application. Keep it under 20 words.", p.PillarTitle)
}

func summaryPrompt(p domain.GenerationPayload) string {
	pillarValues := p.Results.PillarValues()
	resultsJSON, err := json.Marshal(pillarValues)
	if err != nil {
		resultsJSON = []byte("{}")
	}
	brand := p.BrandName
	if brand == "" {
		brand = "the applicant"
	}
	return fmt.Sprintf(`Based on these 19-pillar audit results for brand %q: %s.
Write a 3-paragraph executive summary.
Para 1: Overall eligibility verdict.
Para 2: Most critical technical gaps identified.
Para 3: Mandatory next steps.
Tone: Senior Auditor. Professional and firm.`, brand, string(resultsJSON))
}
