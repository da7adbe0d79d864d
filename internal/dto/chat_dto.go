package dto

// ChatMessageResponse is one transcript entry.
type ChatMessageResponse struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatSessionResponse is the full transcript for the workroom view.
type ChatSessionResponse struct {
	SessionID string                `json:"session_id"`
	PlanID    string                `json:"plan_id"`
	Messages  []ChatMessageResponse `json:"messages"`
}

// ChatSendRequest appends a user message to the transcript.
type ChatSendRequest struct {
	Content string `json:"content" validate:"required"`
}

// ChatSendResponse carries the model's reply and the updated transcript.
type ChatSendResponse struct {
	Reply    ChatMessageResponse   `json:"reply"`
	Messages []ChatMessageResponse `json:"messages"`
}
