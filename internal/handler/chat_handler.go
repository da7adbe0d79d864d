package handler

import (
	"fwsr-hub/internal/domain"
	"fwsr-hub/internal/dto"
	"fwsr-hub/internal/service"
	"fwsr-hub/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ChatHandler exposes the advisory workroom.
type ChatHandler struct {
	chatService service.ChatService
	validator   *validation.Validator
}

func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		validator:   validation.NewValidator(),
	}
}

func messagesToResponse(messages []domain.ChatMessage) []dto.ChatMessageResponse {
	out := make([]dto.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, dto.ChatMessageResponse{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}
	return out
}

// GetChat returns the identity's transcript, creating a seeded session when
// none exists.
func (h *ChatHandler) GetChat(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	session, err := h.chatService.GetSession(c.Context(), userID, c.Query("plan_id"))
	if err != nil {
		return err
	}

	return c.JSON(dto.ChatSessionResponse{
		SessionID: session.ID,
		PlanID:    session.PlanID,
		Messages:  messagesToResponse(session.Messages),
	})
}

// Send appends a user message and returns the model reply with the updated
// transcript.
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req dto.ChatSendRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateChatMessage(req.Content); len(errs) > 0 {
		return errs
	}

	session, err := h.chatService.Send(c.Context(), userID, req.Content)
	if err != nil {
		return err
	}

	reply := session.Messages[len(session.Messages)-1]
	return c.JSON(dto.ChatSendResponse{
		Reply: dto.ChatMessageResponse{
			Role:    string(reply.Role),
			Content: reply.Content,
		},
		Messages: messagesToResponse(session.Messages),
	})
}
