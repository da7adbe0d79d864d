package service

import (
	"context"

	"fwsr-hub/internal/domain"
	"fwsr-hub/internal/logger"
	"fwsr-hub/internal/util"

	"go.uber.org/zap"
)

// chatWelcomeMessage seeds every new workroom session.
const chatWelcomeMessage = "Compliance Workroom Initialized.\n\nI am here to help you satisfy the 19 Minimum Standards for your 2026 application. My analysis of your audit suggests gaps in several critical standards.\n\nShall we start by drafting your Social Code of Conduct, or would you like to verify your material certifications first?"

// chatErrorMessage replaces a failed model reply in the transcript.
const chatErrorMessage = "The audit session has encountered an error. Please check your connection."

// ChatService manages the advisory workroom transcripts.
type ChatService interface {
	GetSession(ctx context.Context, userID string, planID string) (*domain.ChatSession, error)
	Send(ctx context.Context, userID string, content string) (*domain.ChatSession, error)
}

type chatServiceImpl struct {
	sessionRepo domain.ChatSessionRepository
	textGen     domain.TextGenerator
}

// NewChatService creates a ChatService.
func NewChatService(sessionRepo domain.ChatSessionRepository, textGen domain.TextGenerator) ChatService {
	return &chatServiceImpl{sessionRepo: sessionRepo, textGen: textGen}
}

// GetSession returns the identity's most recent session, creating one seeded
// with the workroom welcome message when none exists.
func (s *chatServiceImpl) GetSession(ctx context.Context, userID string, planID string) (*domain.ChatSession, error) {
	session, err := s.sessionRepo.GetLatestSessionByUserID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load chat session", err)
	}
	if session != nil && len(session.Messages) > 0 {
		return session, nil
	}

	if planID == "" {
		planID = "chat"
	}
	session = &domain.ChatSession{
		ID:     util.NewULID(),
		UserID: userID,
		PlanID: planID,
	}
	session.Append(domain.RoleModel, chatWelcomeMessage)

	if err := s.sessionRepo.CreateSession(ctx, session); err != nil {
		return nil, domain.NewInternalError("failed to create chat session", err)
	}
	logger.Get().Info("Chat session created", zap.String("userID", userID), zap.String("sessionID", session.ID))
	return session, nil
}

// Send appends the user message, generates the model reply with the full
// prior transcript, and writes the whole transcript back. The session is the
// sole writer per identity, last write wins across tabs.
func (s *chatServiceImpl) Send(ctx context.Context, userID string, content string) (*domain.ChatSession, error) {
	session, err := s.GetSession(ctx, userID, "")
	if err != nil {
		return nil, err
	}

	session.Append(domain.RoleUser, content)

	reply, err := s.textGen.Generate(ctx, domain.TaskChatTurn, domain.GenerationPayload{
		Messages: session.Messages,
	})
	if err != nil {
		logger.Get().Warn("Chat reply generation failed, substituting error message",
			zap.String("userID", userID), zap.Error(err))
		reply = chatErrorMessage
	}
	session.Append(domain.RoleModel, reply)

	if err := s.sessionRepo.UpdateSession(ctx, session); err != nil {
		return nil, domain.NewInternalError("failed to persist chat transcript", err)
	}
	return session, nil
}
