package services

import (
	"strings"

	"food_ordering/internal/models"
	"food_ordering/internal/repository"

	"github.com/google/uuid"
)

// ChatService persists the conversation log between a user and the ordering
// assistant. The conversation ID is the username.
type ChatService interface {
	History(username string) ([]models.ConversationMessage, error)
	Append(username, role, content string) (*models.ConversationMessage, error)
}

type chatService struct {
	conversationRepo repository.ConversationRepository
}

func NewChatService(conversationRepo repository.ConversationRepository) ChatService {
	return &chatService{conversationRepo: conversationRepo}
}

func (s *chatService) History(username string) ([]models.ConversationMessage, error) {
	return s.conversationRepo.GetByConversationID(username)
}

func (s *chatService) Append(username, role, content string) (*models.ConversationMessage, error) {
	if strings.TrimSpace(role) == "" {
		return nil, validationErrorf("message role must not be empty")
	}
	if strings.TrimSpace(content) == "" {
		return nil, validationErrorf("message content must not be empty")
	}

	msg := &models.ConversationMessage{
		ID:             uuid.NewString(),
		Role:           role,
		Content:        content,
		ConversationID: username,
	}
	if err := s.conversationRepo.Create(msg); err != nil {
		return nil, err
	}
	return msg, nil
}
