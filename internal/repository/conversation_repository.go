package repository

import (
	"food_ordering/internal/models"

	"gorm.io/gorm"
)

type ConversationRepository interface {
	Create(msg *models.ConversationMessage) error
	GetByConversationID(conversationID string) ([]models.ConversationMessage, error)
}

type conversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

func (r *conversationRepository) Create(msg *models.ConversationMessage) error {
	return r.db.Create(msg).Error
}

func (r *conversationRepository) GetByConversationID(conversationID string) ([]models.ConversationMessage, error) {
	var msgs []models.ConversationMessage
	err := r.db.Where("conversation_id = ?", conversationID).Order("created_at ASC").Find(&msgs).Error
	return msgs, err
}
