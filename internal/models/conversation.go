package models

import "time"

// ConversationMessage is one entry in a user's chat history with the ordering
// assistant. The conversation ID is the username.
type ConversationMessage struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	Role           string    `json:"role" gorm:"not null"`
	Content        string    `json:"content" gorm:"type:text"`
	ConversationID string    `json:"conversation_id" gorm:"not null;index"`
	CreatedAt      time.Time `json:"created_at"`
}
