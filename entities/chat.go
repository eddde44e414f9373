package entities

import "time"

type ChatMessage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"index" json:"user_id"`
	Message   string `json:"message"`
	IsBot     bool   `json:"is_bot"`
	CreatedAt time.Time
}
