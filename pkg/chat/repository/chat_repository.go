package repository

import "kisan/entities"

type ChatRepository interface {
	Append(m *entities.ChatMessage) error
	ByUser(userID uint) ([]entities.ChatMessage, error)
}
