package repositoryImp

import (
	"gorm.io/gorm"

	"kisan/entities"
	"kisan/pkg/chat/repository"
)

type chatRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ChatRepository { return &chatRepo{db} }

func (r *chatRepo) Append(m *entities.ChatMessage) error { return r.db.Create(m).Error }

func (r *chatRepo) ByUser(userID uint) ([]entities.ChatMessage, error) {
	var out []entities.ChatMessage
	err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&out).Error
	return out, err
}
