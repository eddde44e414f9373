package repositoryImp

import (
	"gorm.io/gorm"

	"kisan/entities"
	"kisan/pkg/recommend/repository"
)

type recRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.RecommendationRepository { return &recRepo{db} }

func (r *recRepo) Create(rec *entities.Recommendation) error { return r.db.Create(rec).Error }

func (r *recRepo) RecentByUser(userID uint, limit int) ([]entities.Recommendation, error) {
	var out []entities.Recommendation
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Limit(limit).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
