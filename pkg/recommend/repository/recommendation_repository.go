package repository

import "kisan/entities"

type RecommendationRepository interface {
	Create(r *entities.Recommendation) error
	RecentByUser(userID uint, limit int) ([]entities.Recommendation, error)
}
