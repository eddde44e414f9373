package entities

import "time"

type Recommendation struct {
	ID               uint     `gorm:"primaryKey" json:"id"`
	UserID           *uint    `gorm:"index" json:"user_id"` // nil for anonymous callers
	Latitude         float64  `json:"latitude"`
	Longitude        float64  `json:"longitude"`
	SoilType         string   `json:"soil_type"`
	WeatherJSON      string   `json:"weather_json"`
	RecommendedCrops string   `json:"recommended_crops"` // JSON array of crop+confidence
	FullResponse     string   `json:"full_response"`     // verbatim result payload
	CreatedAt        time.Time `json:"timestamp"`
}
