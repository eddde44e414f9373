package types

import "kisan/pkg/soil"

type Request struct {
	Lat         *float64 `json:"lat"`
	Lon         *float64 `json:"lon"`
	ImageBase64 string   `json:"image_base64"`
	SoilType    string   `json:"soil_type"`
	N           *float64 `json:"N"`
	P           *float64 `json:"P"`
	K           *float64 `json:"K"`
	PH          *float64 `json:"ph"`
	Temperature *float64 `json:"temperature"` // overrides resolved temperature only
	Language    string   `json:"language"`
}

type SoilAssessment struct {
	Type        string   `json:"type"`
	Confidence  float64  `json:"confidence"`
	InferredNPK soil.NPK `json:"inferred_npk"`
	Moisture    string   `json:"moisture"`  // High|Medium
	Fertility   string   `json:"fertility"` // High|Medium
}

type WeatherSummary struct {
	Temperature float64 `json:"temperature"`
	Rainfall    float64 `json:"rainfall"`
	Humidity    float64 `json:"humidity"`
	Season      string  `json:"season"`
}

type CropRecommendation struct {
	Crop        string  `json:"crop"`
	Confidence  float64 `json:"confidence"`
	Suitability string  `json:"suitability"` // High|Medium
	Explanation string  `json:"explanation"`
}

type RisksPrecautions struct {
	Risks       []string `json:"risks"`
	Precautions []string `json:"precautions"`
}

type Result struct {
	SoilAssessment   SoilAssessment       `json:"soil_assessment"`
	WeatherSummary   WeatherSummary       `json:"weather_summary"`
	RecommendedCrops []CropRecommendation `json:"recommended_crops"`
	RisksPrecautions RisksPrecautions     `json:"risks_precautions"`
	Timestamp        string               `json:"timestamp"`
}

type HistoryItem struct {
	RecommendedCrops string         `json:"recommended_crops"`
	Timestamp        string         `json:"timestamp"`
	SoilAssessment   map[string]any `json:"soil_assessment"`
	FullResponse     string         `json:"full_response"`
}
