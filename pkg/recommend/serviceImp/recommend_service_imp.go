package serviceImp

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"go.uber.org/zap"

	"kisan/entities"
	"kisan/pkg/ai"
	"kisan/pkg/croprank"
	"kisan/pkg/knowledge"
	"kisan/pkg/recommend/repository"
	"kisan/pkg/recommend/service"
	"kisan/pkg/recommend/types"
	"kisan/pkg/soil"
	"kisan/pkg/weather"
)

type RecommendSvc struct {
	weather   weather.Resolver
	estimator soil.Estimator
	nutrients *soil.NutrientTable
	ranker    croprank.Ranker
	llm       ai.Client
	repo      repository.RecommendationRepository
	log       *zap.Logger
}

func NewRecommendService(
	w weather.Resolver,
	est soil.Estimator,
	nt *soil.NutrientTable,
	rk croprank.Ranker,
	llm ai.Client,
	repo repository.RecommendationRepository,
	log *zap.Logger,
) *RecommendSvc {
	return &RecommendSvc{weather: w, estimator: est, nutrients: nt, ranker: rk, llm: llm, repo: repo, log: log}
}

// Recommend runs the full synthesis pipeline: weather, soil, nutrients,
// pH, ranking, explanations, risk assembly. Persistence failure is not
// fatal; the computed result is still returned.
func (s *RecommendSvc) Recommend(ctx context.Context, userID *uint, req types.Request) (*types.Result, error) {
	if req.Lat == nil || req.Lon == nil {
		return nil, service.ErrMissingCoordinates
	}

	// 1) Weather, with optional user temperature override.
	w := s.weather.Current(ctx, *req.Lat, *req.Lon)
	if req.Temperature != nil {
		w.Temperature = *req.Temperature
	}

	// 2) Soil. A low-confidence photo is rejected outright; a classifier
	// failure falls back to the manual label.
	soilType, soilConf, err := s.resolveSoil(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3) Nutrients: explicit values win, otherwise infer from soil type.
	var npk soil.NPK
	if req.N != nil && req.P != nil && req.K != nil {
		npk = soil.NPK{N: *req.N, P: *req.P, K: *req.K}
	} else {
		npk = s.nutrients.Lookup(soilType)
	}

	// 4) pH default.
	ph := 7.0
	if req.PH != nil {
		ph = *req.PH
	}

	// 5) Ranking. No fallback here.
	ranked, err := s.ranker.Rank(ctx, croprank.Features{
		N: npk.N, P: npk.P, K: npk.K,
		Temperature: w.Temperature,
		Humidity:    w.Humidity,
		PH:          ph,
		Rainfall:    w.Rainfall,
	})
	if err != nil {
		return nil, &service.RankerError{Err: err}
	}
	ranked = croprank.Top3(ranked)

	// 6) Explanations + suitability tier.
	lang := knowledge.NormalizeLanguage(req.Language)
	crops := make([]types.CropRecommendation, 0, len(ranked))
	for _, item := range ranked {
		crops = append(crops, types.CropRecommendation{
			Crop:        item.Crop,
			Confidence:  item.Confidence,
			Suitability: tier(item.Confidence > 0.7),
			Explanation: s.explain(ctx, item.Crop, soilType, w, item.Confidence, lang),
		})
	}

	// 7) Risk and precaution texts.
	rt := knowledge.RiskTexts(lang)
	risk := rt.Normal
	if w.Humidity > 80 {
		risk = rt.HighHumidity
	}

	result := &types.Result{
		SoilAssessment: types.SoilAssessment{
			Type:        soilType,
			Confidence:  soilConf,
			InferredNPK: npk,
			Moisture:    tier(w.Rainfall > 100),
			Fertility:   tier(npk.N > 50),
		},
		WeatherSummary: types.WeatherSummary{
			Temperature: w.Temperature,
			Rainfall:    w.Rainfall,
			Humidity:    w.Humidity,
			Season:      "Kharif",
		},
		RecommendedCrops: crops,
		RisksPrecautions: types.RisksPrecautions{
			Risks:       []string{risk},
			Precautions: []string{rt.Drainage, rt.Organic},
		},
		Timestamp: "Just Now",
	}

	s.persist(userID, req, soilType, w, result)
	return result, nil
}

func (s *RecommendSvc) resolveSoil(ctx context.Context, req types.Request) (string, float64, error) {
	manual := req.SoilType
	if manual == "" {
		manual = "Loamy"
	}
	if req.ImageBase64 == "" {
		return manual, 0.0, nil
	}

	image, err := base64.StdEncoding.DecodeString(req.ImageBase64)
	if err != nil {
		s.log.Warn("soil image decode failed", zap.Error(err))
		return manual, 0.0, nil
	}
	pred, err := s.estimator.Classify(ctx, image)
	if err != nil {
		s.log.Warn("soil classification failed", zap.Error(err))
		return manual, 0.0, nil
	}
	if pred.Confidence < 0.5 {
		return "", 0, &service.LowConfidenceSoilError{Confidence: pred.Confidence}
	}
	return pred.Label, pred.Confidence, nil
}

func (s *RecommendSvc) explain(ctx context.Context, crop, soilType string, w weather.Snapshot, confidence float64, lang string) string {
	text, err := s.llm.Explain(ctx, crop, soilType, w, confidence, lang)
	if err != nil || text == "" {
		if err != nil {
			s.log.Warn("explanation generation failed", zap.String("crop", crop), zap.Error(err))
		}
		return knowledge.FallbackExplanation(crop, soilType, w.Temperature, lang)
	}
	return text
}

func (s *RecommendSvc) persist(userID *uint, req types.Request, soilType string, w weather.Snapshot, result *types.Result) {
	weatherJSON, _ := json.Marshal(w)
	cropsJSON, _ := json.Marshal(result.RecommendedCrops)
	fullJSON, _ := json.Marshal(result)
	rec := &entities.Recommendation{
		UserID:           userID,
		Latitude:         *req.Lat,
		Longitude:        *req.Lon,
		SoilType:         soilType,
		WeatherJSON:      string(weatherJSON),
		RecommendedCrops: string(cropsJSON),
		FullResponse:     string(fullJSON),
	}
	if err := s.repo.Create(rec); err != nil {
		s.log.Warn("save recommendation failed", zap.Error(err))
	}
}

func (s *RecommendSvc) History(userID uint) ([]types.HistoryItem, error) {
	rows, err := s.repo.RecentByUser(userID, 20)
	if err != nil {
		return nil, err
	}
	out := make([]types.HistoryItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, types.HistoryItem{
			RecommendedCrops: row.RecommendedCrops,
			Timestamp:        row.CreatedAt.Format("2006-01-02 15:04"),
			SoilAssessment:   map[string]any{"type": row.SoilType},
			FullResponse:     row.FullResponse,
		})
	}
	return out, nil
}

func tier(high bool) string {
	if high {
		return "High"
	}
	return "Medium"
}
