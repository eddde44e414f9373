package serviceImp

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kisan/entities"
	"kisan/pkg/ai"
	"kisan/pkg/croprank"
	"kisan/pkg/recommend/service"
	"kisan/pkg/recommend/types"
	"kisan/pkg/soil"
	"kisan/pkg/weather"
)

type fakeWeather struct{ snap weather.Snapshot }

func (f fakeWeather) Current(ctx context.Context, lat, lon float64) weather.Snapshot { return f.snap }

type fakeEstimator struct {
	pred soil.Prediction
	err  error
}

func (f fakeEstimator) Classify(ctx context.Context, image []byte) (soil.Prediction, error) {
	return f.pred, f.err
}

type fakeRanker struct {
	got   *croprank.Features
	preds []croprank.Scored
	err   error
}

func (f *fakeRanker) Rank(ctx context.Context, feats croprank.Features) ([]croprank.Scored, error) {
	f.got = &feats
	return f.preds, f.err
}

type fakeRecRepo struct {
	created   []*entities.Recommendation
	createErr error
	rows      []entities.Recommendation
	gotLimit  int
}

func (f *fakeRecRepo) Create(r *entities.Recommendation) error {
	f.created = append(f.created, r)
	return f.createErr
}

func (f *fakeRecRepo) RecentByUser(userID uint, limit int) ([]entities.Recommendation, error) {
	f.gotLimit = limit
	return f.rows, nil
}

func fp(v float64) *float64 { return &v }

func newTestService(w weather.Snapshot, est fakeEstimator, rk *fakeRanker, repo *fakeRecRepo) *RecommendSvc {
	return NewRecommendService(fakeWeather{w}, est, soil.DefaultNutrients(), rk, ai.NewMock(), repo, zap.NewNop())
}

func defaultRanker() *fakeRanker {
	return &fakeRanker{preds: []croprank.Scored{
		{Crop: "rice", Confidence: 0.9},
		{Crop: "maize", Confidence: 0.6},
	}}
}

func baseRequest() types.Request {
	return types.Request{Lat: fp(17.4), Lon: fp(78.5), SoilType: "Loamy"}
}

func TestRecommendMissingCoordinates(t *testing.T) {
	svc := newTestService(weather.Fallback(), fakeEstimator{}, defaultRanker(), &fakeRecRepo{})

	_, err := svc.Recommend(context.Background(), nil, types.Request{Lat: fp(17.4)})
	assert.ErrorIs(t, err, service.ErrMissingCoordinates)

	_, err = svc.Recommend(context.Background(), nil, types.Request{Lon: fp(78.5)})
	assert.ErrorIs(t, err, service.ErrMissingCoordinates)
}

func TestRecommendLowConfidenceImageRejected(t *testing.T) {
	est := fakeEstimator{pred: soil.Prediction{Label: "Clay", Confidence: 0.3}}
	svc := newTestService(weather.Fallback(), est, defaultRanker(), &fakeRecRepo{})

	req := baseRequest()
	req.SoilType = "Black" // manual label must not rescue a bad photo
	req.ImageBase64 = base64.StdEncoding.EncodeToString([]byte("not really a jpeg"))

	_, err := svc.Recommend(context.Background(), nil, req)
	var lowConf *service.LowConfidenceSoilError
	require.ErrorAs(t, err, &lowConf)
	assert.InDelta(t, 0.3, lowConf.Confidence, 1e-9)
	assert.Contains(t, lowConf.Error(), "clearer photo")
}

func TestRecommendClassifierFailureFallsBackToManual(t *testing.T) {
	est := fakeEstimator{err: errors.New("model down")}
	svc := newTestService(weather.Fallback(), est, defaultRanker(), &fakeRecRepo{})

	req := baseRequest()
	req.SoilType = "Red"
	req.ImageBase64 = base64.StdEncoding.EncodeToString([]byte("img"))

	res, err := svc.Recommend(context.Background(), nil, req)
	require.NoError(t, err)
	assert.Equal(t, "Red", res.SoilAssessment.Type)
	assert.Zero(t, res.SoilAssessment.Confidence)
}

func TestRecommendBadBase64FallsBackToManual(t *testing.T) {
	svc := newTestService(weather.Fallback(), fakeEstimator{}, defaultRanker(), &fakeRecRepo{})

	req := baseRequest()
	req.SoilType = ""
	req.ImageBase64 = "%%%not-base64%%%"

	res, err := svc.Recommend(context.Background(), nil, req)
	require.NoError(t, err)
	assert.Equal(t, "Loamy", res.SoilAssessment.Type)
}

func TestRecommendExplicitNPKWinsOverLookup(t *testing.T) {
	rk := defaultRanker()
	svc := newTestService(weather.Fallback(), fakeEstimator{}, rk, &fakeRecRepo{})

	req := baseRequest()
	req.SoilType = "Sandy"
	req.N, req.P, req.K = fp(10), fp(11), fp(12)

	res, err := svc.Recommend(context.Background(), nil, req)
	require.NoError(t, err)
	assert.Equal(t, soil.NPK{N: 10, P: 11, K: 12}, res.SoilAssessment.InferredNPK)

	require.NotNil(t, rk.got)
	assert.Equal(t, 10.0, rk.got.N)
	assert.Equal(t, 11.0, rk.got.P)
	assert.Equal(t, 12.0, rk.got.K)
}

func TestRecommendPartialNPKUsesLookup(t *testing.T) {
	svc := newTestService(weather.Fallback(), fakeEstimator{}, defaultRanker(), &fakeRecRepo{})

	req := baseRequest()
	req.SoilType = "Sandy"
	req.N = fp(99) // P and K missing, so the whole triple is inferred

	res, err := svc.Recommend(context.Background(), nil, req)
	require.NoError(t, err)
	assert.Equal(t, soil.NPK{N: 25, P: 20, K: 30}, res.SoilAssessment.InferredNPK)
}

func TestRecommendUnmappedSoilGetsDefaults(t *testing.T) {
	svc := newTestService(weather.Fallback(), fakeEstimator{}, defaultRanker(), &fakeRecRepo{})

	req := baseRequest()
	req.SoilType = "Volcanic"

	res, err := svc.Recommend(context.Background(), nil, req)
	require.NoError(t, err)
	assert.Equal(t, soil.NPK{N: 40, P: 40, K: 40}, res.SoilAssessment.InferredNPK)
}

func TestRecommendPHDefault(t *testing.T) {
	rk := defaultRanker()
	svc := newTestService(weather.Fallback(), fakeEstimator{}, rk, &fakeRecRepo{})

	_, err := svc.Recommend(context.Background(), nil, baseRequest())
	require.NoError(t, err)
	assert.Equal(t, 7.0, rk.got.PH)

	req := baseRequest()
	req.PH = fp(5.5)
	_, err = svc.Recommend(context.Background(), nil, req)
	require.NoError(t, err)
	assert.Equal(t, 5.5, rk.got.PH)
}

func TestRecommendTemperatureOverride(t *testing.T) {
	rk := defaultRanker()
	w := weather.Snapshot{Temperature: 30, Humidity: 70, Rainfall: 150}
	svc := newTestService(w, fakeEstimator{}, rk, &fakeRecRepo{})

	req := baseRequest()
	req.Temperature = fp(18.5)

	res, err := svc.Recommend(context.Background(), nil, req)
	require.NoError(t, err)
	assert.Equal(t, 18.5, res.WeatherSummary.Temperature)
	assert.Equal(t, 18.5, rk.got.Temperature)
	// humidity and rainfall keep the resolved values
	assert.Equal(t, 70.0, res.WeatherSummary.Humidity)
	assert.Equal(t, 150.0, res.WeatherSummary.Rainfall)
}

func TestRecommendHighHumidityRisk(t *testing.T) {
	w := weather.Snapshot{Temperature: 30, Humidity: 85, Rainfall: 150}
	svc := newTestService(w, fakeEstimator{}, defaultRanker(), &fakeRecRepo{})

	res, err := svc.Recommend(context.Background(), nil, baseRequest())
	require.NoError(t, err)
	assert.Equal(t, []string{"Possible pests due to high humidity"}, res.RisksPrecautions.Risks)
	assert.Equal(t, []string{"Ensure proper drainage", "Use organic fertilizers"}, res.RisksPrecautions.Precautions)
}

func TestRecommendNormalRiskAtThreshold(t *testing.T) {
	w := weather.Snapshot{Temperature: 30, Humidity: 80, Rainfall: 150}
	svc := newTestService(w, fakeEstimator{}, defaultRanker(), &fakeRecRepo{})

	res, err := svc.Recommend(context.Background(), nil, baseRequest())
	require.NoError(t, err)
	assert.Equal(t, []string{"Normal risks"}, res.RisksPrecautions.Risks)
}

func TestRecommendUnsupportedLanguageFallsBackToEnglish(t *testing.T) {
	svc := newTestService(weather.Fallback(), fakeEstimator{}, defaultRanker(), &fakeRecRepo{})

	req := baseRequest()
	req.Language = "fr"

	res, err := svc.Recommend(context.Background(), nil, req)
	require.NoError(t, err)
	assert.Equal(t, []string{"Normal risks"}, res.RisksPrecautions.Risks)
	assert.Contains(t, res.RecommendedCrops[0].Explanation, "Your soil is Loamy")
}

func TestRecommendSuitabilityTiers(t *testing.T) {
	rk := &fakeRanker{preds: []croprank.Scored{
		{Crop: "rice", Confidence: 0.71},
		{Crop: "maize", Confidence: 0.7},
	}}
	svc := newTestService(weather.Fallback(), fakeEstimator{}, rk, &fakeRecRepo{})

	res, err := svc.Recommend(context.Background(), nil, baseRequest())
	require.NoError(t, err)
	assert.Equal(t, "High", res.RecommendedCrops[0].Suitability)
	assert.Equal(t, "Medium", res.RecommendedCrops[1].Suitability)
}

func TestRecommendTopThreeOrdering(t *testing.T) {
	rk := &fakeRanker{preds: []croprank.Scored{
		{Crop: "cotton", Confidence: 0.2},
		{Crop: "rice", Confidence: 0.9},
		{Crop: "mango", Confidence: 0.5},
		{Crop: "maize", Confidence: 0.8},
	}}
	svc := newTestService(weather.Fallback(), fakeEstimator{}, rk, &fakeRecRepo{})

	res, err := svc.Recommend(context.Background(), nil, baseRequest())
	require.NoError(t, err)
	require.Len(t, res.RecommendedCrops, 3)
	assert.Equal(t, "rice", res.RecommendedCrops[0].Crop)
	assert.Equal(t, "maize", res.RecommendedCrops[1].Crop)
	assert.Equal(t, "mango", res.RecommendedCrops[2].Crop)
}

func TestRecommendRankerFailureIsFatal(t *testing.T) {
	rk := &fakeRanker{err: errors.New("connection refused")}
	svc := newTestService(weather.Fallback(), fakeEstimator{}, rk, &fakeRecRepo{})

	_, err := svc.Recommend(context.Background(), nil, baseRequest())
	var rankErr *service.RankerError
	require.ErrorAs(t, err, &rankErr)
}

func TestRecommendPersistFailureStillReturnsResult(t *testing.T) {
	repo := &fakeRecRepo{createErr: errors.New("disk full")}
	svc := newTestService(weather.Fallback(), fakeEstimator{}, defaultRanker(), repo)

	uid := uint(7)
	res, err := svc.Recommend(context.Background(), &uid, baseRequest())
	require.NoError(t, err)
	require.NotNil(t, res)

	require.Len(t, repo.created, 1)
	require.NotNil(t, repo.created[0].UserID)
	assert.Equal(t, uint(7), *repo.created[0].UserID)
	assert.NotEmpty(t, repo.created[0].FullResponse)
}

func TestRecommendResultConstants(t *testing.T) {
	svc := newTestService(weather.Fallback(), fakeEstimator{}, defaultRanker(), &fakeRecRepo{})

	res, err := svc.Recommend(context.Background(), nil, baseRequest())
	require.NoError(t, err)
	assert.Equal(t, "Kharif", res.WeatherSummary.Season)
	assert.Equal(t, "Just Now", res.Timestamp)
	assert.Equal(t, "High", res.SoilAssessment.Moisture)  // fallback rainfall 150 > 100
	assert.Equal(t, "High", res.SoilAssessment.Fertility) // Loamy N 70 > 50
}

func TestHistoryFormatting(t *testing.T) {
	repo := &fakeRecRepo{rows: []entities.Recommendation{{
		SoilType:         "Black",
		RecommendedCrops: `[{"crop":"rice"}]`,
		FullResponse:     `{}`,
		CreatedAt:        time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC),
	}}}
	svc := newTestService(weather.Fallback(), fakeEstimator{}, defaultRanker(), repo)

	items, err := svc.History(42)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 20, repo.gotLimit)
	assert.Equal(t, "2025-06-01 09:30", items[0].Timestamp)
	assert.Equal(t, map[string]any{"type": "Black"}, items[0].SoilAssessment)
}
