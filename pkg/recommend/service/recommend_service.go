package service

import (
	"context"
	"errors"
	"fmt"

	"kisan/pkg/recommend/types"
)

var ErrMissingCoordinates = errors.New("lat and lon are required")

// LowConfidenceSoilError: the uploaded photo does not look like soil.
// This is a hard gate, not a degraded result, even when a manual
// soil_type was supplied alongside the image.
type LowConfidenceSoilError struct {
	Confidence float64
}

func (e *LowConfidenceSoilError) Error() string {
	return "The image doesn't clearly look like recognizable soil. Please upload a clearer photo of the ground."
}

// RankerError wraps a crop-model failure; there is no fallback for
// ranking, so it is fatal to the request.
type RankerError struct {
	Err error
}

func (e *RankerError) Error() string { return fmt.Sprintf("crop ranking failed: %v", e.Err) }
func (e *RankerError) Unwrap() error { return e.Err }

type RecommendService interface {
	Recommend(ctx context.Context, userID *uint, req types.Request) (*types.Result, error)
	History(userID uint) ([]types.HistoryItem, error)
}
