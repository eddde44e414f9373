package ai

import (
	"context"
	"fmt"

	"kisan/pkg/knowledge"
	"kisan/pkg/weather"
)

type mockClient struct{}

// NewMock is used when no LLM endpoint is configured.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) Explain(ctx context.Context, crop, soilType string, w weather.Snapshot, confidence float64, language string) (string, error) {
	return knowledge.FallbackExplanation(crop, soilType, w.Temperature, language), nil
}

func (m *mockClient) Chat(ctx context.Context, message, language, activeCrop, kbContext string) (string, error) {
	if activeCrop != "" {
		return fmt.Sprintf("You are growing %s. Keep following your schedule and check back for weather updates.", activeCrop), nil
	}
	return "I can help with crops, fertilizers, diseases and weather. What would you like to know?", nil
}

func (m *mockClient) GenerateSchedule(ctx context.Context, cropName string) ([]TaskSpec, error) {
	return []TaskSpec{
		{TaskName: "Prepare the field and plough", DaysFromStart: 0},
		{TaskName: fmt.Sprintf("Sow %s seeds", cropName), DaysFromStart: 2},
		{TaskName: "First irrigation", DaysFromStart: 5},
		{TaskName: "Apply basal fertilizer", DaysFromStart: 10},
		{TaskName: "Weed control", DaysFromStart: 20},
		{TaskName: "Pest inspection", DaysFromStart: 35},
		{TaskName: "Harvest check", DaysFromStart: 90},
	}, nil
}
