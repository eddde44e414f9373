package ai

import (
	"context"

	"kisan/pkg/weather"
)

// TaskSpec is one generated cultivation task, offset in days from the
// cultivation start.
type TaskSpec struct {
	TaskName      string `json:"task_name"`
	DaysFromStart int    `json:"days_from_start"`
}

type Client interface {
	// Explain produces the per-crop rationale shown to the farmer.
	Explain(ctx context.Context, crop, soilType string, w weather.Snapshot, confidence float64, language string) (string, error)

	// Chat answers a free-text farmer question in the requested language.
	// activeCrop and kbContext may be empty.
	Chat(ctx context.Context, message, language, activeCrop, kbContext string) (string, error)

	// GenerateSchedule proposes a task plan for a crop. Errors and
	// malformed output are not fatal to the caller; it just gets no tasks.
	GenerateSchedule(ctx context.Context, cropName string) ([]TaskSpec, error)
}
