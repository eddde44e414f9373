package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"kisan/pkg/weather"
)

const chatSystemPrompt = `You are 'Smart Kisan', an expert agricultural AI assistant for Indian farmers.
Your goal is to help farmers with crops, fertilizers, diseases, weather, and government schemes.
- Be helpful, polite, and concise.
- Answer in the SAME language as the user's question (English, Hindi, Telugu, Tamil, etc.).
- Provide practical, actionable advice.
- If asked about prices or subsidies, give general info and suggest checking official sources like e-NAM.`

type openAIClient struct {
	api   *openai.Client
	model string
}

// NewOpenAI builds a client for any OpenAI-compatible endpoint; endpoint
// may be empty for the default API host.
func NewOpenAI(endpoint, key, model string) Client {
	cfg := openai.DefaultConfig(key)
	if endpoint != "" {
		cfg.BaseURL = strings.TrimRight(endpoint, "/") + "/v1"
	}
	return &openAIClient{api: openai.NewClientWithConfig(cfg), model: model}
}

func (c *openAIClient) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.2,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("llm: no choices")
	}
	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", fmt.Errorf("llm: empty completion")
	}
	return out, nil
}

func (c *openAIClient) Explain(ctx context.Context, crop, soilType string, w weather.Snapshot, confidence float64, language string) (string, error) {
	prompt := fmt.Sprintf(`You are an expert agronomist.
Context:
- Crop: %s
- Soil Type: %s
- Temperature: %.1f°C
- Rainfall: %.0fmm
- Humidity: %.0f%%

Task:
Explain WHY this crop is suitable for this soil and weather in %s language.
Then provide 2 specific fertilizer tips and 1 precaution in specific bullet points.
Keep it concise (maximum 60 words).`,
		crop, soilType, w.Temperature, w.Rainfall, w.Humidity, language)
	return c.complete(ctx, "You are an expert agronomist.", prompt)
}

func (c *openAIClient) Chat(ctx context.Context, message, language, activeCrop, kbContext string) (string, error) {
	var sb strings.Builder
	if activeCrop != "" {
		fmt.Fprintf(&sb, "The farmer is currently cultivating %s. Use that as context when relevant.\n\n", activeCrop)
	}
	if kbContext != "" {
		fmt.Fprintf(&sb, "Reference notes:\n%s\n\n", kbContext)
	}
	fmt.Fprintf(&sb, "User (%s): %s", language, message)
	return c.complete(ctx, chatSystemPrompt, sb.String())
}

func (c *openAIClient) GenerateSchedule(ctx context.Context, cropName string) ([]TaskSpec, error) {
	prompt := fmt.Sprintf(`Generate a cultivation task schedule for %s.
Reply ONLY with valid JSON in this exact shape:
{"tasks":[{"task_name":"...","days_from_start":0}, ...]}
Cover the full cycle from sowing to harvest, 6 to 12 tasks, days_from_start ascending.`, cropName)

	raw, err := c.complete(ctx, "You are an expert agronomist. Reply ONLY valid JSON.", prompt)
	if err != nil {
		return nil, err
	}
	return ParseSchedule(raw)
}

// ParseSchedule accepts either the documented object shape or a bare
// JSON array, as models tend to emit both.
func ParseSchedule(raw string) ([]TaskSpec, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var payload struct {
		Tasks []TaskSpec `json:"tasks"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil || len(payload.Tasks) == 0 {
		var arr []TaskSpec
		if err2 := json.Unmarshal([]byte(raw), &arr); err2 != nil {
			return nil, fmt.Errorf("parse schedule: %v", err2)
		}
		payload.Tasks = arr
	}

	out := make([]TaskSpec, 0, len(payload.Tasks))
	for _, t := range payload.Tasks {
		name := strings.TrimSpace(t.TaskName)
		if name == "" {
			continue
		}
		if t.DaysFromStart < 0 {
			t.DaysFromStart = 0
		}
		out = append(out, TaskSpec{TaskName: name, DaysFromStart: t.DaysFromStart})
	}
	return out, nil
}
