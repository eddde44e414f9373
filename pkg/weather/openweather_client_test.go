package weather

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/data/2.5/weather", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "metric", q.Get("units"))
		assert.Equal(t, "test-key", q.Get("appid"))
		json.NewEncoder(w).Encode(map[string]any{
			"main": map[string]any{"temp": 28.4, "humidity": 64.0},
			"name": "Hyderabad",
		})
	}))
	defer srv.Close()

	c := NewOpenWeatherAt(srv.URL, "test-key")
	snap := c.Current(context.Background(), 17.4, 78.5)
	assert.Equal(t, 28.4, snap.Temperature)
	assert.Equal(t, 64.0, snap.Humidity)
	assert.Equal(t, 200.0, snap.Rainfall) // seasonal estimate, not from API
	assert.Equal(t, "Hyderabad", snap.Location)
}

func TestCurrentUnnamedLocation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"main": map[string]any{"temp": 20.0, "humidity": 50.0}})
	}))
	defer srv.Close()

	snap := NewOpenWeatherAt(srv.URL, "k").Current(context.Background(), 0, 0)
	assert.Equal(t, "Unknown Location", snap.Location)
}

func TestCurrentAPIFailureFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	snap := NewOpenWeatherAt(srv.URL, "bad-key").Current(context.Background(), 17.4, 78.5)
	assert.Equal(t, Fallback(), snap)
}

func TestCurrentUnreachableFallsBack(t *testing.T) {
	snap := NewOpenWeatherAt("http://127.0.0.1:1", "k").Current(context.Background(), 17.4, 78.5)
	assert.Equal(t, Fallback(), snap)
}

func TestFallbackValues(t *testing.T) {
	f := Fallback()
	assert.Equal(t, 30.0, f.Temperature)
	assert.Equal(t, 70.0, f.Humidity)
	assert.Equal(t, 150.0, f.Rainfall)
}
