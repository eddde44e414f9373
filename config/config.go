package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port      string
	DBPath    string
	JWTSecret string
	JWTDays   int

	OpenWeatherKey string

	LLMEndpoint string
	LLMAPIKey   string
	LLMModel    string
	EmbModel    string

	SoilModelEndpoint string
	CropModelEndpoint string

	SpeechEndpoint string
	SpeechAPIKey   string
	AudioDir       string

	NutrientTablePath string
	KBAllowedDomains  string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	cfg := AppConfig{
		Port:      get("PORT", "8080"),
		DBPath:    get("DB_PATH", "kisan.db"),
		JWTSecret: get("JWT_SECRET_KEY", "super-secret-key-change-this"),
		JWTDays:   getInt("JWT_EXPIRES_DAYS", 30),

		OpenWeatherKey: get("OPENWEATHER_API_KEY", ""),

		LLMEndpoint: get("LLM_ENDPOINT", ""),
		LLMAPIKey:   get("LLM_API_KEY", ""),
		LLMModel:    get("LLM_MODEL", "gpt-4o-mini"),
		EmbModel:    get("EMB_MODEL", "text-embedding-3-small"),

		SoilModelEndpoint: get("SOIL_MODEL_ENDPOINT", ""),
		CropModelEndpoint: get("CROP_MODEL_ENDPOINT", ""),

		SpeechEndpoint: get("SPEECH_ENDPOINT", ""),
		SpeechAPIKey:   get("SPEECH_API_KEY", ""),
		AudioDir:       get("AUDIO_DIR", "static/audio"),

		NutrientTablePath: get("NUTRIENT_TABLE_PATH", ""),
		KBAllowedDomains:  get("KB_ALLOWED_DOMAINS", ""),
	}
	log.Printf("[cfg] port=%s db=%s llm_model=%s", cfg.Port, cfg.DBPath, cfg.LLMModel)
	return cfg
}
