package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"kisan/config"
	"kisan/database"
	"kisan/router"

	"kisan/pkg/ai"
	"kisan/pkg/auth"
	"kisan/pkg/croprank"
	"kisan/pkg/soil"
	"kisan/pkg/voice"
	"kisan/pkg/weather"

	authCtrlImp "kisan/pkg/auth/controllerImp"
	userRepoImp "kisan/pkg/auth/repositoryImp"

	weatherCtrlImp "kisan/pkg/weather/controllerImp"

	recCtrlImp "kisan/pkg/recommend/controllerImp"
	recRepoImp "kisan/pkg/recommend/repositoryImp"
	recSvcImp "kisan/pkg/recommend/serviceImp"

	cultCtrlImp "kisan/pkg/cultivation/controllerImp"
	cultRepoImp "kisan/pkg/cultivation/repositoryImp"
	cultSvcImp "kisan/pkg/cultivation/serviceImp"

	chatCtrlImp "kisan/pkg/chat/controllerImp"
	chatRepoImp "kisan/pkg/chat/repositoryImp"
	chatSvcImp "kisan/pkg/chat/serviceImp"

	kbCtrlImp "kisan/pkg/kb/controllerImp"
	kbEmbedder "kisan/pkg/kb/embedder"
	kbRepoImp "kisan/pkg/kb/repositoryImp"
	kbSvcImp "kisan/pkg/kb/serviceImp"

	voiceCtrlImp "kisan/pkg/voice/controllerImp"

	healthCtrlImp "kisan/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) Logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	// 3) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 4) Nutrient table (bundled defaults unless a file is configured)
	nutrients := soil.DefaultNutrients()
	if cfg.NutrientTablePath != "" {
		if nt, err := soil.LoadNutrientTable(cfg.NutrientTablePath); err != nil {
			logger.Warn("nutrient table load failed, using defaults", zap.Error(err))
		} else {
			nutrients = nt
		}
	}

	// 5) LLM (mock fallback)
	var llm ai.Client
	llmMode := "mock"
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
		llmMode = "llm"
	} else {
		llm = ai.NewMock()
	}

	// 6) External models
	wx := weather.NewOpenWeather(cfg.OpenWeatherKey)
	estimator := soil.NewHTTPEstimator(cfg.SoilModelEndpoint)
	ranker := croprank.NewHTTPRanker(cfg.CropModelEndpoint)

	// 7) Auth
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTDays)
	users := userRepoImp.New(db)
	authCtrl := authCtrlImp.New(users, issuer)

	// 8) KB
	var emb *kbEmbedder.Client
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		emb = kbEmbedder.New(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.EmbModel)
	}
	kbRepo := kbRepoImp.New(db)
	kbSvc := kbSvcImp.New(kbRepo, emb, logger)
	kbCtrl := kbCtrlImp.New(kbSvc, cfg.KBAllowedDomains)

	// 9) Recommendation
	recRepo := recRepoImp.New(db)
	recSvc := recSvcImp.NewRecommendService(wx, estimator, nutrients, ranker, llm, recRepo, logger)
	recCtrl := recCtrlImp.New(recSvc)

	// 10) Cultivation
	cultRepo := cultRepoImp.New(db)
	cultSvc := cultSvcImp.NewCultivationService(cultRepo, llm, logger)
	cultCtrl := cultCtrlImp.New(cultSvc)

	// 11) Chat + voice
	chatRepo := chatRepoImp.New(db)
	chatSvc := chatSvcImp.NewChatService(llm, chatRepo, cultRepo, kbSvc, logger)
	chatCtrl := chatCtrlImp.New(chatSvc)

	var stt voice.Transcriber
	var tts voice.Synthesizer
	if cfg.SpeechEndpoint != "" {
		sp := voice.NewHTTPSpeech(cfg.SpeechEndpoint, cfg.SpeechAPIKey)
		stt, tts = sp, sp
	}
	voiceCtrl := voiceCtrlImp.New(stt, tts, chatSvc, cfg.AudioDir, logger)

	weatherCtrl := weatherCtrlImp.New(wx)
	healthCtrl := healthCtrlImp.NewHealthCtrl(db, llmMode)

	// 12) Echo + routes
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Static("/static", "static")

	r := router.New(e, issuer, authCtrl, weatherCtrl, recCtrl, chatCtrl, cultCtrl, kbCtrl, voiceCtrl, healthCtrl)

	// 13) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
