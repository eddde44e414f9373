package router

import (
	"github.com/labstack/echo/v4"

	"kisan/pkg/auth"
)

func New(
	e *echo.Echo,
	issuer *auth.TokenIssuer,
	authCtrl interface {
		Register(echo.Context) error
		Login(echo.Context) error
		GetProfile(echo.Context) error
		UpdateProfile(echo.Context) error
	},
	weatherCtrl interface{ Get(echo.Context) error },
	recCtrl interface {
		Recommend(echo.Context) error
		History(echo.Context) error
	},
	chatCtrl interface {
		Chat(echo.Context) error
		History(echo.Context) error
	},
	cultCtrl interface {
		Start(echo.Context) error
		Active(echo.Context) error
		UpdateTask(echo.Context) error
		AddLedger(echo.Context) error
		Finish(echo.Context) error
		History(echo.Context) error
		HistoryDetail(echo.Context) error
	},
	kbCtrl interface {
		IngestText(echo.Context) error
		IngestURL(echo.Context) error
		Search(echo.Context) error
	},
	voiceCtrl interface{ VoiceChat(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	required := auth.Required(issuer)
	optional := auth.Optional(issuer)

	e.GET("/health", healthCtrl.Health)

	e.POST("/register", authCtrl.Register)
	e.POST("/login", authCtrl.Login)
	e.GET("/profile", authCtrl.GetProfile, required)
	e.POST("/profile", authCtrl.UpdateProfile, required)

	e.GET("/weather", weatherCtrl.Get)

	e.POST("/recommend_hybrid", recCtrl.Recommend, optional)
	e.GET("/history", recCtrl.History, required)

	e.POST("/chat", chatCtrl.Chat, optional)
	e.GET("/chat_history", chatCtrl.History, required)

	cult := e.Group("/api/cultivation", required)
	cult.POST("/start", cultCtrl.Start)
	cult.GET("/active", cultCtrl.Active)
	cult.PUT("/schedule/:task_id", cultCtrl.UpdateTask)
	cult.POST("/ledger", cultCtrl.AddLedger)
	cult.POST("/finish", cultCtrl.Finish)
	cult.GET("/history", cultCtrl.History)
	cult.GET("/history/:id", cultCtrl.HistoryDetail)

	e.POST("/kb/ingest", kbCtrl.IngestText)
	e.POST("/kb/ingest/url", kbCtrl.IngestURL)
	e.GET("/kb/search", kbCtrl.Search)

	e.POST("/api/voice_chat", voiceCtrl.VoiceChat, optional)

	return e
}
