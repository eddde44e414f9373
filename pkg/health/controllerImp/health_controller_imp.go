package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

type HealthCtrl struct {
	db      *gorm.DB
	llmMode string
}

// NewHealthCtrl reports process liveness, database reachability and
// which assistant backend is active ("llm" or "mock").
func NewHealthCtrl(db *gorm.DB, llmMode string) *HealthCtrl {
	return &HealthCtrl{db: db, llmMode: llmMode}
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbOK := true
	dbErr := ""
	if h.db == nil {
		dbOK = false
		dbErr = "gorm db is nil"
	} else if sqlDB, err := h.db.DB(); err != nil {
		dbOK = false
		dbErr = "db.DB(): " + err.Error()
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbOK = false
		dbErr = "ping: " + err.Error()
	}

	status := http.StatusOK
	if !dbOK {
		status = http.StatusServiceUnavailable
	}

	type sub struct {
		OK  bool   `json:"ok"`
		Err string `json:"err,omitempty"`
	}
	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": dbOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database":  sub{OK: dbOK, Err: dbErr},
			"assistant": map[string]string{"mode": h.llmMode},
		},
		"time": time.Now().Format(time.RFC3339),
	})
}
