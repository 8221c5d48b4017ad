package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

// Sessions reports how many farmers are logged in.
type Sessions interface{ Len() int }

type HealthCtrl struct {
	db       *gorm.DB
	sessions Sessions
	backend  string
}

func NewHealthCtrl(db *gorm.DB, sessions Sessions, backend string) *HealthCtrl {
	return &HealthCtrl{db: db, sessions: sessions, backend: backend}
}

type sub struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func (h *HealthCtrl) journal(ctx context.Context) sub {
	if h.db == nil {
		return sub{Err: "gorm db is nil"}
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return sub{Err: "db.DB(): " + err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return sub{Err: "ping: " + err.Error()}
	}
	return sub{OK: true}
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	j := h.journal(ctx)
	status := http.StatusOK
	if !j.OK {
		status = http.StatusServiceUnavailable
	}
	open := 0
	if h.sessions != nil {
		open = h.sessions.Len()
	}

	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": j.OK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks":     map[string]any{"journal": j},
		"sessions":   open,
		"backend":    h.backend,
		"time":       time.Now().Format(time.RFC3339),
	})
}
