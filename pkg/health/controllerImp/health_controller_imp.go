package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	fieldsvc "github.com/kitsukisaiseikyo-byte/farm-manager/pkg/field/service"
)

var appStart = time.Now()

type HealthCtrl struct {
	db     *gorm.DB
	fields fieldsvc.FieldReference
}

func NewHealthCtrl(db *gorm.DB, fields fieldsvc.FieldReference) *HealthCtrl {
	return &HealthCtrl{db: db, fields: fields}
}

// Health reports 503 only when the database is unreachable; a failed
// spreadsheet load is shown but does not fail the check.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbOK := true
	dbErr := ""
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			dbOK = false
			dbErr = "db.DB(): " + err.Error()
		} else if err := sqlDB.PingContext(ctx); err != nil {
			dbOK = false
			dbErr = "ping: " + err.Error()
		}
	} else {
		dbOK = false
		dbErr = "gorm db is nil"
	}

	status := http.StatusOK
	if !dbOK {
		status = http.StatusServiceUnavailable
	}

	type sub struct {
		OK  bool   `json:"ok"`
		Err string `json:"err,omitempty"`
	}

	fieldsOK, fieldCount := false, 0
	if h.fields != nil {
		fieldsOK = h.fields.Loaded()
		fieldCount = len(h.fields.Names())
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": dbOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": sub{OK: dbOK, Err: dbErr},
			"fields":   map[string]any{"ok": fieldsOK, "count": fieldCount},
		},
		"time": time.Now().Format(time.RFC3339),
	}

	return c.JSON(status, resp)
}
