package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultSessionSecret = "change-me-farm-session-secret"

type AppConfig struct {
	Port     string
	Timezone string
	DBPath   string

	UploadDir       string
	FieldListPath   string
	FieldListColumn string

	SessionSecret       string
	SessionTTL          time.Duration
	SessionCookieSecure bool
	DefaultUsername     string
	DefaultPassword     string

	Latitude       float64
	Longitude      float64
	WeatherURL     string
	WeatherTimeout time.Duration

	// MapURLs is keyed by index type: NDVI, NDWI, GNDVI.
	MapURLs  map[string]string
	MapProbe bool

	LogLevel  string
	LogFormat string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		slog.Debug("[cfg] no .env file loaded", "error", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getFloat := func(k string, def float64) float64 {
		raw := get(k, "")
		if raw == "" {
			return def
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			slog.Warn("[cfg] invalid number, using default", "key", k, "value", raw, "default", def)
			return def
		}
		return v
	}
	getDuration := func(k string, def time.Duration) time.Duration {
		raw := get(k, "")
		if raw == "" {
			return def
		}
		v, err := time.ParseDuration(raw)
		if err != nil || v <= 0 {
			slog.Warn("[cfg] invalid duration, using default", "key", k, "value", raw, "default", def)
			return def
		}
		return v
	}
	getBool := func(k string, def bool) bool {
		raw := get(k, "")
		if raw == "" {
			return def
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			slog.Warn("[cfg] invalid bool, using default", "key", k, "value", raw, "default", def)
			return def
		}
		return v
	}

	cfg := AppConfig{
		Port:     get("PORT", "5000"),
		Timezone: get("TZ", "Asia/Tokyo"),
		DBPath:   get("DB_PATH", "farm_v2.db"),

		UploadDir:       get("UPLOAD_DIR", "uploads"),
		FieldListPath:   get("FIELD_LIST_PATH", "新庄麦筆リスト.xlsx"),
		FieldListColumn: get("FIELD_LIST_COLUMN", "address"),

		SessionSecret:       get("SESSION_SECRET", defaultSessionSecret),
		SessionTTL:          getDuration("SESSION_TTL", 7*24*time.Hour),
		SessionCookieSecure: getBool("SESSION_COOKIE_SECURE", false),
		DefaultUsername:     get("DEFAULT_USERNAME", "admin"),
		DefaultPassword:     get("DEFAULT_PASSWORD", "farm2026"),

		Latitude:       getFloat("FARM_LAT", 33.416),
		Longitude:      getFloat("FARM_LON", 131.621),
		WeatherURL:     get("WEATHER_URL", "https://api.open-meteo.com/v1/forecast"),
		WeatherTimeout: getDuration("WEATHER_TIMEOUT", 2*time.Second),

		MapURLs: map[string]string{
			"NDVI":  get("MAP_URL_NDVI", "https://kitsukisaiseikyo-byte.github.io/mugimap-shinjo2026/index.html"),
			"NDWI":  get("MAP_URL_NDWI", "https://kitsukisaiseikyo-byte.github.io/mugimap-shinjo2026/ndwi.html"),
			"GNDVI": get("MAP_URL_GNDVI", "https://kitsukisaiseikyo-byte.github.io/mugimap-shinjo2026/gndvi.html"),
		},
		MapProbe: getBool("MAP_PROBE", false),

		LogLevel:  strings.ToLower(get("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(get("LOG_FORMAT", "text")),
	}
	if cfg.SessionSecret == defaultSessionSecret {
		slog.Warn("[cfg] SESSION_SECRET not set, using the built-in development secret")
	}
	slog.Info("[cfg] loaded", "config", cfg.Redacted())
	return cfg
}

// Redacted returns a copy safe to log.
func (c AppConfig) Redacted() AppConfig {
	out := c
	out.SessionSecret = "***"
	out.DefaultPassword = "***"
	return out
}

// Location resolves Timezone, falling back to UTC.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		slog.Warn("[cfg] unknown timezone, using UTC", "tz", c.Timezone, "error", err)
		return time.UTC
	}
	return loc
}

// NewLogger builds the process logger from LogLevel and LogFormat.
func (c AppConfig) NewLogger() *slog.Logger {
	var level slog.Level
	switch c.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
