package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kitsukisaiseikyo-byte/farm-manager/config"
	"github.com/kitsukisaiseikyo-byte/farm-manager/database"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/mapview"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/middleware"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/observability"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/upload"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/view"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/weather"
	"github.com/kitsukisaiseikyo-byte/farm-manager/router"
	"github.com/kitsukisaiseikyo-byte/farm-manager/web"

	// Auth
	authCtrlImp "github.com/kitsukisaiseikyo-byte/farm-manager/pkg/auth/controllerImp"
	authRepoImp "github.com/kitsukisaiseikyo-byte/farm-manager/pkg/auth/repositoryImp"
	authSvcImp "github.com/kitsukisaiseikyo-byte/farm-manager/pkg/auth/serviceImp"

	// Reports
	reportCtrlImp "github.com/kitsukisaiseikyo-byte/farm-manager/pkg/report/controllerImp"
	reportRepoImp "github.com/kitsukisaiseikyo-byte/farm-manager/pkg/report/repositoryImp"
	reportSvcImp "github.com/kitsukisaiseikyo-byte/farm-manager/pkg/report/serviceImp"

	// Schedule
	schedCtrlImp "github.com/kitsukisaiseikyo-byte/farm-manager/pkg/schedule/controllerImp"
	schedRepoImp "github.com/kitsukisaiseikyo-byte/farm-manager/pkg/schedule/repositoryImp"
	schedSvcImp "github.com/kitsukisaiseikyo-byte/farm-manager/pkg/schedule/serviceImp"

	dashCtrlImp "github.com/kitsukisaiseikyo-byte/farm-manager/pkg/dashboard/controllerImp"
	fieldCtrlImp "github.com/kitsukisaiseikyo-byte/farm-manager/pkg/field/controllerImp"
	fieldSvcImp "github.com/kitsukisaiseikyo-byte/farm-manager/pkg/field/serviceImp"
	healthCtrlImp "github.com/kitsukisaiseikyo-byte/farm-manager/pkg/health/controllerImp"
)

func main() {
	// 1) Config + logger
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	cfg := config.Load()
	logger := cfg.NewLogger()
	slog.SetDefault(logger)
	loc := cfg.Location()
	clock := clockwork.NewRealClock()
	metrics := observability.NewMetrics(nil)

	// 2) DB (sqlite) + automigrate
	db, err := database.OpenSQLite(cfg.DBPath)
	if err != nil {
		logger.Error("open database", "path", cfg.DBPath, "err", err)
		os.Exit(1)
	}
	defer database.Close(db)

	// 3) Reference data (field names)
	fields := fieldSvcImp.LoadFromXLSX(cfg.FieldListPath, cfg.FieldListColumn, logger)

	// 4) Weather
	var forecaster weather.Forecaster
	if cfg.WeatherURL != "" {
		forecaster = weather.NewOpenMeteo(weather.Options{
			BaseURL:   cfg.WeatherURL,
			Latitude:  cfg.Latitude,
			Longitude: cfg.Longitude,
			Timezone:  cfg.Timezone,
			Timeout:   cfg.WeatherTimeout,
		}, metrics, logger)
	} else {
		forecaster = weather.NewStatic(nil)
	}

	// 5) Map catalog
	maps := mapview.New(cfg.MapURLs)
	if cfg.MapProbe {
		maps.Probe(ctx, nil, 3*time.Second, logger)
	}

	// 6) Auth
	authSvc := authSvcImp.NewAuthService(authRepoImp.New(db), authSvcImp.Options{
		Secret: cfg.SessionSecret,
		TTL:    cfg.SessionTTL,
		Clock:  clock,
	}, logger)
	if err := authSvc.EnsureDefaultUser(cfg.DefaultUsername, cfg.DefaultPassword); err != nil {
		logger.Error("seed default user", "err", err)
		os.Exit(1)
	}

	// 7) Repos/Services/Controllers
	images, err := upload.NewStore(cfg.UploadDir, clock, loc, metrics, logger)
	if err != nil {
		logger.Error("upload dir", "dir", cfg.UploadDir, "err", err)
		os.Exit(1)
	}
	rSvc := reportSvcImp.NewReportService(reportRepoImp.New(db), images, metrics, logger)
	sSvc := schedSvcImp.NewScheduleService(schedRepoImp.New(db), logger)

	aCtrl := authCtrlImp.NewAuthController(authSvc, cfg.SessionCookieSecure, logger)
	dCtrl := dashCtrlImp.New(maps)
	sCtrl := schedCtrlImp.New(sSvc)
	rCtrl := reportCtrlImp.New(rSvc, fields, clock, loc)
	fCtrl := fieldCtrlImp.New(fields)
	hCtrl := healthCtrlImp.NewHealthCtrl(db, fields)

	// 8) Echo + router
	renderer, err := view.New(web.FS, forecaster)
	if err != nil {
		logger.Error("parse templates", "err", err)
		os.Exit(1)
	}
	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	router.UseDefaults(e, logger, metrics)
	router.New(
		e,
		middleware.RequireSession(authSvc, logger),
		aCtrl,
		dCtrl,
		sCtrl,
		rCtrl,
		fCtrl,
		hCtrl,
		promhttp.Handler(),
		echo.MustSubFS(web.FS, "static"),
	)

	// 9) Start + graceful shutdown
	go func() {
		logger.Info("listening", "port", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "err", err)
			stop()
		}
	}()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "err", err)
	}
	logger.Info("bye")
}
