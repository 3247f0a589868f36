package router

import (
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"
)

// New registers every route. Everything except login, health, metrics and
// static assets sits behind gate.
func New(
	e *echo.Echo,
	gate echo.MiddlewareFunc,
	authCtrl interface {
		LoginForm(echo.Context) error
		Login(echo.Context) error
		Logout(echo.Context) error
	},
	dashCtrl interface{ Index(echo.Context) error },
	schedCtrl interface {
		View(echo.Context) error
		Events(echo.Context) error
		Add(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
	},
	reportCtrl interface {
		List(echo.Context) error
		Form(echo.Context) error
		Submit(echo.Context) error
		Delete(echo.Context) error
		Export(echo.Context) error
		Image(echo.Context) error
	},
	fieldCtrl interface{ List(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
	metrics http.Handler,
	static fs.FS,
) *echo.Echo {
	e.GET("/login", authCtrl.LoginForm)
	e.POST("/login", authCtrl.Login)
	e.GET("/health", healthCtrl.Health)
	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics))
	}
	if static != nil {
		e.StaticFS("/static", static)
	}

	app := e.Group("", gate)
	app.GET("/logout", authCtrl.Logout)
	app.GET("/", dashCtrl.Index)

	// Schedule
	app.GET("/schedule", schedCtrl.View)
	app.GET("/api/events", schedCtrl.Events)
	app.POST("/schedule_add", schedCtrl.Add)
	app.POST("/schedule_update", schedCtrl.Update)
	app.POST("/schedule_delete", schedCtrl.Delete)

	// Reports
	app.GET("/report_list", reportCtrl.List)
	app.GET("/export_report", reportCtrl.Export)
	app.GET("/report_add", reportCtrl.Form)
	app.POST("/report_add", reportCtrl.Submit)
	app.POST("/report_delete", reportCtrl.Delete)
	app.GET("/uploads/:filename", reportCtrl.Image)
	app.GET("/api/fields", fieldCtrl.List)
	return e
}
