package controller

import "github.com/labstack/echo/v4"

type ScheduleController interface {
	View(c echo.Context) error
	Events(c echo.Context) error
	Add(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}
