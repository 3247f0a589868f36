package controller

import "github.com/labstack/echo/v4"

type ReportController interface {
	List(c echo.Context) error
	Form(c echo.Context) error
	Submit(c echo.Context) error
	Delete(c echo.Context) error
	Export(c echo.Context) error
	Image(c echo.Context) error
}
