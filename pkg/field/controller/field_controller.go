package controller

import "github.com/labstack/echo/v4"

type FieldController interface {
	List(c echo.Context) error
}
