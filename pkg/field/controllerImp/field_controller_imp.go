package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/field/controller"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/field/service"
)

type FieldCtrl struct{ ref service.FieldReference }

func New(ref service.FieldReference) controller.FieldController { return &FieldCtrl{ref} }

type listResp struct {
	Loaded bool     `json:"loaded"`
	Fields []string `json:"fields"`
}

// List returns the field names offered on the report form.
func (h *FieldCtrl) List(c echo.Context) error {
	return c.JSON(http.StatusOK, listResp{Loaded: h.ref.Loaded(), Fields: h.ref.Names()})
}
