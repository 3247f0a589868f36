package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/form"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/schedule/controller"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/schedule/service"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/view"
)

const schedulePath = "/schedule"

type SchedCtrl struct{ svc service.ScheduleService }

func New(svc service.ScheduleService) controller.ScheduleController { return &SchedCtrl{svc} }

func (h *SchedCtrl) View(c echo.Context) error {
	return c.Render(http.StatusOK, "schedule.html", view.Data{"Page": "schedule"})
}

func (h *SchedCtrl) Events(c echo.Context) error {
	out, err := h.svc.Feed()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SchedCtrl) Add(c echo.Context) error {
	title, err := form.Required(c, "title")
	if err != nil {
		return err
	}
	start, err := form.Required(c, "start_date")
	if err != nil {
		return err
	}
	if _, err := h.svc.Create(title, start); err != nil {
		return mapErr(err)
	}
	return c.Redirect(http.StatusFound, schedulePath)
}

func (h *SchedCtrl) Update(c echo.Context) error {
	id, err := form.ID(c, "id")
	if err != nil {
		return err
	}
	title, err := form.Required(c, "title")
	if err != nil {
		return err
	}
	if err := h.svc.Rename(id, title); err != nil {
		return mapErr(err)
	}
	return c.Redirect(http.StatusFound, schedulePath)
}

func (h *SchedCtrl) Delete(c echo.Context) error {
	id, err := form.ID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(id); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, schedulePath)
}

func mapErr(err error) error {
	if errors.Is(err, service.ErrValidation) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return err
}
