package controllerImp

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/kitsukisaiseikyo-byte/farm-manager/entities"
	fieldsvc "github.com/kitsukisaiseikyo-byte/farm-manager/pkg/field/service"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/form"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/report"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/report/controller"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/report/service"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/upload"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/view"
)

type ReportCtrl struct {
	svc    service.ReportService
	fields fieldsvc.FieldReference
	clock  clockwork.Clock
	loc    *time.Location
}

func New(svc service.ReportService, fields fieldsvc.FieldReference, clock clockwork.Clock, loc *time.Location) controller.ReportController {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if loc == nil {
		loc = time.Local
	}
	return &ReportCtrl{svc: svc, fields: fields, clock: clock, loc: loc}
}

type reportRow struct {
	entities.Report
	Fields []string
}

func (h *ReportCtrl) List(c echo.Context) error {
	list, err := h.svc.List()
	if err != nil {
		return err
	}
	rows := make([]reportRow, 0, len(list))
	for _, r := range list {
		fields := report.DecodeFieldNames(r.FieldName)
		if len(fields) == 0 {
			fields = []string{r.FieldName}
		}
		rows = append(rows, reportRow{Report: r, Fields: fields})
	}
	return c.Render(http.StatusOK, "report_list.html", view.Data{"Page": "report", "Reports": rows})
}

func (h *ReportCtrl) Form(c echo.Context) error {
	data := view.Data{
		"Page":     "report",
		"Fields":   h.fields.Names(),
		"Today":    h.clock.Now().In(h.loc).Format("2006-01-02"),
		"Selected": []string{},
		"Report":   (*entities.Report)(nil),
	}
	if raw := c.QueryParam("id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
		}
		r, err := h.svc.Get(uint(id))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return echo.ErrNotFound
			}
			return err
		}
		selected := report.DecodeFieldNames(r.FieldName)
		data["Report"] = r
		data["Selected"] = selected
		data["Fields"] = formOptions(h.fields.Names(), selected)
	}
	return c.Render(http.StatusOK, "report_form.html", data)
}

// formOptions lists the stored names first, in stored order, then the rest of
// the reference list. Names the reference no longer offers stay selectable and
// a browser re-posts the selection in its original order.
func formOptions(ref, selected []string) []string {
	out := make([]string, 0, len(ref)+len(selected))
	seen := make(map[string]struct{}, len(ref)+len(selected))
	for _, list := range [][]string{selected, ref} {
		for _, n := range list {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	return out
}
