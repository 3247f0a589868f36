package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/mapview"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/view"
)

type MapCatalog interface {
	Entries() []mapview.Entry
	Lookup(mapType string) (mapview.Entry, bool)
}

type DashboardCtrl struct{ maps MapCatalog }

func New(maps MapCatalog) *DashboardCtrl { return &DashboardCtrl{maps} }

// Index renders the map selected by ?map_type, falling back to the default index.
func (h *DashboardCtrl) Index(c echo.Context) error {
	cur, _ := h.maps.Lookup(c.QueryParam("map_type"))
	return c.Render(http.StatusOK, "dashboard.html", view.Data{
		"Page":       "map",
		"Maps":       h.maps.Entries(),
		"CurrentMap": cur.Type,
		"MapURL":     cur.URL,
	})
}
