package controllerImp

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/mapview"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/view"
)

type captureRenderer struct {
	name string
	data view.Data
}

func (r *captureRenderer) Render(_ io.Writer, name string, data any, _ echo.Context) error {
	r.name = name
	r.data = data.(view.Data)
	return nil
}

func TestIndex_MapType(t *testing.T) {
	catalog := mapview.New(map[string]string{
		mapview.NDVI:  "https://maps.test/ndvi",
		mapview.NDWI:  "https://maps.test/ndwi",
		mapview.GNDVI: "https://maps.test/gndvi",
	})

	cases := map[string]string{
		"/?map_type=GNDVI": "https://maps.test/gndvi",
		"/?map_type=NDWI":  "https://maps.test/ndwi",
		"/":                "https://maps.test/ndvi",
		"/?map_type=bogus": "https://maps.test/ndvi",
	}
	for target, want := range cases {
		e := echo.New()
		rr := &captureRenderer{}
		e.Renderer = rr
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, target, nil), rec)

		require.NoError(t, New(catalog).Index(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "dashboard.html", rr.name)
		assert.Equal(t, want, rr.data["MapURL"], target)
		assert.Equal(t, "map", rr.data["Page"])
		assert.Len(t, rr.data["Maps"], 3)
	}
}
