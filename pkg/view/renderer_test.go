package view

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitsukisaiseikyo-byte/farm-manager/entities"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/middleware"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/weather"
	"github.com/kitsukisaiseikyo-byte/farm-manager/web"
)

func render(t *testing.T, r *Renderer, name string, data Data, setup func(echo.Context)) string {
	t.Helper()
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if setup != nil {
		setup(c)
	}
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, name, data, c))
	return buf.String()
}

func TestRender_LayoutIncludesWeatherAndUser(t *testing.T) {
	r, err := New(web.FS, weather.NewStatic([]weather.DailyForecast{
		{Date: "2026-03-01", MaxTemp: 15.2, MinTemp: 3.4, Symbol: "☀️"},
	}))
	require.NoError(t, err)

	out := render(t, r, "schedule.html", Data{"Page": "schedule"}, func(c echo.Context) {
		middleware.SetUser(c, entities.User{ID: 1, Username: "admin"})
	})
	assert.Contains(t, out, "2026-03-01 ☀️ 15.2/3.4℃")
	assert.Contains(t, out, "admin")
	assert.Contains(t, out, `href="/schedule" class="active"`)
}

func TestRender_EmptyForecast(t *testing.T) {
	r, err := New(web.FS, nil)
	require.NoError(t, err)

	out := render(t, r, "report_list.html", Data{"Page": "report"}, nil)
	assert.Contains(t, out, "天気予報を取得できません")
	assert.Contains(t, out, "日報はまだありません")
}

func TestRender_ReportForm(t *testing.T) {
	r, err := New(web.FS, nil)
	require.NoError(t, err)
	img := "20260301080000_a.png"

	out := render(t, r, "report_form.html", Data{
		"Page":     "report",
		"Today":    "2026-03-01",
		"Fields":   []string{"畑A", "畑B"},
		"Selected": []string{"畑B"},
		"Report":   &entities.Report{ID: 4, Date: "2026-02-28", Activity: "播種", Worker: "山田", ImagePath: &img},
	}, nil)
	assert.Contains(t, out, `name="id" value="4"`)
	assert.Contains(t, out, `value="2026-02-28"`)
	assert.Contains(t, out, `<option value="畑B" selected>`)
	assert.NotContains(t, out, `<option value="畑A" selected>`)
	assert.Contains(t, out, img)
}

func TestRender_LoginStandalone(t *testing.T) {
	r, err := New(web.FS, nil)
	require.NoError(t, err)

	out := render(t, r, "login.html", Data{"Error": "bad", "Username": "<b>"}, nil)
	assert.Contains(t, out, "bad")
	assert.Contains(t, out, "&lt;b&gt;")
	assert.NotContains(t, out, "ログアウト")
}

func TestRender_Unknown(t *testing.T) {
	r, err := New(web.FS, nil)
	require.NoError(t, err)
	var buf bytes.Buffer
	assert.Error(t, r.Render(&buf, "nope.html", nil, nil))
}
