package view

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/middleware"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/weather"
)

// Data is the payload handlers pass to c.Render.
type Data map[string]any

// Pages rendered inside the shared layout.
var layoutPages = []string{
	"dashboard.html",
	"schedule.html",
	"report_list.html",
	"report_form.html",
}

// Pages rendered on their own.
var standalonePages = []string{
	"login.html",
}

// Renderer implements echo.Renderer. Layout pages get the weather forecast
// and the signed-in user added to their data on every render.
type Renderer struct {
	pages      map[string]*template.Template
	standalone map[string]bool
	forecaster weather.Forecaster
}

func New(files fs.FS, forecaster weather.Forecaster) (*Renderer, error) {
	if forecaster == nil {
		forecaster = weather.NewStatic(nil)
	}
	r := &Renderer{
		pages:      map[string]*template.Template{},
		standalone: map[string]bool{},
		forecaster: forecaster,
	}
	for _, p := range layoutPages {
		t, err := template.New(p).Funcs(funcs).ParseFS(files, "templates/layout.html", "templates/"+p)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		r.pages[p] = t
	}
	for _, p := range standalonePages {
		t, err := template.New(p).Funcs(funcs).ParseFS(files, "templates/"+p)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		r.pages[p] = t
		r.standalone[p] = true
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	d, _ := data.(Data)
	if d == nil {
		d = Data{}
	}
	if r.standalone[name] {
		return t.ExecuteTemplate(w, name, d)
	}

	page := Data{"Page": ""}
	for k, v := range d {
		page[k] = v
	}
	if c != nil {
		page["Weather"] = r.forecaster.Forecast(c.Request().Context())
		if u, ok := middleware.CurrentUser(c); ok {
			page["User"] = u
		}
	}
	return t.ExecuteTemplate(w, "layout", page)
}

var funcs = template.FuncMap{
	"contains": func(list []string, s string) bool {
		for _, v := range list {
			if v == s {
				return true
			}
		}
		return false
	},
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
	"join": strings.Join,
}
