// Package form reads posted form values, failing with 400 when a value is unusable.
package form

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// Required returns the trimmed value of key, or a 400 error when it is absent or blank.
func Required(c echo.Context, key string) (string, error) {
	v := strings.TrimSpace(c.FormValue(key))
	if v == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "missing form field: "+key)
	}
	return v, nil
}

// ID parses key as a positive integer id.
func ID(c echo.Context, key string) (uint, error) {
	raw, err := Required(c, key)
	if err != nil {
		return 0, err
	}
	return parseID(key, raw)
}

// OptionalID is ID for fields that may be left empty.
func OptionalID(c echo.Context, key string) (*uint, error) {
	raw := strings.TrimSpace(c.FormValue(key))
	if raw == "" {
		return nil, nil
	}
	id, err := parseID(key, raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseID(key, raw string) (uint, error) {
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+key)
	}
	return uint(n), nil
}
