package serviceImp

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/field/service"
)

// LoadFailedName is the only entry offered when the spreadsheet cannot be read.
const LoadFailedName = "読み込み失敗"

type fieldRef struct {
	names  []string
	loaded bool
}

// NewStatic builds a reference from an in-memory list (sorted, de-duplicated).
func NewStatic(names []string) service.FieldReference {
	return &fieldRef{names: normalise(names), loaded: true}
}

// LoadFromXLSX reads the distinct values of column from the first sheet.
// Any failure degrades to a single LoadFailedName entry.
func LoadFromXLSX(path, column string, logger *slog.Logger) service.FieldReference {
	if logger == nil {
		logger = slog.Default()
	}
	names, err := readColumn(path, column)
	if err != nil {
		logger.Warn("field list load failed", "path", path, "column", column, "error", err)
		return &fieldRef{names: []string{LoadFailedName}}
	}
	logger.Info("field list loaded", "path", path, "count", len(names))
	return &fieldRef{names: names, loaded: true}
}

func (r *fieldRef) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

func (r *fieldRef) Loaded() bool { return r.loaded }

func readColumn(path, column string) ([]string, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, errors.New("sheet is empty")
	}

	col := -1
	for i, h := range rows[0] {
		if strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF")) == column {
			col = i
			break
		}
	}
	if col == -1 {
		return nil, fmt.Errorf("column %q not found, headers: %v", column, rows[0])
	}

	var raw []string
	for _, row := range rows[1:] {
		if col < len(row) {
			raw = append(raw, row[col])
		}
	}
	names := normalise(raw)
	if len(names) == 0 {
		return nil, fmt.Errorf("column %q has no values", column)
	}
	return names, nil
}

func normalise(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
