// Package report holds the encodings a daily report goes through: the
// field_name column codec and the spreadsheet CSV export.
package report

import "strings"

// Unselected is stored in field_name when no plot was chosen.
const Unselected = "未選択"

const (
	fieldSep    = ','
	fieldEscape = '\\'
)

// EncodeFieldNames joins plot names in selection order with ','.
// A ',' or '\' inside a name is prefixed with '\'. An empty selection
// encodes to Unselected, never to "".
func EncodeFieldNames(names []string) string {
	var b strings.Builder
	n := 0
	for _, name := range names {
		if name == "" {
			continue
		}
		if n > 0 {
			b.WriteRune(fieldSep)
		}
		for _, r := range name {
			if r == fieldSep || r == fieldEscape {
				b.WriteRune(fieldEscape)
			}
			b.WriteRune(r)
		}
		n++
	}
	if n == 0 {
		return Unselected
	}
	return b.String()
}

// DecodeFieldNames reverses EncodeFieldNames. Unselected and "" decode to nil.
func DecodeFieldNames(s string) []string {
	if s == "" || s == Unselected {
		return nil
	}
	var (
		out     []string
		cur     strings.Builder
		escaped bool
	)
	for _, r := range s {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == fieldEscape:
			escaped = true
		case r == fieldSep:
			out = append(out, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	if escaped {
		cur.WriteRune(fieldEscape)
	}
	out = append(out, cur.String())
	return out
}
