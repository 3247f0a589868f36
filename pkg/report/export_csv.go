package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/kitsukisaiseikyo-byte/farm-manager/entities"
)

// ExportFilename is the attachment name of the CSV download.
const ExportFilename = "daily_report_sjis.csv"

// ExportHeader is the header row, in export column order.
var ExportHeader = []string{"日付", "圃場", "作業者", "作業内容"}

// WriteCSV writes reports as Shift_JIS (CP932) CSV in the order given.
// Runes the encoding cannot represent are dropped.
func WriteCSV(w io.Writer, reports []entities.Report) error {
	tw := transform.NewWriter(w, newSJISEncoder())
	cw := csv.NewWriter(tw)

	if err := cw.Write(ExportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range reports {
		if err := cw.Write([]string{r.Date, r.FieldName, r.Worker, r.Activity}); err != nil {
			return fmt.Errorf("write report %d: %w", r.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	if err := tw.Close(); err != nil {
		return fmt.Errorf("encode csv: %w", err)
	}
	return nil
}

func newSJISEncoder() transform.Transformer {
	return transform.Chain(runes.Remove(runes.Predicate(notSJIS)), japanese.ShiftJIS.NewEncoder())
}

func notSJIS(r rune) bool {
	if r < utf8.RuneSelf {
		return false
	}
	_, err := japanese.ShiftJIS.NewEncoder().String(string(r))
	return err != nil
}
