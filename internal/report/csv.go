package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/iprint3022-drewifey/Dirt-Inventory-POS/internal/domain"
)

// csvHeader is the fixed column layout of the report export.
var csvHeader = []string{"Item", "Size", "Qty", "Revenue", "Cost", "Profit"}

// WriteCSV writes the aggregated line groups as CSV: a header row, then one
// row per group. Every value is quoted with embedded quotes doubled, and
// currency columns are formatted to two decimal places.
func WriteCSV(w io.Writer, r Report) error {
	if err := writeRow(w, csvHeader); err != nil {
		return err
	}
	for _, l := range r.Lines {
		row := []string{
			l.Name,
			l.Size,
			strconv.Itoa(l.Qty),
			domain.FormatMoney(l.Revenue),
			domain.FormatMoney(l.Cost),
			domain.FormatMoney(l.Profit),
		}
		if err := writeRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

// writeRow quotes every field unconditionally; encoding/csv only quotes
// when required, which does not match the export format.
func writeRow(w io.Writer, fields []string) error {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	_, err := io.WriteString(w, strings.Join(quoted, ",")+"\n")
	if err != nil {
		return fmt.Errorf("write csv row: %w", err)
	}
	return nil
}

// Filename derives the export file name from the report bounds, e.g.
// report_2025-06-01_to_2025-06-30.csv.
func Filename(start, end time.Time) string {
	return fmt.Sprintf("report_%s_to_%s.csv",
		start.Format("2006-01-02"), end.Format("2006-01-02"))
}
