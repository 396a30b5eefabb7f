package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/iprint3022-drewifey/Dirt-Inventory-POS/internal/domain"
	"github.com/iprint3022-drewifey/Dirt-Inventory-POS/internal/report"
)

const dateLayout = "2006-01-02"

func newReportCmd(a *app) *cobra.Command {
	var (
		rangeName string
		startStr  string
		endStr    string
		csvPath   string
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Aggregate sales over a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			start, end, err := resolveRange(rangeName, startStr, endStr, now)
			if err != nil {
				return err
			}
			r := report.Aggregate(a.store.Transactions(), start, end, now)

			cmd.Printf("range    %s to %s\n", r.Start.Format(dateLayout), r.End.Format(dateLayout))
			cmd.Println("subtotal", domain.FormatMoney(r.Totals.Subtotal))
			cmd.Println("tax     ", domain.FormatMoney(r.Totals.Tax))
			cmd.Println("total   ", domain.FormatMoney(r.Totals.Total))
			cmd.Println("cogs    ", domain.FormatMoney(r.Totals.COGS))
			cmd.Println("profit  ", domain.FormatMoney(r.Totals.Profit))
			cmd.Println("cash    ", domain.FormatMoney(r.Totals.CashTotal))
			cmd.Println("card    ", domain.FormatMoney(r.Totals.CardTotal))
			if len(r.TopSellers) > 0 {
				cmd.Println("top sellers:")
				for i, l := range r.TopSellers {
					label := l.Name
					if l.Size != "" {
						label += " (" + l.Size + ")"
					}
					cmd.Printf("  %d. %s  %s, %d sold\n", i+1, label, domain.FormatMoney(l.Revenue), l.Qty)
				}
			}

			if cmd.Flags().Changed("csv") {
				path := strings.TrimSpace(csvPath)
				if path == "" {
					path = report.Filename(r.Start, r.End)
				}
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("create csv: %w", err)
				}
				defer f.Close()
				if err := report.WriteCSV(f, r); err != nil {
					return err
				}
				cmd.Println("wrote", path)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&rangeName, "range", string(report.PresetToday), "preset range: today, yesterday, last7, month")
	cmd.Flags().StringVar(&startStr, "start", "", "custom range start, YYYY-MM-DD")
	cmd.Flags().StringVar(&endStr, "end", "", "custom range end, YYYY-MM-DD")
	cmd.Flags().StringVar(&csvPath, "csv", "", "write CSV to PATH (empty for the default filename)")
	cmd.Flags().Lookup("csv").NoOptDefVal = " "
	return cmd
}

// resolveRange prefers explicit bounds over the preset. A missing bound
// comes back zero and the aggregator falls back to today for it.
func resolveRange(preset, startStr, endStr string, now time.Time) (time.Time, time.Time, error) {
	if startStr == "" && endStr == "" {
		start, end := report.PresetRange(report.Preset(preset), now)
		return start, end, nil
	}
	var start, end time.Time
	var err error
	if startStr != "" {
		start, err = time.ParseInLocation(dateLayout, startStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q", startStr)
		}
	}
	if endStr != "" {
		end, err = time.ParseInLocation(dateLayout, endStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q", endStr)
		}
	}
	return start, end, nil
}
