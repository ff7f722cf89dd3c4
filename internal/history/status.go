package history

import (
	"fmt"
	"io"
	"slices"

	"github.com/huangsam/shsat/schema"
)

// PrintHistoryStatus prints history status information.
func PrintHistoryStatus(w io.Writer, status schema.HistoryStatus) {
	_, _ = fmt.Fprintf(w, "History Backend: %s\n", status.Backend)
	_, _ = fmt.Fprintf(w, "Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	_, _ = fmt.Fprintf(w, "Total Estimates: %d\n", status.TotalEstimates)
	if status.TotalEstimates > 0 {
		_, _ = fmt.Fprintf(w, "Last Estimate ID: %d\n", status.LastEstimateID)
		_, _ = fmt.Fprintf(w, "Last Estimate: %s\n", status.LastEstimateTime.Format("2006-01-02 15:04:05"))
		_, _ = fmt.Fprintf(w, "Oldest Estimate: %s\n", status.OldestEstimateTime.Format("2006-01-02 15:04:05"))
	}
	_, _ = fmt.Fprintln(w, "Table Sizes:")
	tables := make([]string, 0, len(status.TableSizes))
	for table := range status.TableSizes {
		tables = append(tables, table)
	}
	slices.Sort(tables)
	for _, table := range tables {
		_, _ = fmt.Fprintf(w, "  %s: %d rows\n", table, status.TableSizes[table])
	}
}
