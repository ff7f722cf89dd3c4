package history

import (
	"errors"
	"fmt"
	"io"

	"github.com/huangsam/shsat/internal/contract"
	"github.com/huangsam/shsat/internal/parquet"
)

// ExecuteHistoryExport exports the estimate history of the store to Parquet files.
// It writes <outputFile>.estimates.parquet and <outputFile>.school_chances.parquet.
func ExecuteHistoryExport(w io.Writer, store contract.HistoryStore, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}
	if store == nil {
		return errors.New("history store is not initialized")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}
	if status.TotalEstimates == 0 {
		return errors.New("no estimate history found to export")
	}

	_, _ = fmt.Fprintf(w, "Exporting data from %s backend...\n", status.Backend)
	_, _ = fmt.Fprintf(w, "Total estimates: %d\n", status.TotalEstimates)
	_, _ = fmt.Fprintf(w, "Total school records: %d\n", status.TableSizes[schoolChancesTable])

	estimates, err := store.GetAllEstimates()
	if err != nil {
		return fmt.Errorf("failed to retrieve estimates: %w", err)
	}
	chances, err := store.GetAllSchoolChances()
	if err != nil {
		return fmt.Errorf("failed to retrieve school chances: %w", err)
	}

	estimatesFile := outputFile + ".estimates.parquet"
	parquetEstimates := parquet.ConvertEstimateRecords(estimates)
	if err := parquet.WriteEstimatesParquet(parquetEstimates, estimatesFile); err != nil {
		return fmt.Errorf("failed to write estimates: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Exported %d estimates to: %s\n", len(parquetEstimates), estimatesFile)

	chancesFile := outputFile + ".school_chances.parquet"
	parquetChances := parquet.ConvertSchoolChanceRecords(chances)
	if err := parquet.WriteSchoolChancesParquet(parquetChances, chancesFile); err != nil {
		return fmt.Errorf("failed to write school chances: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Exported %d school records to: %s\n", len(parquetChances), chancesFile)

	return nil
}
