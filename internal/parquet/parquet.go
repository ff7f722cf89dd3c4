// Package parquet provides data structures and functions for exporting estimate
// history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/shsat/schema"
	"github.com/parquet-go/parquet-go"
)

// Estimate represents a single recorded estimate.
// This struct maps to the shsat_estimates database table.
type Estimate struct {
	EstimateID int64     `parquet:"estimate_id,snappy"`
	CreatedAt  time.Time `parquet:"created_at,snappy"`

	// Curve is the name of the raw-to-scaled curve used
	Curve string `parquet:"curve,snappy,dict"`

	MathRaw    int32 `parquet:"math_raw,snappy"`
	ELARaw     int32 `parquet:"ela_raw,snappy"`
	MathScaled int32 `parquet:"math_scaled,snappy"`
	ELAScaled  int32 `parquet:"ela_scaled,snappy"`
	Composite  int32 `parquet:"composite,snappy"`

	// Percentage is the share of correct answers across both sections
	Percentage float64 `parquet:"percentage,snappy"`

	Percentile string `parquet:"percentile,snappy,dict"`
}

// SchoolChance represents the outlook for one school in a recorded estimate.
// This struct maps to the shsat_school_chances database table.
type SchoolChance struct {
	// EstimateID references the parent estimate
	EstimateID int64  `parquet:"estimate_id,snappy"`
	School     string `parquet:"school,snappy,dict"`
	Cutoff     int32  `parquet:"cutoff,snappy"`
	Chance     int32  `parquet:"chance,snappy"`
	Discovery  string `parquet:"discovery,snappy,dict"`
}

// writeParquet writes rows to a Parquet file whose schema is inferred from T.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	// Close flushes the footer
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WriteEstimatesParquet writes a slice of Estimate structs to a Parquet file.
func WriteEstimatesParquet(data []Estimate, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteSchoolChancesParquet writes a slice of SchoolChance structs to a Parquet file.
func WriteSchoolChancesParquet(data []SchoolChance, outputPath string) error {
	return writeParquet(data, outputPath)
}

// ConvertEstimateRecords converts schema.EstimateRecord to Estimate for Parquet export.
func ConvertEstimateRecords(records []schema.EstimateRecord) []Estimate {
	result := make([]Estimate, len(records))
	for i, r := range records {
		result[i] = Estimate{
			EstimateID: r.EstimateID,
			CreatedAt:  r.CreatedAt,
			Curve:      r.Curve,
			MathRaw:    r.MathRaw,
			ELARaw:     r.ELARaw,
			MathScaled: r.MathScaled,
			ELAScaled:  r.ELAScaled,
			Composite:  r.CompositeScore,
			Percentage: r.Percentage,
			Percentile: r.Percentile,
		}
	}
	return result
}

// ConvertSchoolChanceRecords converts schema.SchoolChanceRecord to SchoolChance for Parquet export.
func ConvertSchoolChanceRecords(records []schema.SchoolChanceRecord) []SchoolChance {
	result := make([]SchoolChance, len(records))
	for i, r := range records {
		result[i] = SchoolChance{
			EstimateID: r.EstimateID,
			School:     r.School,
			Cutoff:     r.Cutoff,
			Chance:     r.Chance,
			Discovery:  r.Discovery,
		}
	}
	return result
}
