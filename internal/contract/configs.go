package contract

import (
	"fmt"
	"strings"

	"github.com/huangsam/shsat/schema"
)

// Default values for configuration.
const (
	DefaultAddr   = ":8080"
	DefaultOutput = schema.TextOut
	DefaultCurve  = schema.LinearCurve
)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// SchoolRawInput holds a single school entry from the YAML config file.
type SchoolRawInput struct {
	Name   string `mapstructure:"name"`
	Cutoff int    `mapstructure:"cutoff"`
}

// Config holds the runtime configuration for the estimator.
// This struct remains the "final, validated" config.
type Config struct {
	Curve      schema.CurveName
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	// MathInput and ELAInput are the raw user inputs before coercion
	MathInput string
	ELAInput  string

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	Addr        string
	CORSOrigins []string

	Schools schema.SchoolTable
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Curve            string `mapstructure:"curve"`
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Width            int    `mapstructure:"width"`
	Color            string `mapstructure:"color"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`

	// --- Fields from estimateCmd.Flags() ---
	Math string `mapstructure:"math"`
	ELA  string `mapstructure:"ela"`

	// --- Fields from serveCmd.Flags() ---
	Addr        string `mapstructure:"addr"`
	CORSOrigins string `mapstructure:"cors-origins"`

	// --- Cutoff table from config file ---
	Schools []SchoolRawInput `mapstructure:"schools"`
}

// Clone returns a copy of the Config struct.
// The school table is immutable and shared.
func (c *Config) Clone() *Config {
	clone := *c
	if c.CORSOrigins != nil {
		clone.CORSOrigins = make([]string, len(c.CORSOrigins))
		copy(clone.CORSOrigins, c.CORSOrigins)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	if err := processSchools(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates the presentation and serving fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.MathInput = input.Math
	cfg.ELAInput = input.ELA

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	cfg.Curve = schema.CurveName(strings.ToLower(strings.TrimSpace(input.Curve)))
	if cfg.Curve == "" {
		cfg.Curve = DefaultCurve
	}
	if _, ok := schema.ValidCurves[cfg.Curve]; !ok {
		return fmt.Errorf("invalid curve '%s'. must be linear, blended", input.Curve)
	}

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, yaml", input.Output)
	}

	cfg.Addr = strings.TrimSpace(input.Addr)
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}

	cfg.CORSOrigins = nil
	for origin := range strings.SplitSeq(input.CORSOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, trimmed)
		}
	}

	return nil
}

// validateBackendConfig validates the history backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(strings.TrimSpace(input.HistoryBackend)))
	if cfg.HistoryBackend == "" {
		cfg.HistoryBackend = schema.NoneBackend
	}
	if _, ok := schema.ValidDatabaseBackends[cfg.HistoryBackend]; !ok {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
	}
	cfg.HistoryDBConnect = input.HistoryDBConnect
	return ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect)
}

// processSchools builds the cutoff table, replacing the defaults when the config file has one.
func processSchools(cfg *Config, input *ConfigRawInput) error {
	if len(input.Schools) == 0 {
		cfg.Schools = schema.DefaultSchoolTable()
		return nil
	}
	entries := make([]schema.SchoolCutoff, len(input.Schools))
	for i, s := range input.Schools {
		entries[i] = schema.SchoolCutoff{Name: s.Name, Cutoff: s.Cutoff}
	}
	table, err := schema.NewSchoolTable(entries)
	if err != nil {
		return fmt.Errorf("invalid schools config: %w", err)
	}
	cfg.Schools = table
	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}
