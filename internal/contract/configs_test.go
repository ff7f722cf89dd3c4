package contract

import (
	"testing"

	"github.com/huangsam/shsat/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Curve:          "linear",
		Output:         "text",
		Color:          "yes",
		HistoryBackend: "none",
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError string
	}{
		{name: "valid minimal config", mutate: func(*ConfigRawInput) {}},
		{name: "blended curve", mutate: func(in *ConfigRawInput) { in.Curve = "Blended" }},
		{name: "empty curve uses default", mutate: func(in *ConfigRawInput) { in.Curve = "" }},
		{name: "invalid curve", mutate: func(in *ConfigRawInput) { in.Curve = "sigmoid" }, expectError: "invalid curve"},
		{name: "yaml output", mutate: func(in *ConfigRawInput) { in.Output = "YAML" }},
		{name: "invalid output", mutate: func(in *ConfigRawInput) { in.Output = "xml" }, expectError: "invalid output format"},
		{name: "invalid color", mutate: func(in *ConfigRawInput) { in.Color = "maybe" }, expectError: "invalid --color value"},
		{name: "negative width", mutate: func(in *ConfigRawInput) { in.Width = -1 }, expectError: "width cannot be negative"},
		{name: "invalid backend", mutate: func(in *ConfigRawInput) { in.HistoryBackend = "redis" }, expectError: "invalid history backend"},
		{name: "sqlite backend", mutate: func(in *ConfigRawInput) { in.HistoryBackend = "sqlite" }},
		{name: "mixed case backend", mutate: func(in *ConfigRawInput) { in.HistoryBackend = " SQLite " }},
		{
			name:        "mysql without connection",
			mutate:      func(in *ConfigRawInput) { in.HistoryBackend = "mysql" },
			expectError: "history-db-connect is required",
		},
		{
			name: "postgresql with connection",
			mutate: func(in *ConfigRawInput) {
				in.HistoryBackend = "postgresql"
				in.HistoryDBConnect = "host=localhost dbname=shsat"
			},
		},
		{
			name: "custom schools",
			mutate: func(in *ConfigRawInput) {
				in.Schools = []SchoolRawInput{{Name: "A", Cutoff: 500}, {Name: "B", Cutoff: 510}}
			},
		},
		{
			name: "duplicate schools",
			mutate: func(in *ConfigRawInput) {
				in.Schools = []SchoolRawInput{{Name: "A", Cutoff: 500}, {Name: "A", Cutoff: 510}}
			},
			expectError: "invalid schools config",
		},
		{
			name: "school cutoff out of range",
			mutate: func(in *ConfigRawInput) {
				in.Schools = []SchoolRawInput{{Name: "A", Cutoff: 800}}
			},
			expectError: "invalid schools config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, &ConfigRawInput{Color: "no"}))

	assert.Equal(t, schema.LinearCurve, cfg.Curve)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.NoneBackend, cfg.HistoryBackend)
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.False(t, cfg.UseColors)
	assert.Nil(t, cfg.CORSOrigins)
	assert.Equal(t, schema.DefaultSchoolTable().Schools(), cfg.Schools.Schools())
}

func TestProcessAndValidateCustomSchoolsReplaceDefaults(t *testing.T) {
	input := validInput()
	input.Schools = []SchoolRawInput{{Name: "Only School", Cutoff: 480}}
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	require.Equal(t, 1, cfg.Schools.Len())
	_, ok := cfg.Schools.Lookup("Stuyvesant")
	assert.False(t, ok)
	cutoff, ok := cfg.Schools.Lookup("Only School")
	assert.True(t, ok)
	assert.Equal(t, 480, cutoff)
}

func TestProcessAndValidateCORSOrigins(t *testing.T) {
	input := validInput()
	input.CORSOrigins = " http://localhost:3000 , ,https://example.com"
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, []string{"http://localhost:3000", "https://example.com"}, cfg.CORSOrigins)
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	tests := []struct {
		name    string
		backend schema.DatabaseBackend
		conn    string
		wantErr bool
	}{
		{"sqlite empty", schema.SQLiteBackend, "", false},
		{"none empty", schema.NoneBackend, "", false},
		{"mysql valid", schema.MySQLBackend, "root:pw@tcp(localhost:3306)/shsat", false},
		{"mysql missing tcp", schema.MySQLBackend, "root:pw@localhost/shsat", true},
		{"mysql missing db", schema.MySQLBackend, "root:pw@tcp(localhost:3306)", true},
		{"postgres valid", schema.PostgreSQLBackend, "host=localhost port=5432 dbname=shsat", false},
		{"postgres missing host", schema.PostgreSQLBackend, "dbname=shsat", true},
		{"postgres missing dbname", schema.PostgreSQLBackend, "host=localhost", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tt.backend, tt.conn)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{Curve: schema.BlendedCurve, CORSOrigins: []string{"a"}}
	clone := cfg.Clone()
	clone.CORSOrigins[0] = "b"
	clone.Curve = schema.LinearCurve

	assert.Equal(t, "a", cfg.CORSOrigins[0])
	assert.Equal(t, schema.BlendedCurve, cfg.Curve)
}

func TestProcessProfilingConfig(t *testing.T) {
	var profile ProfileConfig
	require.NoError(t, ProcessProfilingConfig(&profile, ""))
	assert.False(t, profile.Enabled)

	require.NoError(t, ProcessProfilingConfig(&profile, "shsat"))
	assert.True(t, profile.Enabled)
	assert.Equal(t, "shsat", profile.Prefix)
}
