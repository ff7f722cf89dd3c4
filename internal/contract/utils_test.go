package contract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/shsat/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetColorLabel(t *testing.T) {
	tests := []struct {
		name  string
		class schema.Classification
	}{
		{"red", schema.ClassRed},
		{"orange", schema.ClassOrange},
		{"yellow", schema.ClassYellow},
		{"green", schema.ClassGreen},
		{"unknown", schema.Classification("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetColorLabel(tt.class, "546")
			// Should contain the plain text
			assert.Contains(t, result, "546")
		})
	}
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path returns stdout", func(t *testing.T) {
		file, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, file)
	})

	t.Run("valid path creates file", func(t *testing.T) {
		tempFile := filepath.Join(t.TempDir(), "test_output.txt")

		file, err := SelectOutputFile(tempFile)
		require.NoError(t, err)
		assert.NotNil(t, file)
		_ = file.Close()

		_, err = os.Stat(tempFile)
		assert.NoError(t, err)
	})
}

func TestGetHistoryDBFilePath(t *testing.T) {
	path := GetHistoryDBFilePath()
	assert.NotEmpty(t, path)
	assert.Contains(t, path, ".shsat_history.db")

	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, homeDir), "path %s should start with home dir %s", path, homeDir)
}

func TestTruncateName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		expected string
	}{
		{"fits", "Stuyvesant", 20, "Stuyvesant"},
		{"exact", "Stuyvesant", 10, "Stuyvesant"},
		{"truncated", "HS Math, Science & Engineering (HSMSE)", 12, "HS Math, ..."},
		{"tiny width untouched", "Stuyvesant", 3, "Stuyvesant"},
		{"short width", "Queens Science @ York", 8, "Queen..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateName(tt.input, tt.maxWidth))
		})
	}
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "YES", "true", "1"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.True(t, v, s)
	}
	for _, s := range []string{"no", "False", "0"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.False(t, v, s)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

func TestParseRawScore(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"40", 40},
		{"  45", 45},
		{"+12", 12},
		{"-3", -3},
		{"12abc", 12},
		{"3.9", 3},
		{"57 correct", 57},
		{"abc", 0},
		{"", 0},
		{"-", 0},
		{" ", 0},
		{"0", 0},
		{"060", 60},
		{"99999999999999999999", 2147483647},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseRawScore(tt.input))
		})
	}
}
