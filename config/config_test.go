package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/carlmjohnson/be"
)

func TestMaskSensitiveValue(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{
			name:     "mask key",
			value:    "abc123def456",
			expected: "abc1********",
		},
		{
			name:     "mask short key",
			value:    "abc",
			expected: "***",
		},
		{
			name:     "empty key",
			value:    "",
			expected: "(not set)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := maskSensitiveValue(tt.value)
			be.Equal(t, tt.expected, result)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "laundrytui.toml")
	contents := `debug = true
data_file = "/tmp/laundry.json"
anthropic_api_key = "sk-test-123456"

[colors]
primary = "#25c9d4"
unpaid = "#e05951"
`
	be.NilErr(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := LoadFile(path)
	be.NilErr(t, err)

	be.True(t, cfg.Debug)
	be.Equal(t, "/tmp/laundry.json", cfg.DataFile)
	be.Equal(t, "sk-test-123456", cfg.AnthropicAPIKey)
	be.Equal(t, "#25c9d4", cfg.Colors.Primary)
	be.Equal(t, "#e05951", cfg.Colors.Unpaid)
	// colors not present in the file stay empty
	be.Equal(t, "", cfg.Colors.Text)
	be.Equal(t, path, cfg.PathUsed())
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	be.Nonzero(t, err)
}

func TestLoadFileInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "laundrytui.toml")
	be.NilErr(t, os.WriteFile(path, []byte("debug = [not toml"), 0o600))

	_, err := LoadFile(path)
	be.Nonzero(t, err)
}

func TestSetConfig(t *testing.T) {
	// Test that SetConfig properly sets up the table rows
	m := NewView()
	testConfig := Config{
		Debug:           true,
		DataFile:        "/tmp/laundry.json",
		AnthropicAPIKey: "sk-test-123456",
	}

	m.SetConfig(testConfig)

	if m.configTable.Rows() == nil {
		t.Error("Expected config table to have rows after SetConfig")
	}
}
