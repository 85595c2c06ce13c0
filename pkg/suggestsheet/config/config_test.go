package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/suggestsheet-go/pkg/suggestsheet"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suggestsheet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig().Search, cfg.Search)
	assert.True(t, cfg.Browser.Headless)

	opts, err := cfg.FetchOptions()
	require.NoError(t, err)
	assert.Equal(t, 200*time.Millisecond, opts.TypeDelay)
	assert.Equal(t, time.Second, opts.SettleDelay)

	b, err := cfg.BrowserSettings()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, b.WaitTimeout)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
workbook: /data/keywords.xlsx
legacy_header_row: true
sheets: [Main]
browser:
  headless: false
  wait_timeout: 5s
search:
  type_delay: 50ms
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/keywords.xlsx", cfg.Workbook)
	assert.False(t, cfg.Browser.Headless)
	assert.Equal(t, "https://www.google.com", cfg.Search.BaseURL)

	opts, err := cfg.FetchOptions()
	require.NoError(t, err)
	assert.Equal(t, 50*time.Millisecond, opts.TypeDelay)

	p := cfg.ProcessOptions()
	assert.Equal(t, suggestsheet.HeaderBelowDetectedRow, p.HeaderPlacement)
	assert.Equal(t, []string{"Main"}, p.Sheets)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SUGGESTSHEET_WORKBOOK", "/env/book.xlsx")
	t.Setenv("SUGGESTSHEET_HEADLESS", "false")
	t.Setenv("SUGGESTSHEET_BASE_URL", "https://search.example")
	t.Setenv("CHROME_PATH", "/usr/bin/chromium")

	cfg, err := Load(writeConfig(t, "workbook: /file/book.xlsx\n"))
	require.NoError(t, err)

	assert.Equal(t, "/env/book.xlsx", cfg.Workbook)
	assert.False(t, cfg.Browser.Headless)
	assert.Equal(t, "https://search.example", cfg.Search.BaseURL)
	assert.Equal(t, "/usr/bin/chromium", cfg.Browser.ChromePath)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "browser: [not, a, map"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid", func(c *Config) {}, true},
		{"no workbook", func(c *Config) { c.Workbook = "" }, false},
		{"zero timeout", func(c *Config) { c.Browser.WaitTimeout = "0s" }, false},
		{"bad delay", func(c *Config) { c.Search.SettleDelay = "soon" }, false},
		{"negative delay", func(c *Config) { c.Search.TypeDelay = "-1s" }, false},
		{"zero delay", func(c *Config) { c.Search.ResetDelay = "0" }, true},
		{"no selector", func(c *Config) { c.Search.ItemSelector = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Workbook = "book.xlsx"
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
