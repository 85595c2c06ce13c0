// Package config loads suggestsheet settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ukaji3/suggestsheet-go/pkg/suggestsheet"
	"github.com/ukaji3/suggestsheet-go/pkg/suggestsheet/browser"
	"gopkg.in/yaml.v3"
)

// Config holds all suggestsheet configuration.
type Config struct {
	// Workbook is the xlsx file read and rewritten in place.
	Workbook string `yaml:"workbook"`

	// Journal is an optional SQLite file that logs every fetch.
	Journal string `yaml:"journal"`

	// Sheets limits processing to these sheet names.
	Sheets []string `yaml:"sheets"`

	// LegacyHeaderRow writes created column labels one row below the header.
	LegacyHeaderRow bool `yaml:"legacy_header_row"`

	DryRun bool `yaml:"dry_run"`

	Browser BrowserConfig `yaml:"browser"`
	Search  SearchConfig  `yaml:"search"`
}

// BrowserConfig configures the Chrome instance.
type BrowserConfig struct {
	Headless    bool   `yaml:"headless"`
	ChromePath  string `yaml:"chrome_path"`
	UserAgent   string `yaml:"user_agent"`
	WaitTimeout string `yaml:"wait_timeout"`
}

// SearchConfig describes the search page and typing rhythm.
type SearchConfig struct {
	BaseURL       string `yaml:"base_url"`
	InputSelector string `yaml:"input_selector"`
	ItemSelector  string `yaml:"item_selector"`
	TypeDelay     string `yaml:"type_delay"`
	SettleDelay   string `yaml:"settle_delay"`
	ResetDelay    string `yaml:"reset_delay"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	b := browser.DefaultBrowserConfig()
	s := browser.DefaultFetchOptions()
	return &Config{
		Browser: BrowserConfig{
			Headless:    b.Headless,
			UserAgent:   b.UserAgent,
			WaitTimeout: b.WaitTimeout.String(),
		},
		Search: SearchConfig{
			BaseURL:       s.BaseURL,
			InputSelector: s.InputSelector,
			ItemSelector:  s.ItemSelector,
			TypeDelay:     s.TypeDelay.String(),
			SettleDelay:   s.SettleDelay.String(),
			ResetDelay:    s.ResetDelay.String(),
		},
	}
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// defaults only
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("SUGGESTSHEET_WORKBOOK"); path != "" {
		c.Workbook = path
	}
	if path := os.Getenv("SUGGESTSHEET_JOURNAL"); path != "" {
		c.Journal = path
	}
	if url := os.Getenv("SUGGESTSHEET_BASE_URL"); url != "" {
		c.Search.BaseURL = url
	}
	if v := os.Getenv("SUGGESTSHEET_HEADLESS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Browser.Headless = b
		}
	}
	if path := os.Getenv("CHROME_PATH"); path != "" {
		c.Browser.ChromePath = path
	}
}

// Validate checks that the configuration can drive a run.
func (c *Config) Validate() error {
	if c.Workbook == "" {
		return errors.New("workbook path is required")
	}
	if c.Search.BaseURL == "" {
		return errors.New("search.base_url is required")
	}
	if c.Search.InputSelector == "" || c.Search.ItemSelector == "" {
		return errors.New("search selectors are required")
	}
	if _, err := c.BrowserSettings(); err != nil {
		return err
	}
	if _, err := c.FetchOptions(); err != nil {
		return err
	}
	return nil
}

// BrowserSettings converts the browser section into launch settings.
func (c *Config) BrowserSettings() (browser.BrowserConfig, error) {
	timeout, err := parseDuration("browser.wait_timeout", c.Browser.WaitTimeout, true)
	if err != nil {
		return browser.BrowserConfig{}, err
	}
	return browser.BrowserConfig{
		Headless:    c.Browser.Headless,
		ExecPath:    c.Browser.ChromePath,
		UserAgent:   c.Browser.UserAgent,
		WaitTimeout: timeout,
	}, nil
}

// FetchOptions converts the search section into fetcher settings.
func (c *Config) FetchOptions() (browser.FetchOptions, error) {
	opts := browser.FetchOptions{
		BaseURL:       c.Search.BaseURL,
		InputSelector: c.Search.InputSelector,
		ItemSelector:  c.Search.ItemSelector,
	}
	var err error
	if opts.TypeDelay, err = parseDuration("search.type_delay", c.Search.TypeDelay, false); err != nil {
		return opts, err
	}
	if opts.SettleDelay, err = parseDuration("search.settle_delay", c.Search.SettleDelay, false); err != nil {
		return opts, err
	}
	if opts.ResetDelay, err = parseDuration("search.reset_delay", c.Search.ResetDelay, false); err != nil {
		return opts, err
	}
	return opts, nil
}

// ProcessOptions converts processing settings.
func (c *Config) ProcessOptions() suggestsheet.Options {
	opts := suggestsheet.DefaultOptions()
	if c.LegacyHeaderRow {
		opts.HeaderPlacement = suggestsheet.HeaderBelowDetectedRow
	}
	opts.Sheets = c.Sheets
	opts.DryRun = c.DryRun
	return opts
}

// parseDuration parses a duration field. Empty means zero. Timeouts must be
// positive; delays may be zero but not negative.
func parseDuration(field, value string, positive bool) (time.Duration, error) {
	if value == "" {
		if positive {
			return 0, fmt.Errorf("%s is required", field)
		}
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", field, err)
	}
	if d < 0 || (positive && d == 0) {
		return 0, fmt.Errorf("invalid %s: %s", field, value)
	}
	return d, nil
}
