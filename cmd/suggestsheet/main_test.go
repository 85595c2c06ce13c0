package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/suggestsheet-go/pkg/suggestsheet/config"
)

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "suggestsheet"}
	cmd.Flags().BoolVar(&headless, "headless", true, "")
	cmd.Flags().StringVar(&chromePath, "chrome-path", "", "")
	cmd.Flags().StringVar(&journalPath, "journal", "", "")
	cmd.Flags().StringArrayVar(&sheets, "sheet", nil, "")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "")
	cmd.Flags().BoolVar(&legacyHeaderRow, "legacy-header-row", false, "")
	return cmd
}

func TestApplyFlags_OnlyChangedFlagsOverride(t *testing.T) {
	cmd := newTestCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"--headless=false", "--sheet", "Main", "--sheet", "Extra"}))

	cfg := config.DefaultConfig()
	cfg.Workbook = "from-config.xlsx"
	cfg.Journal = "from-config.sqlite"

	applyFlags(cmd, cfg, []string{"from-arg.xlsx"})

	assert.Equal(t, "from-arg.xlsx", cfg.Workbook)
	assert.False(t, cfg.Browser.Headless)
	assert.Equal(t, []string{"Main", "Extra"}, cfg.Sheets)
	assert.Equal(t, "from-config.sqlite", cfg.Journal)
	assert.False(t, cfg.LegacyHeaderRow)
}

func TestApplyFlags_NoArgsKeepsConfigWorkbook(t *testing.T) {
	cmd := newTestCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"--legacy-header-row", "--dry-run"}))

	cfg := config.DefaultConfig()
	cfg.Workbook = "from-config.xlsx"

	applyFlags(cmd, cfg, nil)

	assert.Equal(t, "from-config.xlsx", cfg.Workbook)
	assert.True(t, cfg.LegacyHeaderRow)
	assert.True(t, cfg.DryRun)
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger(true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(-1))
}
