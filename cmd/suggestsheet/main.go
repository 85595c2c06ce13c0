// Package main provides the CLI entry point for suggestsheet.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/ukaji3/suggestsheet-go/pkg/suggestsheet"
	"github.com/ukaji3/suggestsheet-go/pkg/suggestsheet/browser"
	"github.com/ukaji3/suggestsheet-go/pkg/suggestsheet/config"
	"github.com/ukaji3/suggestsheet-go/pkg/suggestsheet/journal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath      string
	headless        bool
	chromePath      string
	journalPath     string
	sheets          []string
	dryRun          bool
	legacyHeaderRow bool
	verbose         bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "suggestsheet [workbook.xlsx]",
		Short: "Fill a workbook with search autocomplete suggestions",
		Long: `suggestsheet reads keywords from every sheet of an Excel workbook, types
each one into a search page, and writes the longest and shortest autocomplete
suggestion next to it. The workbook is saved after every row.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "suggestsheet.yaml", "Path to YAML config file")
	rootCmd.Flags().BoolVar(&headless, "headless", true, "Run Chrome without a window")
	rootCmd.Flags().StringVar(&chromePath, "chrome-path", "", "Chrome binary (default: auto-detect)")
	rootCmd.Flags().StringVar(&journalPath, "journal", "", "SQLite file that logs every fetch")
	rootCmd.Flags().StringArrayVar(&sheets, "sheet", nil, "Only process this sheet (repeatable)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Fetch suggestions without saving the workbook")
	rootCmd.Flags().BoolVar(&legacyHeaderRow, "legacy-header-row", false, "Write new column labels one row below the header row (a keyword there overwrites them)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg, args)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	browserCfg, err := cfg.BrowserSettings()
	if err != nil {
		return err
	}
	fetchOpts, err := cfg.FetchOptions()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := &suggestsheet.Runner{
		OpenSession: func(ctx context.Context) (suggestsheet.Session, error) {
			s, err := browser.OpenSession(ctx, browserCfg, fetchOpts, logger)
			if err != nil {
				return nil, err
			}
			return s, nil
		},
		Options: cfg.ProcessOptions(),
		Logger:  logger,
	}

	if cfg.Journal != "" {
		j, err := journal.Open(cfg.Journal)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer j.Close()
		runner.Recorder = j
	}

	logger.Info("Starting run",
		zap.String("workbook", cfg.Workbook),
		zap.Bool("headless", browserCfg.Headless),
		zap.Bool("dry_run", cfg.DryRun))

	res, err := runner.Run(ctx, cfg.Workbook)
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	logger.Info("Done",
		zap.String("workbook", res.BookName),
		zap.Int("sheets", len(res.Sheets)),
		zap.Strings("skipped_sheets", res.SkippedSheets))
	return nil
}

// applyFlags lets explicitly set flags and the positional argument win over
// the config file and environment.
func applyFlags(cmd *cobra.Command, cfg *config.Config, args []string) {
	if len(args) == 1 {
		cfg.Workbook = args[0]
	}
	flags := cmd.Flags()
	if flags.Changed("headless") {
		cfg.Browser.Headless = headless
	}
	if flags.Changed("chrome-path") {
		cfg.Browser.ChromePath = chromePath
	}
	if flags.Changed("journal") {
		cfg.Journal = journalPath
	}
	if flags.Changed("sheet") {
		cfg.Sheets = sheets
	}
	if flags.Changed("dry-run") {
		cfg.DryRun = dryRun
	}
	if flags.Changed("legacy-header-row") {
		cfg.LegacyHeaderRow = legacyHeaderRow
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.DisableStacktrace = true
	if debug {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zc.Build()
}
