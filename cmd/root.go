package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ledgerline/sheetsnap/client"
	"github.com/ledgerline/sheetsnap/config"
	"github.com/ledgerline/sheetsnap/sheet"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	spreadsheetID string
	exportFormat  string
	fetchTimeout  time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "sheetsnap",
	Short:         "sheetsnap — build report-data snapshots from spreadsheet tabs",
	Version:       Version,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(loadDotenv)
	rootCmd.PersistentFlags().StringVar(&spreadsheetID, "spreadsheet-id", "", "Source spreadsheet ID (env: SHEETSNAP_SPREADSHEET_ID)")
	rootCmd.PersistentFlags().StringVar(&exportFormat, "format", "", "Export format: csv or gviz (env: SHEETSNAP_FORMAT, default csv)")
	rootCmd.PersistentFlags().DurationVar(&fetchTimeout, "timeout", 60*time.Second, "Per-request deadline for export fetches")
}

// loadDotenv picks up a .env in the working directory, the usual home of
// SHEETSNAP_SPREADSHEET_ID in CI checkouts. A missing file is fine.
func loadDotenv() {
	_ = godotenv.Load()
}

func resolveSpreadsheetID() (string, error) {
	if spreadsheetID != "" {
		return spreadsheetID, nil
	}
	if v := os.Getenv("SHEETSNAP_SPREADSHEET_ID"); v != "" {
		return v, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("loading defaults file: %w", err)
	}
	if cfg.SpreadsheetID != "" {
		return cfg.SpreadsheetID, nil
	}
	return "", fmt.Errorf("no spreadsheet ID: set --spreadsheet-id, SHEETSNAP_SPREADSHEET_ID, or spreadsheet_id in the defaults file")
}

func resolveFormat() (sheet.Format, error) {
	v := exportFormat
	if v == "" {
		v = os.Getenv("SHEETSNAP_FORMAT")
	}
	if v == "" {
		cfg, err := config.Load()
		if err != nil {
			return "", fmt.Errorf("loading defaults file: %w", err)
		}
		v = cfg.Format
	}
	if v == "" {
		v = string(sheet.FormatCSV)
	}
	f := sheet.Format(v)
	if _, err := sheet.ParserFor(f); err != nil {
		return "", err
	}
	return f, nil
}

func resolveExportURL() string {
	// Empty selects the client's default public endpoint; the override exists
	// for tests and mirrors.
	return os.Getenv("SHEETSNAP_EXPORT_URL")
}

func newExportClient() *client.Client {
	c := client.New(resolveExportURL())
	c.UserAgent = "sheetsnap/" + Version
	if fetchTimeout > 0 {
		c.HTTPClient.Timeout = fetchTimeout
	}
	return c
}

// cmdContext returns the command's context, falling back to Background when
// the command is invoked outside Execute (tests call RunE directly).
func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// preflightError prints the diagnostic and maps a configuration problem to
// exit code 2, before any network activity.
func preflightError(err error) error {
	fmt.Fprintln(os.Stderr, err)
	return &ExitError{Code: 2}
}

func Execute() error {
	return rootCmd.Execute()
}
