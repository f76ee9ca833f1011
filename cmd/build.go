package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ledgerline/sheetsnap/config"
	"github.com/ledgerline/sheetsnap/internal"
	"github.com/ledgerline/sheetsnap/sheet"
	"github.com/ledgerline/sheetsnap/snapshot"
)

var (
	buildOut    string
	buildPretty bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Fetch all configured tabs and write the report-data snapshot",
	Long: `Fetch every configured spreadsheet tab, normalize the rows into sparse
records, and write the aggregated snapshot JSON for the reporting frontend.

All tabs are fetched concurrently. Any failure — missing configuration, a
non-success response, an unparseable payload, or a write error — aborts the
run with a non-zero exit status and leaves no partial output file.

Examples:
  sheetsnap build
  sheetsnap build --out dist/report-data.json
  sheetsnap build --format gviz --pretty=false`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "public/report-data.json", "Output path for the snapshot (env: SHEETSNAP_OUT)")
	buildCmd.Flags().BoolVar(&buildPretty, "pretty", true, "Indent the snapshot JSON")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	id, err := resolveSpreadsheetID()
	if err != nil {
		return preflightError(err)
	}
	format, err := resolveFormat()
	if err != nil {
		return preflightError(err)
	}
	out, err := resolveOut(cmd)
	if err != nil {
		return preflightError(err)
	}
	parse, err := sheet.ParserFor(format)
	if err != nil {
		return err
	}

	c := newExportClient()
	fetch := func(ctx context.Context, tab string) ([]sheet.Record, error) {
		raw, err := c.FetchTab(ctx, id, tab, format)
		if err != nil {
			return nil, err
		}
		return parse(raw)
	}

	start := time.Now()
	snap, err := snapshot.Build(cmdContext(cmd), id, sheet.Tabs, fetch, time.Now())
	if err != nil {
		return err
	}

	n, err := snapshot.Write(out, snap, buildPretty)
	if err != nil {
		return err
	}

	for _, tab := range sheet.Tabs {
		fmt.Fprintf(os.Stderr, "  %-12s %4d rows\n", tab.Key, len(snap.Sheets[tab.Key]))
	}
	fmt.Fprintf(os.Stderr, "wrote %s (%s, %s) in %s\n",
		out, internal.FormatBytes(n), snap.Meta.Quarter, time.Since(start).Round(time.Millisecond))
	return nil
}

// resolveOut picks the snapshot path: the --out flag when given, then
// SHEETSNAP_OUT, then the defaults file, then the flag's default value.
func resolveOut(cmd *cobra.Command) (string, error) {
	if cmd.Flags().Changed("out") {
		return buildOut, nil
	}
	if v := os.Getenv("SHEETSNAP_OUT"); v != "" {
		return v, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("loading defaults file: %w", err)
	}
	if cfg.Out != "" {
		return cfg.Out, nil
	}
	return buildOut, nil
}
