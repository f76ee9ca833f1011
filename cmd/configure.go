package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ledgerline/sheetsnap/config"
	"github.com/ledgerline/sheetsnap/sheet"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage operator defaults",
	Long: `Inspect or change the defaults file.

Defaults live in config.yaml under $SHEETSNAP_CONFIG_DIR,
$XDG_CONFIG_HOME/sheetsnap, or ~/.config/sheetsnap, and sit below flags and
environment variables in precedence.

Commands:
  show   Print the stored defaults.
  set    Persist values from the given flags.
  reset  Remove the defaults file.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored defaults",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetOut string

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Persist defaults from the given flags",
	Long: `Persist --spreadsheet-id, --format, and --out as defaults. Only the flags
given are changed; other stored values are kept.

Examples:
  sheetsnap config set --spreadsheet-id 1AbCdEf
  sheetsnap config set --format gviz --out dist/report-data.json`,
	Args: cobra.NoArgs,
	RunE: runConfigSet,
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove the defaults file",
	Args:  cobra.NoArgs,
	RunE:  runConfigReset,
}

func init() {
	configSetCmd.Flags().StringVar(&configSetOut, "out", "", "Default output path for build")
	configCmd.AddCommand(configShowCmd, configSetCmd, configResetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading defaults file: %w", err)
	}
	fmt.Printf("spreadsheet_id: %s\n", cfg.SpreadsheetID)
	fmt.Printf("format:         %s\n", cfg.Format)
	fmt.Printf("out:            %s\n", cfg.Out)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading defaults file: %w", err)
	}

	changed := false
	if spreadsheetID != "" {
		cfg.SpreadsheetID = spreadsheetID
		changed = true
	}
	if exportFormat != "" {
		if _, err := sheet.ParserFor(sheet.Format(exportFormat)); err != nil {
			return err
		}
		cfg.Format = exportFormat
		changed = true
	}
	if configSetOut != "" {
		cfg.Out = configSetOut
		changed = true
	}
	if !changed {
		return fmt.Errorf("nothing to set: pass --spreadsheet-id, --format, or --out")
	}

	if err := config.Save(cfg); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, "defaults saved")
	return nil
}

func runConfigReset(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	if err := config.Delete(); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, "defaults cleared")
	return nil
}
