package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerline/sheetsnap/sheet"
)

var sheetsCmd = &cobra.Command{
	Use:   "sheets",
	Short: "Print the configured tab → snapshot-key table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, t := range sheet.Tabs {
			fmt.Printf("%-12s %s\n", t.Key, t.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sheetsCmd)
}
