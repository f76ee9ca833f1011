package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/ledgerline/sheetsnap/internal"
	"github.com/ledgerline/sheetsnap/sheet"
	"github.com/ledgerline/sheetsnap/snapshot"
)

var exportCmd = &cobra.Command{
	Use:   "export <snapshot.json> <out.xlsx>",
	Short: "Convert a written snapshot into an Excel workbook",
	Long: `Convert a previously written snapshot JSON into an .xlsx workbook with one
worksheet per configured tab, for offline review. No network access.

Examples:
  sheetsnap export public/report-data.json report.xlsx`,
	Args: cobra.ExactArgs(2),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	inPath, outPath := args[0], args[1]

	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}
	var snap snapshot.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("parsing snapshot %s: %w", inPath, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, tab := range sheet.Tabs {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", tab.Name); err != nil {
				return err
			}
		} else {
			if _, err := f.NewSheet(tab.Name); err != nil {
				return err
			}
		}
		if err := writeWorksheet(f, tab.Name, snap.Sheets[tab.Key]); err != nil {
			return fmt.Errorf("worksheet %q: %w", tab.Name, err)
		}
	}

	if err := f.SaveAs(outPath); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s (%d worksheets, snapshot %s)\n", outPath, len(sheet.Tabs), snap.Meta.Quarter)
	return nil
}

func writeWorksheet(f *excelize.File, name string, records []sheet.Record) error {
	headers := headerOrder(records)
	for c, h := range headers {
		if err := f.SetCellValue(name, internal.ColToLetter(c+1)+"1", h); err != nil {
			return err
		}
	}
	for r, rec := range records {
		for c, h := range headers {
			v, ok := rec[h]
			if !ok {
				continue
			}
			cell := internal.ColToLetter(c+1) + strconv.Itoa(r+2)
			if err := f.SetCellValue(name, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// headerOrder collects the union of record keys in sorted order. Records are
// sparse maps, so the source column order is not recoverable here.
func headerOrder(records []sheet.Record) []string {
	seen := map[string]bool{}
	var headers []string
	for _, rec := range records {
		for k := range rec {
			if !seen[k] {
				seen[k] = true
				headers = append(headers, k)
			}
		}
	}
	sort.Strings(headers)
	return headers
}
