package snapshot

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ledgerline/sheetsnap/sheet"
)

// FetchFunc downloads and parses one tab into records.
type FetchFunc func(ctx context.Context, tab string) ([]sheet.Record, error)

// Build fetches every configured tab concurrently and assembles the snapshot.
// The fan-out is unordered and the join waits for every fetch; the first
// error fails the whole build and no partial snapshot is produced.
func Build(ctx context.Context, spreadsheetID string, tabs []sheet.TabMapping, fetch FetchFunc, now time.Time) (*Snapshot, error) {
	results := make([][]sheet.Record, len(tabs))

	var g errgroup.Group
	for i, tab := range tabs {
		i, tab := i, tab
		g.Go(func() error {
			recs, err := fetch(ctx, tab.Name)
			if err != nil {
				return fmt.Errorf("tab %q: %w", tab.Name, err)
			}
			results[i] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sheets := make(map[string][]sheet.Record, len(tabs))
	for i, tab := range tabs {
		sheets[tab.Key] = results[i]
	}

	year, quarter := QuarterOf(now)
	return &Snapshot{
		Meta: Meta{
			GeneratedAt:   now.UTC(),
			SpreadsheetID: spreadsheetID,
			Quarter:       QuarterLabel(year, quarter),
			Year:          year,
			QuarterNum:    quarter,
			SchemaVersion: SchemaVersion,
		},
		Sheets: sheets,
		Config: DefaultConfig,
	}, nil
}
