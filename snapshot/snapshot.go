package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ledgerline/sheetsnap/sheet"
)

// SchemaVersion tags the snapshot layout so the reporting frontend can
// detect incompatible artifacts.
const SchemaVersion = "1"

// Meta describes one snapshot run.
type Meta struct {
	GeneratedAt   time.Time `json:"generated_at"`
	SpreadsheetID string    `json:"spreadsheet_id"`
	Quarter       string    `json:"quarter"`
	Year          int       `json:"year"`
	QuarterNum    int       `json:"quarter_num"`
	SchemaVersion string    `json:"schema_version"`
}

// StaticConfig is the hard-coded flag block copied verbatim into every
// snapshot. The reporting frontend reads it alongside the sheet data; none of
// it derives from fetched content.
type StaticConfig struct {
	ShowDrafts      bool   `json:"show_drafts"`
	EnableFilters   bool   `json:"enable_filters"`
	DefaultCurrency string `json:"default_currency"`
	Theme           string `json:"theme"`
}

// DefaultConfig is the config block baked into every snapshot.
var DefaultConfig = StaticConfig{
	ShowDrafts:      false,
	EnableFilters:   true,
	DefaultCurrency: "USD",
	Theme:           "light",
}

// Snapshot is the single aggregated artifact produced per run.
type Snapshot struct {
	Meta   Meta                      `json:"meta"`
	Sheets map[string][]sheet.Record `json:"sheets"`
	Config StaticConfig              `json:"config"`
}

// Write serializes the snapshot and writes it atomically via a temp file and
// rename, creating the containing directory if needed. Returns the number of
// bytes written. A failed run never leaves a partial artifact behind.
func Write(path string, s *Snapshot, pretty bool) (int, error) {
	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(s, "", "  ")
	} else {
		data, err = json.Marshal(s)
	}
	if err != nil {
		return 0, fmt.Errorf("encoding snapshot: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("creating output directory: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return 0, err
	}
	// Remove dest first for Windows compat (os.Rename fails if dest exists on Windows).
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		_ = os.Remove(tmp)
		return 0, err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return 0, err
	}
	return len(data), nil
}
