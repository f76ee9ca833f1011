package cmd

import (
	"testing"

	"github.com/ledgerline/sheetsnap/config"
)

func resetConfigSetFlags(t *testing.T) {
	origOut := configSetOut
	t.Cleanup(func() { configSetOut = origOut })
	configSetOut = ""
}

func TestConfigSetAndReset(t *testing.T) {
	resetFlags(t)
	resetConfigSetFlags(t)

	spreadsheetID = "sheet-id"
	exportFormat = "gviz"
	configSetOut = "dist/report-data.json"

	if err := runConfigSet(configSetCmd, nil); err != nil {
		t.Fatalf("runConfigSet failed: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := config.Config{SpreadsheetID: "sheet-id", Format: "gviz", Out: "dist/report-data.json"}
	if cfg != want {
		t.Fatalf("stored defaults = %+v, want %+v", cfg, want)
	}

	if err := runConfigReset(configResetCmd, nil); err != nil {
		t.Fatalf("runConfigReset failed: %v", err)
	}
	cfg, err = config.Load()
	if err != nil {
		t.Fatalf("Load after reset failed: %v", err)
	}
	if cfg != (config.Config{}) {
		t.Fatalf("expected zero defaults after reset, got %+v", cfg)
	}
}

func TestConfigSet_MergesWithStoredValues(t *testing.T) {
	resetFlags(t)
	resetConfigSetFlags(t)

	if err := config.Save(config.Config{SpreadsheetID: "keep-me", Format: "csv"}); err != nil {
		t.Fatalf("setup defaults file: %v", err)
	}
	configSetOut = "dist/new-out.json"

	if err := runConfigSet(configSetCmd, nil); err != nil {
		t.Fatalf("runConfigSet failed: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SpreadsheetID != "keep-me" || cfg.Format != "csv" || cfg.Out != "dist/new-out.json" {
		t.Fatalf("unexpected merge result %+v", cfg)
	}
}

func TestConfigSet_RejectsUnknownFormat(t *testing.T) {
	resetFlags(t)
	resetConfigSetFlags(t)

	exportFormat = "tsv"
	if err := runConfigSet(configSetCmd, nil); err == nil {
		t.Fatal("expected error for unsupported format")
	}
	cfg, err := config.Load()
	if err != nil || cfg != (config.Config{}) {
		t.Fatalf("rejected set must not write defaults, got %+v, %v", cfg, err)
	}
}

func TestConfigSet_NothingToSet(t *testing.T) {
	resetFlags(t)
	resetConfigSetFlags(t)

	if err := runConfigSet(configSetCmd, nil); err == nil {
		t.Fatal("expected error when no flags are given")
	}
}
