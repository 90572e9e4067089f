package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadBoardConfigMissingFile(t *testing.T) {
	cfg, err := LoadBoardConfig(filepath.Join(t.TempDir(), "board.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg != DefaultBoardConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadBoardConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	want := BoardConfig{
		CompanyName:  "Thonburi Plant 2",
		Theme:        "dracula",
		AutoSafeHour: 17,
		SloganTh:     "ความปลอดภัยคือหัวใจ",
		SloganEn:     "Zero Harm",
	}
	if err := SaveBoardConfig(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadBoardConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
	}
}

func TestLoadBoardConfigSanitizesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	raw := "company_name: Plant\nauto_safe_hour: 99\ntheme: \"\"\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadBoardConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AutoSafeHour != AutoSafeHour {
		t.Fatalf("out-of-range hour not reset: %d", cfg.AutoSafeHour)
	}
	if cfg.Theme != "default" {
		t.Fatalf("blank theme not defaulted: %q", cfg.Theme)
	}
	if cfg.CompanyName != "Plant" {
		t.Fatalf("company name lost: %q", cfg.CompanyName)
	}
}

func TestLoadBoardConfigMalformedFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	if err := os.WriteFile(path, []byte("{not yaml: ["), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadBoardConfig(path)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if cfg != DefaultBoardConfig() {
		t.Fatalf("malformed file should yield defaults, got %+v", cfg)
	}
}
