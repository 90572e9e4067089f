package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/warit/safeboard/internal/models"
)

// BoardConfig stores operator-tunable board settings. The file is optional;
// a missing file yields DefaultBoardConfig. Values the operator edits on the
// board itself (slogans, announcements, metrics) live in the database, not
// here; this file only seeds and styles a fresh board.
type BoardConfig struct {
	CompanyName  string `yaml:"company_name"`
	Theme        string `yaml:"theme"`
	AutoSafeHour int    `yaml:"auto_safe_hour"`
	SloganTh     string `yaml:"slogan_th"`
	SloganEn     string `yaml:"slogan_en"`
}

// DefaultBoardConfig returns the configuration used when no file exists.
func DefaultBoardConfig() BoardConfig {
	return BoardConfig{
		Theme:        "default",
		AutoSafeHour: AutoSafeHour,
		SloganTh:     "ปลอดภัยไว้ก่อน",
		SloganEn:     "Safety First",
	}
}

// LoadBoardConfig reads and validates the YAML board file. A missing file is
// not an error; invalid fields fall back to their defaults rather than
// failing, matching the board's never-crash posture.
func LoadBoardConfig(path string) (BoardConfig, error) {
	cfg := DefaultBoardConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultBoardConfig(), fmt.Errorf("parse board config: %w", err)
	}

	if cfg.AutoSafeHour < 0 || cfg.AutoSafeHour > 23 {
		cfg.AutoSafeHour = AutoSafeHour
	}
	if strings.TrimSpace(cfg.Theme) == "" {
		cfg.Theme = "default"
	}
	if strings.TrimSpace(cfg.SloganTh) == "" {
		cfg.SloganTh = DefaultBoardConfig().SloganTh
	}
	if strings.TrimSpace(cfg.SloganEn) == "" {
		cfg.SloganEn = DefaultBoardConfig().SloganEn
	}
	return cfg, nil
}

// SeedContent converts the config into the content used for a brand new
// board year.
func (c BoardConfig) SeedContent() models.BoardContent {
	return models.BoardContent{
		SloganTh:    c.SloganTh,
		SloganEn:    c.SloganEn,
		PolicyTitle: "Safety Policy",
	}
}

// SaveBoardConfig writes the configuration back to disk.
func SaveBoardConfig(path string, cfg BoardConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
