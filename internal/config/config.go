package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"toyrobot/internal/log"
	"toyrobot/internal/simulator"
)

// Config holds the simulator settings. All of it is optional: without a
// config file or environment overrides the defaults reproduce the
// classic 5x5 tabletop with plain "X,Y,F" report lines.
type Config struct {
	Table  TableConfig  `toml:"table"`
	Output OutputConfig `toml:"output"`
}

type TableConfig struct {
	Width  int `toml:"width" env:"TOYROBOT_TABLE_WIDTH" validate:"min=1,max=100"`
	Height int `toml:"height" env:"TOYROBOT_TABLE_HEIGHT" validate:"min=1,max=100"`
}

type OutputConfig struct {
	ReportTemplate string `toml:"report_template" env:"TOYROBOT_REPORT_TEMPLATE" validate:"required"`
	Visual         bool   `toml:"visual" env:"TOYROBOT_VISUAL"`
}

func Default() *Config {
	return &Config{
		Table:  TableConfig{Width: 5, Height: 5},
		Output: OutputConfig{ReportTemplate: simulator.DefaultReportTemplate},
	}
}

// Load builds the effective configuration: defaults, then the TOML file
// at path (if given), then TOYROBOT_* environment overrides, validated
// last.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := toml.Unmarshal(content, cfg); err != nil {
			var derr *toml.DecodeError
			if errors.As(err, &derr) {
				log.Errorf("%s", derr.String())
				row, col := derr.Position()
				return nil, fmt.Errorf("parse config file: error at line %d, column %d", row, col)
			}
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Tabletop returns the table described by the configuration.
func (c *Config) Tabletop() simulator.Table {
	return simulator.Table{Width: c.Table.Width, Height: c.Table.Height}
}
