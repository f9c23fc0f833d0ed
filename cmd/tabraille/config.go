package main

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the settings of the command line tool.
type Config struct {
	Format string `yaml:"format" env:"TABRAILLE_FORMAT" env-default:"unicode"`
	Table  string `yaml:"table"  env:"TABRAILLE_TABLE"`
	Trace  string `yaml:"trace"  env:"TABRAILLE_TRACE"  env-default:"error"`
}

// LoadConfig reads the configuration from a YAML file, if path is given,
// else from environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		return &cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return &cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.Format {
	case formatUnicode, formatBRF, formatJSON:
		return nil
	}
	return fmt.Errorf("config: unknown output format %q", cfg.Format)
}
