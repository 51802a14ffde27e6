package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// config holds fitdump's defaults (SPEC_FULL §10.3), loadable from a TOML
// file and overridable by flags. It carries the spec §9 Open Question's
// LocalDateTime offset default so operators can pin it to their own
// device's recorded local offset instead of accepting the spec's 0.
type config struct {
	OutputFormat       string `toml:"output_format"`
	IncludeUnknown     bool   `toml:"include_unknown"`
	LocalOffsetSeconds int64  `toml:"local_offset_seconds"`
}

func defaultConfig() config {
	return config{OutputFormat: "table"}
}

// loadConfig reads a TOML config file at path, if it exists. A missing
// file is not an error: fitdump falls back to its defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
