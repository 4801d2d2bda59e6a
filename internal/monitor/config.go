// config.go - optional TOML settings for the interactive monitor

/*
 ####   ##### ####  ####   ####  #   #
 #   #  #     #   # #   # #   #  # #
 ####   ####  #   # ####  #   #   #
 #   #  #     #   # #   # #   #   #
 #   #  ##### ####  ####   ####    #

(c) 2025 - 2026 Zayn Otley
https://github.com/zaynotley/redboy

License: GPLv3 or later
*/

package monitor

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the monitor's optional, on-disk settings. Everything here
// also has a zero-value-safe default, matching the arm_emulator config
// package's "missing file falls back to defaults" behaviour.
type Config struct {
	DefaultROM  string   `toml:"default_rom"`
	TraceOnBoot bool     `toml:"trace_on_boot"`
	Breakpoints []uint32 `toml:"breakpoints"`
}

// LoadConfig reads a TOML settings file. A missing file is not an error; it
// yields a zero-value Config.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("monitor: parse config %s: %w", path, err)
	}
	return cfg, nil
}
