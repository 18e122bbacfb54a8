package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk configuration file.
type Config struct {
	Osascript    string `toml:"osascript"`
	InboxDir     string `toml:"inbox_dir"`
	InboxPattern string `toml:"inbox_pattern"`
	ExportFormat string `toml:"export_format"`
}

// ConfigFilePath returns $XDG_CONFIG_HOME/notesbridge/config.toml, falling
// back to ~/.config.
func ConfigFilePath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "notesbridge", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "notesbridge", "config.toml")
}

// LoadConfig reads the configuration file at path. A missing file yields
// the defaults. NOTESBRIDGE_OSASCRIPT overrides the bridge binary.
func LoadConfig(path string) (Config, error) {
	cfg := Config{
		ExportFormat: "json",
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	if bin := os.Getenv("NOTESBRIDGE_OSASCRIPT"); bin != "" {
		cfg.Osascript = bin
	}
	if cfg.ExportFormat == "" {
		cfg.ExportFormat = "json"
	}
	return cfg, nil
}

// Options converts the file configuration into service options.
func (c Config) Options() []Option {
	var opts []Option
	if c.Osascript != "" {
		opts = append(opts, WithBinary(c.Osascript))
	}
	return opts
}
