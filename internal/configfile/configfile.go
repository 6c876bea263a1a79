// Package configfile reads and writes the bugrep configuration file: a TOML
// file with a [core] section holding the author name, the store path, and
// the output directory for rendered documents.
package configfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	ConfigFileName = "config.toml"

	// DefaultDir is where the config lives relative to the working
	// directory unless --config points elsewhere.
	DefaultDir = ".bugrep"
)

// Core is the [core] section.
type Core struct {
	Author   string `toml:"author"`
	XLSX     string `toml:"xlsx"`
	OutputMD string `toml:"output_md"`
}

// Config is the full configuration file.
type Config struct {
	Core Core `toml:"core"`
}

// Default returns the config used when no file exists yet. Author has no
// sensible default and stays empty until the bootstrap prompt fills it.
func Default() *Config {
	return &Config{
		Core: Core{
			XLSX:     "bugs.xlsx",
			OutputMD: "reports",
		},
	}
}

// Path returns the config file location under dir.
func Path(dir string) string {
	return filepath.Join(dir, ConfigFileName)
}

// Load reads the config under dir. A missing file returns (nil, nil);
// anything else that prevents reading is a configuration error and fatal to
// startup.
func Load(dir string) (*Config, error) {
	path := Path(dir)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes the config under dir, creating the directory if needed.
func (c *Config) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(dir), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// MissingKeys lists the [core] keys that are still empty and need the
// one-time bootstrap prompt.
func (c *Config) MissingKeys() []string {
	var missing []string
	if c.Core.Author == "" {
		missing = append(missing, "author")
	}
	if c.Core.XLSX == "" {
		missing = append(missing, "xlsx")
	}
	if c.Core.OutputMD == "" {
		missing = append(missing, "output_md")
	}
	return missing
}

// Get returns the value of one dotted key (e.g. "core.author").
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "core.author":
		return c.Core.Author, nil
	case "core.xlsx":
		return c.Core.XLSX, nil
	case "core.output_md":
		return c.Core.OutputMD, nil
	}
	return "", fmt.Errorf("unknown config key: %s", key)
}

// Set assigns one dotted key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "core.author":
		c.Core.Author = value
	case "core.xlsx":
		c.Core.XLSX = value
	case "core.output_md":
		c.Core.OutputMD = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// Keys lists the known dotted keys in display order.
func Keys() []string {
	return []string{"core.author", "core.xlsx", "core.output_md"}
}
