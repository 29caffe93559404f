package aoc

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds settings read from the optional YAML config file.
type Config struct {
	// InputDir is where puzzle inputs are cached, as <year>/<day>.input.
	InputDir string `yaml:"inputDir"`
	// SessionFile holds the adventofcode.com session cookie.
	SessionFile string `yaml:"sessionFile"`
	// Lenient makes solvers drop unrecognized input characters instead of
	// failing.
	Lenient bool `yaml:"lenient"`
	Debug   bool `yaml:"debug"`
}

func DefaultConfig() Config {
	return Config{
		InputDir:    ".",
		SessionFile: filepath.Join(os.Getenv("HOME"), "keys", "aoc.session"),
	}
}

// LoadConfig reads path on top of DefaultConfig. A missing file is not an
// error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if strings.TrimSpace(cfg.InputDir) == "" {
		cfg.InputDir = DefaultConfig().InputDir
	}
	if strings.TrimSpace(cfg.SessionFile) == "" {
		cfg.SessionFile = DefaultConfig().SessionFile
	}
	return cfg, nil
}
