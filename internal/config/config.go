// Package config loads, normalizes, and validates slideshow configuration.
//
// Settings come from repository defaults, an optional TOML file, and a pair of
// environment overrides (PORT and SLIDESHOW_SOURCE). Relative paths are
// resolved against the working directory so the server and the manifest
// generator agree on where static/ and slides.json live.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths locates the media tree and the manifest.
type Paths struct {
	StaticDir string `toml:"static_dir"`
	Manifest  string `toml:"manifest"`
}

// Server configures the HTTP front end.
type Server struct {
	Addr   string `toml:"addr"`
	Source string `toml:"source"` // live or manifest
}

// Logging configures log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config encapsulates all configuration values.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Server  Server  `toml:"server"`
	Logging Logging `toml:"logging"`
}

// ImagesDir is the folder tree scanned for slides.
func (c *Config) ImagesDir() string { return filepath.Join(c.Paths.StaticDir, "images") }

// AudioDir holds the background audio candidates.
func (c *Config) AudioDir() string { return filepath.Join(c.Paths.StaticDir, "audio") }

// Load reads path when it exists, applies environment overrides, and returns
// the normalized and validated config together with whether a file was read.
// An empty path means the defaults plus environment.
func Load(path string) (*Config, bool, error) {
	cfg := Default()

	exists := false
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return nil, false, err
		}
		file, err := os.Open(expanded)
		switch {
		case err == nil:
			defer file.Close()
			if err := toml.NewDecoder(file).DisallowUnknownFields().Decode(&cfg); err != nil {
				return nil, false, fmt.Errorf("parse config: %w", err)
			}
			exists = true
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, false, fmt.Errorf("open config: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.normalize(); err != nil {
		return nil, false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, false, err
	}
	return &cfg, exists, nil
}

func (c *Config) applyEnv() {
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		c.Server.Addr = ":" + port
	}
	if src := strings.TrimSpace(os.Getenv("SLIDESHOW_SOURCE")); src != "" {
		c.Server.Source = src
	}
}

func (c *Config) normalize() error {
	var err error
	if c.Paths.StaticDir, err = expandPath(c.Paths.StaticDir); err != nil {
		return err
	}
	if c.Paths.Manifest, err = expandPath(c.Paths.Manifest); err != nil {
		return err
	}
	c.Server.Addr = strings.TrimSpace(c.Server.Addr)
	c.Server.Source = strings.ToLower(strings.TrimSpace(c.Server.Source))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Paths.StaticDir == "" {
		return errors.New("paths.static_dir must be set")
	}
	if c.Paths.Manifest == "" {
		return errors.New("paths.manifest must be set")
	}
	if c.Server.Addr == "" {
		return errors.New("server.addr must be set")
	}
	switch c.Server.Source {
	case "live", "manifest":
	default:
		return fmt.Errorf("server.source: unsupported value %q (want live or manifest)", c.Server.Source)
	}
	switch c.Logging.Format {
	case "auto", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// CreateSample writes a sample configuration file to path.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
