// Package config loads xlc settings from xlc.toml or xlc.yaml and from
// XLC_* environment variables. Command-line flags are applied on top by
// the caller.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"xlc/internal/trace"
)

// ColorMode: режим раскраски вывода.
type ColorMode string

const (
	ColorAuto ColorMode = "auto"
	ColorOn   ColorMode = "on"
	ColorOff  ColorMode = "off"
)

func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ColorAuto, ColorOn, ColorOff:
		return m, nil
	case "":
		return ColorAuto, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (want auto, on or off)", s)
	}
}

// Config is the merged configuration. Zero values mean "not set".
type Config struct {
	Color          ColorMode `toml:"color" yaml:"color"`
	MaxDiagnostics int       `toml:"max_diagnostics" yaml:"max_diagnostics"`
	TraceLevel     string    `toml:"trace_level" yaml:"trace_level"`
	CacheDir       string    `toml:"cache_dir" yaml:"cache_dir"`
	Jobs           int       `toml:"jobs" yaml:"jobs"`

	// Path файла, из которого прочитана конфигурация; пусто, если файла нет.
	Path string `toml:"-" yaml:"-"`
}

// FileNames are looked up in this order in every directory.
var FileNames = []string{"xlc.toml", "xlc.yaml", "xlc.yml"}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Color:          ColorAuto,
		MaxDiagnostics: 100,
		TraceLevel:     trace.LevelOff.String(),
	}
}

// Find walks up from startDir looking for one of FileNames.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, true, nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads the configuration file at path (format by extension) on top
// of Default. An empty path means: search upwards from the working
// directory. Environment overrides are applied last.
func Load(path string) (Config, error) {
	return load(path, os.LookupEnv)
}

func load(path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if path == "" {
		found, ok, err := Find(".")
		if err != nil {
			return cfg, err
		}
		if ok {
			path = found
		}
	}
	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return cfg, err
		}
		cfg.Path = path
	}
	if err := ApplyEnv(&cfg, lookup); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func decodeFile(path string, cfg *Config) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		meta, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
		}
	case ".yaml", ".yml":
		// #nosec G304 -- path comes from the command line or Find
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		// пустой файл не ошибка
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("%s: failed to parse YAML: %w", path, err)
		}
	default:
		return fmt.Errorf("%s: unsupported config format %q", path, ext)
	}
	return nil
}

// ApplyEnv overrides cfg from XLC_* variables. lookup is os.LookupEnv in
// production and a map in tests.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup("XLC_COLOR"); ok {
		m, err := ParseColorMode(v)
		if err != nil {
			return fmt.Errorf("XLC_COLOR: %w", err)
		}
		cfg.Color = m
	}
	if v, ok := lookup("XLC_MAX_DIAGNOSTICS"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("XLC_MAX_DIAGNOSTICS: %w", err)
		}
		cfg.MaxDiagnostics = n
	}
	if v, ok := lookup("XLC_TRACE"); ok {
		cfg.TraceLevel = strings.TrimSpace(v)
	}
	if v, ok := lookup("XLC_CACHE_DIR"); ok {
		cfg.CacheDir = strings.TrimSpace(v)
	}
	if v, ok := lookup("XLC_JOBS"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("XLC_JOBS: %w", err)
		}
		cfg.Jobs = n
	}
	return nil
}

// Validate checks value ranges and normalises empty fields.
func (c *Config) Validate() error {
	m, err := ParseColorMode(string(c.Color))
	if err != nil {
		return err
	}
	c.Color = m
	if c.MaxDiagnostics < 0 {
		return fmt.Errorf("max_diagnostics must be >= 0, got %d", c.MaxDiagnostics)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must be >= 0, got %d", c.Jobs)
	}
	if c.TraceLevel == "" {
		c.TraceLevel = trace.LevelOff.String()
	}
	if _, err := trace.ParseLevel(c.TraceLevel); err != nil {
		return fmt.Errorf("trace_level: %w", err)
	}
	return nil
}
