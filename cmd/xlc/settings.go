package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"xlc/internal/config"
	"xlc/internal/driver"
)

// settings: итоговая конфигурация: файл, затем XLC_*, затем флаги.
type settings struct {
	cfg     config.Config
	color   bool
	quiet   bool
	timings bool
	// pretty | short | json
	diagFormat string
}

type settingsKey struct{}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Root().PersistentFlags()

	cfgPath, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if flags.Changed("color") {
		v, _ := flags.GetString("color")
		if cfg.Color, err = config.ParseColorMode(v); err != nil {
			return nil, err
		}
	}
	if flags.Changed("max-diagnostics") {
		cfg.MaxDiagnostics, _ = flags.GetInt("max-diagnostics")
	}
	if flags.Changed("trace") {
		cfg.TraceLevel, _ = flags.GetString("trace")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &settings{cfg: cfg}
	s.quiet, _ = flags.GetBool("quiet")
	s.timings, _ = flags.GetBool("timings")
	s.diagFormat, _ = flags.GetString("diag-format")
	switch s.diagFormat {
	case "pretty", "short", "json":
	default:
		return nil, fmt.Errorf("unknown diag format: %s", s.diagFormat)
	}
	s.color = useColor(cfg.Color, cmd.ErrOrStderr())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, settingsKey{}, s))
	return s, nil
}

func settingsFrom(cmd *cobra.Command) *settings {
	if s, ok := cmd.Context().Value(settingsKey{}).(*settings); ok {
		return s
	}
	return &settings{cfg: config.Default()}
}

func useColor(mode config.ColorMode, w io.Writer) bool {
	switch mode {
	case config.ColorOn:
		return true
	case config.ColorOff:
		return false
	}
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

// driverOptions собирает driver.Options; кэш открывается только по --cache.
func (s *settings) driverOptions(cmd *cobra.Command, withCache bool) (driver.Options, error) {
	opts := driver.Options{
		MaxDiagnostics: s.cfg.MaxDiagnostics,
		Timings:        s.timings,
		Jobs:           s.cfg.Jobs,
	}
	if !withCache {
		return opts, nil
	}
	var (
		cache *driver.DiskCache
		err   error
	)
	if s.cfg.CacheDir != "" {
		cache, err = driver.NewDiskCache(s.cfg.CacheDir)
	} else {
		cache, err = driver.OpenDiskCache("xlc")
	}
	if err != nil {
		return opts, fmt.Errorf("failed to open cache: %w", err)
	}
	opts.Cache = cache
	return opts, nil
}
