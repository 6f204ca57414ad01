package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/yearpick/internal/calendar"
	"github.com/alexisbeaulieu97/yearpick/internal/config"
	"github.com/alexisbeaulieu97/yearpick/internal/logger"
)

// now is the clock used for the default range.
var now = time.Now

func validateConfigPath(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", abs)
	}

	return nil
}

// loadConfig reads the config file when one is given, falls back to the
// default range otherwise, and applies command-line overrides on top. The
// result is validated once, after the overrides.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	var cfg *config.Config

	if path := strings.TrimSpace(flags.configPath); path != "" {
		if err := validateConfigPath(path); err != nil {
			return nil, err
		}
		loaded, err := config.DecodeFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.Default(calendar.DateOnly(now()))
	}

	override := func(dst *string, value string) {
		if value != "" {
			*dst = value
		}
	}
	override(&cfg.Range.Min, flags.min)
	override(&cfg.Range.Max, flags.max)
	override(&cfg.Initial, flags.initial)
	override(&cfg.Current, flags.current)
	override(&cfg.Selected, flags.selected)
	override(&cfg.Theme, flags.theme)
	override(&cfg.Log.File, flags.logFile)
	if flags.verbose {
		cfg.Log.Level = "debug"
	}
	if flags.confirm {
		cfg.ConfirmOnSelect = true
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// openLogger builds the logger described by cfg. Logs go to the configured
// file, else to fallback; a nil fallback discards them. The returned func
// closes the log file.
func openLogger(cfg *config.Config, fallback io.Writer) (*logger.Logger, func(), error) {
	noop := func() {}

	writer := fallback
	closer := noop
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, noop, fmt.Errorf("open log file: %w", err)
		}
		writer = f
		closer = func() { _ = f.Close() }
	}

	if writer == nil {
		return logger.Nop(), noop, nil
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.Human,
		Writer:        writer,
	})
	if err != nil {
		closer()
		return nil, noop, fmt.Errorf("failed to create logger: %w", err)
	}

	return log, closer, nil
}
