// Package config holds the settings shared by every pdfsplit command.
//
// Values come from defaults, then PDFSPLIT_* environment variables, then
// command-line flags, each layer overriding the previous one.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/benedoc-inc/pdfsplit/core/backend"
	"github.com/benedoc-inc/pdfsplit/core/bundle"
	"github.com/benedoc-inc/pdfsplit/types"
)

// EnvPrefix prefixes every environment variable read by FromEnv
const EnvPrefix = "PDFSPLIT_"

// Config is the complete runtime configuration
type Config struct {
	Concurrency    int    // Parallel outputs; 0 means one per CPU
	LogLevel       string // debug, info, warn, error
	ValidationMode string // pdfcpu validation: relaxed or strict
	OutputDir      string // Directory receiving output files
	Archive        bool   // Also pack multi-file splits into a zip archive
	ArchiveName    string // File name of that archive
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Concurrency:    0,
		LogLevel:       "info",
		ValidationMode: backend.ValidationRelaxed,
		OutputDir:      ".",
		Archive:        false,
		ArchiveName:    bundle.DefaultArchiveName,
	}
}

// FromEnv returns Default overridden by PDFSPLIT_* environment variables
func FromEnv() (Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup is FromEnv with an injectable variable lookup
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	if v, ok := get("CONCURRENCY"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, types.WrapError(types.ErrCodeInvalidInput, EnvPrefix+"CONCURRENCY must be an integer", err)
		}
		cfg.Concurrency = n
	}
	if v, ok := get("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := get("VALIDATION"); ok {
		cfg.ValidationMode = v
	}
	if v, ok := get("OUTPUT_DIR"); ok {
		cfg.OutputDir = v
	}
	if v, ok := get("ARCHIVE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, types.WrapError(types.ErrCodeInvalidInput, EnvPrefix+"ARCHIVE must be a boolean", err)
		}
		cfg.Archive = b
	}
	if v, ok := get("ARCHIVE_NAME"); ok {
		cfg.ArchiveName = v
	}

	return cfg, cfg.Validate()
}

// Validate checks value ranges and enumerations
func (c Config) Validate() error {
	if c.Concurrency < 0 {
		return types.NewErrorf(types.ErrCodeInvalidInput, "concurrency must not be negative, got %d", c.Concurrency)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return types.NewErrorf(types.ErrCodeInvalidInput, "unknown log level %q", c.LogLevel)
	}
	switch strings.ToLower(c.ValidationMode) {
	case backend.ValidationRelaxed, backend.ValidationStrict:
	default:
		return types.NewErrorf(types.ErrCodeInvalidInput, "unknown validation mode %q", c.ValidationMode)
	}
	if c.OutputDir == "" {
		return types.NewError(types.ErrCodeInvalidInput, "output directory must not be empty")
	}
	if c.ArchiveName == "" || strings.ContainsAny(c.ArchiveName, `/\`) {
		return types.NewErrorf(types.ErrCodeInvalidInput, "archive name %q must be a plain file name", c.ArchiveName)
	}
	return nil
}
