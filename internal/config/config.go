// Package config resolves runtime settings from flags, environment variables
// and defaults, in that order of priority.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"

	"github.com/spf13/cobra"
)

// Environment variables read by FromEnv.
const (
	EnvSeed    = "MATHTOOLS_SEED"
	EnvScheme  = "MATHTOOLS_SCHEME"
	EnvVerbose = "MATHTOOLS_VERBOSE"
)

// Flag names read by Resolve.
const (
	FlagSeed    = "seed"
	FlagScheme  = "scheme"
	FlagVerbose = "verbose"
)

// Schemes are the available colour schemes.
var Schemes = []string{"default", "blue", "pink", "yellow"}

// Config holds the settings shared by every command.
type Config struct {
	// Seed for the question generator. 0 seeds from the clock.
	Seed uint64

	// Scheme selects the colour scheme. Default: "default".
	Scheme string

	// Verbose enables debug logging.
	Verbose bool
}

// DefaultConfig returns a Config with defaults.
func DefaultConfig() Config {
	return Config{Scheme: "default"}
}

// FromEnv overlays environment variables on the defaults.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()

	if s := os.Getenv(EnvSeed); s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}
	if s := os.Getenv(EnvScheme); s != "" {
		cfg.Scheme = s
	}
	if v := os.Getenv(EnvVerbose); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvVerbose, err)
		}
		cfg.Verbose = on
	}
	return cfg, nil
}

// AddFlags registers the shared flags on cmd.
func AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().Uint64(FlagSeed, 0, "Random seed, 0 for time-seeded (overrides "+EnvSeed+")")
	cmd.PersistentFlags().String(FlagScheme, "", "Colour scheme: default, blue, pink or yellow (overrides "+EnvScheme+")")
	cmd.PersistentFlags().Bool(FlagVerbose, false, "Enable debug logging (overrides "+EnvVerbose+")")
}

// Resolve returns the configuration using flags set on cmd (highest
// priority), then environment variables, then defaults.
func Resolve(cmd *cobra.Command) (Config, error) {
	cfg, err := FromEnv()
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed(FlagSeed) {
		if cfg.Seed, err = flags.GetUint64(FlagSeed); err != nil {
			return cfg, err
		}
	}
	if flags.Changed(FlagScheme) {
		if cfg.Scheme, err = flags.GetString(FlagScheme); err != nil {
			return cfg, err
		}
	}
	if flags.Changed(FlagVerbose) {
		if cfg.Verbose, err = flags.GetBool(FlagVerbose); err != nil {
			return cfg, err
		}
	}
	return cfg, cfg.Validate()
}

// Validate checks the scheme is known.
func (c Config) Validate() error {
	if !slices.Contains(Schemes, c.Scheme) {
		return fmt.Errorf("unknown colour scheme: %q", c.Scheme)
	}
	return nil
}

// NewLogger returns a text logger writing to w at Warn, or Debug when
// verbose.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
