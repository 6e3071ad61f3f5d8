// Package config parses and validates the ratcalc command line.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/agbru/ratcalc/internal/binomial"
	apperrors "github.com/agbru/ratcalc/internal/errors"
	"github.com/agbru/ratcalc/internal/ui"
)

// EnvPrefix prefixes every environment variable read by ParseConfig.
const EnvPrefix = "RATCALC_"

// Defaults applied before any file, environment or flag value.
const (
	DefaultTrials    = 10
	DefaultPNum      = 1
	DefaultPDen      = 6
	DefaultAtLeast   = 1
	DefaultTimeout   = time.Minute
	DefaultPrecision = 6
	DefaultTheme     = "dark"
)

// AppConfig holds the resolved run configuration.
type AppConfig struct {
	// Trials is the number of independent trials n.
	Trials int
	// PNum and PDen form the success probability PNum/PDen.
	PNum, PDen int64
	// AtLeast is the k of the reported P(X >= k).
	AtLeast int
	// Timeout bounds the whole computation.
	Timeout time.Duration
	// Precision is the number of decimal places printed next to fractions.
	Precision int
	// Simulate is the number of Monte-Carlo rounds; 0 disables simulation.
	Simulate int
	// Seed fixes the simulation generator; 0 draws a seed from the OS.
	Seed uint64
	// OutputFile receives the distribution when non-empty.
	OutputFile string
	// MetricsFile receives a Prometheus text exposition when non-empty.
	MetricsFile string
	// ConfigFile is the TOML file consulted for unset values.
	ConfigFile string
	// Completion names a shell whose completion script is printed instead
	// of running a computation.
	Completion string
	// Theme names the color theme of the report (see ui.ThemeNames).
	Theme string

	Verbose bool
	Quiet   bool
	NoColor bool
}

// Default returns the configuration used when nothing is set.
func Default() AppConfig {
	return AppConfig{
		Trials:    DefaultTrials,
		PNum:      DefaultPNum,
		PDen:      DefaultPDen,
		AtLeast:   DefaultAtLeast,
		Timeout:   DefaultTimeout,
		Precision: DefaultPrecision,
		Theme:     DefaultTheme,
	}
}

// ParseConfig builds an AppConfig from args. Values are resolved with the
// priority: flags, then RATCALC_* environment variables, then the TOML file
// named by --config (or RATCALC_CONFIG), then defaults.
//
// flag.ErrHelp is returned unchanged when -h or --help is given; every other
// failure is an apperrors.ConfigError.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	config := Default()

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s [options]\n\n", programName)
		fmt.Fprintln(errorWriter, "Computes the exact binomial distribution of n trials with success probability p-num/p-den.")
		fmt.Fprintln(errorWriter)
		fs.PrintDefaults()
	}

	fs.IntVar(&config.Trials, "trials", config.Trials, "Number of independent trials (0-66).")
	fs.IntVar(&config.Trials, "n", config.Trials, "Number of independent trials (shorthand).")
	fs.Int64Var(&config.PNum, "p-num", config.PNum, "Numerator of the success probability.")
	fs.Int64Var(&config.PDen, "p-den", config.PDen, "Denominator of the success probability.")
	fs.IntVar(&config.AtLeast, "at-least", config.AtLeast, "Report P(X >= k) for this k.")
	fs.IntVar(&config.AtLeast, "k", config.AtLeast, "Report P(X >= k) for this k (shorthand).")
	fs.DurationVar(&config.Timeout, "timeout", config.Timeout, "Maximum time allowed for the computation.")
	fs.IntVar(&config.Precision, "precision", config.Precision, "Decimal places shown next to exact fractions.")
	fs.IntVar(&config.Simulate, "simulate", config.Simulate, "Monte-Carlo rounds used to cross-check the exact result (0 disables).")
	fs.Uint64Var(&config.Seed, "seed", config.Seed, "Seed of the simulation generator (0 for a random seed).")
	fs.StringVar(&config.OutputFile, "output", "", "Write the distribution to this file.")
	fs.StringVar(&config.OutputFile, "o", "", "Write the distribution to this file (shorthand).")
	fs.StringVar(&config.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this file.")
	fs.StringVar(&config.ConfigFile, "config", "", "TOML configuration file.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Enable debug logging and extra output.")
	fs.BoolVar(&config.Verbose, "v", false, "Enable debug logging and extra output (shorthand).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print only the at-least-k probability.")
	fs.BoolVar(&config.Quiet, "q", false, "Print only the at-least-k probability (shorthand).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&config.Theme, "theme", config.Theme, "Color theme: dark, light, orange or none.")
	fs.StringVar(&config.Completion, "completion", "", "Print a completion script for bash, zsh or fish.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return config, err
		}
		return config, apperrors.NewConfigError("%v", err)
	}
	if fs.NArg() > 0 {
		return config, apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
	}

	if !isFlagSet(fs, "config") {
		config.ConfigFile = os.Getenv(EnvPrefix + "CONFIG")
	}
	if config.ConfigFile != "" {
		fc, err := LoadFile(config.ConfigFile)
		if err != nil {
			return config, err
		}
		fc.apply(&config, fs)
	}

	applyEnvOverrides(&config, fs)

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// Validate checks the semantic consistency of the configuration.
func (c AppConfig) Validate() error {
	if c.Trials < 0 || c.Trials > binomial.MaxN {
		return apperrors.NewConfigError("trials must be between 0 and %d, got %d", binomial.MaxN, c.Trials)
	}
	if c.PDen <= 0 {
		return apperrors.NewConfigError("p-den must be positive, got %d", c.PDen)
	}
	if c.PNum < 0 || c.PNum > c.PDen {
		return apperrors.NewConfigError("probability %d/%d is outside [0, 1]", c.PNum, c.PDen)
	}
	if c.AtLeast < 0 || c.AtLeast > c.Trials {
		return apperrors.NewConfigError("at-least must be between 0 and %d, got %d", c.Trials, c.AtLeast)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be strictly positive")
	}
	if c.Precision < 0 || c.Precision > 40 {
		return apperrors.NewConfigError("precision must be between 0 and 40, got %d", c.Precision)
	}
	if c.Simulate < 0 {
		return apperrors.NewConfigError("simulate must be non-negative, got %d", c.Simulate)
	}
	if _, ok := ui.LookupTheme(c.Theme); !ok {
		return apperrors.NewConfigError("unknown theme %q (accepted values: %s)", c.Theme, strings.Join(ui.ThemeNames, ", "))
	}
	if c.Verbose && c.Quiet {
		return apperrors.NewConfigError("--verbose and --quiet are mutually exclusive")
	}
	return nil
}
