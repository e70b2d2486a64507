// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/argvkit/argvkit/internal/tokenfmt"

	"github.com/charmbracelet/log"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// LogLevelDebug also reports fallback encodings and config resolution.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo is the default level.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn only reports problems.
	LogLevelWarn LogLevel = "warn"
	// LogLevelError only reports failures.
	LogLevelError LogLevel = "error"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidUIConfig is the sentinel error wrapped by InvalidUIConfigError.
	ErrInvalidUIConfig = errors.New("invalid UI config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")

	colorSchemes = enum[ColorScheme]{ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight}
	logLevels    = enum[LogLevel]{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError}
)

type (
	// enum is the closed set of spellings accepted for a string setting.
	// Matching is case-sensitive, like the CUE schema.
	enum[T ~string] []T

	// ColorScheme selects the palette for styled output and glamour guidance.
	ColorScheme string

	// InvalidColorSchemeError wraps ErrInvalidColorScheme.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// LogLevel is the minimum level written by the CLI logger.
	LogLevel string

	// InvalidLogLevelError wraps ErrInvalidLogLevel.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// InvalidUIConfigError collects the field errors of a UIConfig.
	InvalidUIConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError collects the field errors of a Config. errors.Is
	// matches ErrInvalidConfig as well as every collected field error.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Strict rejects values that would need the fallback encoding.
		Strict bool `json:"strict" mapstructure:"strict" toml:"strict"`
		// Output is the default token output format.
		Output tokenfmt.Format `json:"output" mapstructure:"output" toml:"output"`
		UI     UIConfig        `json:"ui" mapstructure:"ui" toml:"ui"`
		Log    LogConfig       `json:"log" mapstructure:"log" toml:"log"`
	}

	// UIConfig configures styled output.
	UIConfig struct {
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme" toml:"color_scheme"`
		// Verbose adds debug logging and catalog guidance to error output.
		Verbose bool `json:"verbose" mapstructure:"verbose" toml:"verbose"`
	}

	// LogConfig configures the CLI logger.
	LogConfig struct {
		Level LogLevel `json:"level" mapstructure:"level" toml:"level"`
	}
)

func (e enum[T]) contains(v T) bool { return slices.Contains(e, v) }

func (e enum[T]) String() string {
	names := make([]string, len(e))
	for i, v := range e {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}

// ColorSchemes returns the accepted color schemes.
func ColorSchemes() []ColorScheme { return slices.Clone(colorSchemes) }

// LogLevels returns the accepted log levels, most verbose first.
func LogLevels() []LogLevel { return slices.Clone(logLevels) }

func (cs ColorScheme) String() string { return string(cs) }

// IsValid reports whether cs is one of ColorSchemes.
func (cs ColorScheme) IsValid() (bool, []error) {
	if colorSchemes.contains(cs) {
		return true, nil
	}
	return false, []error{&InvalidColorSchemeError{Value: cs}}
}

func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: %s)", e.Value, colorSchemes)
}

func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

func (l LogLevel) String() string { return string(l) }

// IsValid reports whether l is one of LogLevels.
func (l LogLevel) IsValid() (bool, []error) {
	if logLevels.contains(l) {
		return true, nil
	}
	return false, []error{&InvalidLogLevelError{Value: l}}
}

// Charm maps l to the charm logger level. Unknown levels map to info.
func (l LogLevel) Charm() log.Level {
	lvl, err := log.ParseLevel(l.String())
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: %s)", e.Value, logLevels)
}

func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }

// IsValid checks the color scheme.
func (c UIConfig) IsValid() (bool, []error) {
	if valid, fieldErrs := c.ColorScheme.IsValid(); !valid {
		return false, []error{&InvalidUIConfigError{FieldErrors: fieldErrs}}
	}
	return true, nil
}

func (e *InvalidUIConfigError) Error() string {
	return fmt.Sprintf("invalid UI config: %v", errors.Join(e.FieldErrors...))
}

func (e *InvalidUIConfigError) Unwrap() []error {
	return append([]error{ErrInvalidUIConfig}, e.FieldErrors...)
}

// IsValid checks every enumerated field. Values read from config.cue are
// already schema-checked; this catches environment overrides.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if err := c.Output.Validate(); err != nil {
		errs = append(errs, err)
	}
	if valid, fieldErrs := c.UI.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Log.Level.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

func (e *InvalidConfigError) Error() string {
	if len(e.FieldErrors) == 1 {
		return fmt.Sprintf("invalid config: %v", e.FieldErrors[0])
	}
	return fmt.Sprintf("invalid config: %d field error(s): %v", len(e.FieldErrors), errors.Join(e.FieldErrors...))
}

func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// DefaultConfig returns the configuration used when no file or environment
// override sets a value.
func DefaultConfig() *Config {
	return &Config{
		Output: tokenfmt.FormatPlain,
		UI:     UIConfig{ColorScheme: ColorSchemeAuto},
		Log:    LogConfig{Level: LogLevelInfo},
	}
}
