// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/argvkit/argvkit/internal/issue"
	"github.com/argvkit/argvkit/pkg/cueutil"

	"cuelang.org/go/cue/format"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "argvkit"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// EnvPrefix prefixes every environment override (ARGVKIT_OUTPUT, ...).
	EnvPrefix = "ARGVKIT"
	// ConfigDirEnv overrides the platform config directory.
	ConfigDirEnv = EnvPrefix + "_CONFIG_DIR"
)

//go:embed config_schema.cue
var configSchema []byte

// loadWithOptions layers defaults, the first config file found and ARGVKIT_
// environment overrides, then validates the result. It returns the file
// that was read, or "" when none was.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", fmt.Errorf("load config canceled: %w", err)
	}

	candidates, err := opts.candidates()
	if err != nil {
		return nil, "", err
	}

	v := newViper()
	source := ""
	for _, path := range candidates {
		if !fileExists(path) {
			continue
		}
		if err := mergeCUEFile(v, path); err != nil {
			return nil, "", configLoadError(path, err)
		}
		source = path
		break
	}

	// An explicit --config file must exist.
	if source == "" && opts.ConfigFilePath != "" {
		path := opts.ConfigFilePath.String()
		return nil, "", issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(path).
			WithSuggestion("Verify the file path is correct").
			WithSuggestion("Run 'argvkit config init --config " + path + "' to create it").
			WithIssue(issue.ConfigLoadFailedId).
			Wrap(&fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}).
			BuildError()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("decode config: %w", err)
	}

	// CUE validated the file; environment overrides bypass it.
	if valid, errs := cfg.IsValid(); !valid {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(source).
			WithSuggestion("Check " + EnvPrefix + "_* environment variables for typos").
			WithSuggestion("Run 'argvkit config show' to see the effective values").
			WithIssue(issue.ConfigLoadFailedId).
			Wrap(errs[0]).
			BuildError()
	}

	return &cfg, source, nil
}

// newViper returns a viper instance with defaults and ARGVKIT_ environment
// overrides. Nested keys map to underscores: ui.color_scheme reads
// ARGVKIT_UI_COLOR_SCHEME.
func newViper() *viper.Viper {
	v := viper.New()

	defaults := DefaultConfig()
	for key, value := range map[string]any{
		"strict":          defaults.Strict,
		"output":          defaults.Output.String(),
		"ui.color_scheme": defaults.UI.ColorScheme.String(),
		"ui.verbose":      defaults.UI.Verbose,
		"log.level":       defaults.Log.Level.String(),
	} {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func configLoadError(path string, err error) error {
	return issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource(path).
		WithSuggestions(
			"Check that the file contains valid CUE syntax",
			"Verify the configuration values match the expected schema",
			"See 'argvkit config --help' for configuration options",
		).
		WithIssue(issue.ConfigLoadFailedId).
		Wrap(err).
		BuildError()
}

// mergeCUEFile validates path against #Config and merges it into v. The file
// decodes to a map rather than Config so that unset fields keep their viper
// defaults.
func mergeCUEFile(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	result, err := cueutil.ParseAndDecode[map[string]any](
		configSchema,
		data,
		"#Config",
		cueutil.WithFilename(path),
		cueutil.WithConcrete(false),
	)
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(*result.Value); err != nil {
		return fmt.Errorf("merge config: %w", err)
	}
	return nil
}

// CreateDefaultConfig writes the default configuration to path unless a
// file already exists there. It reports whether a file was written.
func CreateDefaultConfig(path string) (bool, error) {
	if fileExists(path) {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(GenerateCUE(DefaultConfig())), 0o644); err != nil {
		return false, fmt.Errorf("write config file: %w", err)
	}
	return true, nil
}

// GenerateCUE renders cfg as a config.cue file, formatted like cue fmt.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// argvkit configuration file\n")
	sb.WriteString("// Every field is optional; see 'argvkit config --help'.\n\n")
	fmt.Fprintf(&sb, "strict: %t\n", cfg.Strict)
	fmt.Fprintf(&sb, "output: %q\n\n", cfg.Output)
	fmt.Fprintf(&sb, "ui: {\n\tcolor_scheme: %q\n\tverbose: %t\n}\n\n", cfg.UI.ColorScheme, cfg.UI.Verbose)
	fmt.Fprintf(&sb, "log: {\n\tlevel: %q\n}\n", cfg.Log.Level)

	formatted, err := format.Source([]byte(sb.String()))
	if err != nil {
		return sb.String()
	}
	return string(formatted)
}

// EncodeTOML renders the configuration as TOML, for tools that do not read CUE.
func EncodeTOML(cfg *Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode config as TOML: %w", err)
	}
	return data, nil
}
