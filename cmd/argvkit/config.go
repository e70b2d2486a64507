// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strconv"

	"github.com/argvkit/argvkit/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `argvkit config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage argvkit configuration",
		Long: `Manage argvkit configuration.

Configuration is stored in:
  - Linux: ~/.config/argvkit/config.cue
  - macOS: ~/Library/Application Support/argvkit/config.cue
  - Windows: %APPDATA%\argvkit\config.cue

ARGVKIT_CONFIG_DIR overrides the directory. Every key can also be set from
the environment: ARGVKIT_OUTPUT, ARGVKIT_STRICT, ARGVKIT_UI_COLOR_SCHEME,
ARGVKIT_UI_VERBOSE and ARGVKIT_LOG_LEVEL.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			showConfig(app)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:         "path",
		Short:       "Show configuration file path",
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:         "init",
		Short:       "Create default configuration file",
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app)
		},
	})

	var asTOML bool
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE (or TOML)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !asTOML {
				fmt.Fprint(app.stdout, config.GenerateCUE(app.activeConfig()))
				return nil
			}
			data, err := config.EncodeTOML(app.activeConfig())
			if err != nil {
				return err
			}
			_, err = app.stdout.Write(data)
			return err
		},
	}
	dumpCmd.Flags().BoolVar(&asTOML, "toml", false, "output TOML instead of CUE")
	cfgCmd.AddCommand(dumpCmd)

	return cfgCmd
}

// configEntry is one line of `config show`; an empty section means a
// top-level key.
type configEntry struct {
	section, key, value string
}

func configEntries(cfg *config.Config) []configEntry {
	return []configEntry{
		{"", "strict", strconv.FormatBool(cfg.Strict)},
		{"", "output", cfg.Output.String()},
		{"ui", "color_scheme", cfg.UI.ColorScheme.String()},
		{"ui", "verbose", strconv.FormatBool(cfg.UI.Verbose)},
		{"log", "level", cfg.Log.Level.String()},
	}
}

func showConfig(app *App) {
	w := app.stdout

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	source := SubtitleStyle.Render("(using defaults)")
	if app.cfgSource != "" {
		source = app.cfgSource
	}
	fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render("Config file"), source)

	section := "-"
	for _, e := range configEntries(app.activeConfig()) {
		if e.section != section {
			section = e.section
			fmt.Fprintln(w)
			if section != "" {
				fmt.Fprintf(w, "%s:\n", CmdStyle.Render(section))
			}
		}
		if section != "" {
			fmt.Fprintf(w, "  %s: %s\n", e.key, SuccessStyle.Render(e.value))
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render(e.key), SuccessStyle.Render(e.value))
	}
}

func showConfigPath(app *App) error {
	path, err := config.FilePath(app.loadOptions())
	if err != nil {
		return err
	}
	fmt.Fprintf(app.stdout, "Config file: %s\n", path)
	return nil
}

func initConfig(app *App) error {
	path, err := config.FilePath(app.loadOptions())
	if err != nil {
		return err
	}

	written, err := config.CreateDefaultConfig(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	if !written {
		fmt.Fprintf(app.stdout, "%s Configuration already exists at %s\n", WarningStyle.Render("!"), path)
		return nil
	}
	fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
	return nil
}
