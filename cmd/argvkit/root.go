// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/argvkit/argvkit/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// skipConfigAnnotation marks commands that must work without loading the
// configuration file (for instance while it is broken).
const skipConfigAnnotation = "argvkit/skip-config"

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

func newRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "argvkit",
		Short: "Render typed command descriptions as argument lists",
		Long: TitleStyle.Render("argvkit") + SubtitleStyle.Render(" - Render typed command descriptions as argument lists") + `

argvkit turns a command variant and its fields into the argument tokens a
program expects: the kebab-case variant name followed by --flag value
pairs. Commands are described in CUE documents or as Go structs.

` + SubtitleStyle.Render("Examples:") + `
  argvkit render commands.cue               Render every command in a document
  argvkit render commands.cue -f shell      Quote tokens for a POSIX shell
  argvkit explain commands.cue              Show how each field encodes
  argvkit examples                          Render the built-in examples
  argvkit config show                       Show current configuration`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipConfigAnnotation] == "true" {
				return nil
			}
			return app.loadConfig(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&app.flags.verbose, "verbose", "v", false, "enable verbose output and debug logging")
	rootCmd.PersistentFlags().BoolVar(&app.flags.strict, "strict", false, "reject values without an argument encoding")
	rootCmd.PersistentFlags().StringVar(&app.flags.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/argvkit/config.cue)")

	rootCmd.AddCommand(
		newRenderCommand(app),
		newExplainCommand(app),
		newExamplesCommand(app),
		newConfigCommand(app),
	)
	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version != "dev" {
		return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev (built from source)"
}

// Execute runs the argvkit CLI. It is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	rootCmd := newRootCommand(app)

	// fang overrides rootCmd.Version, so the version goes through WithVersion.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		app.printGuidance(err)
		os.Exit(int(exitCode(err)))
	}
}

func exitCode(err error) types.ExitCode {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return types.ExitFailure
}
