// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/argvkit/argvkit/internal/config"
	"github.com/argvkit/argvkit/internal/issue"
	"github.com/argvkit/argvkit/internal/tokenfmt"
	"github.com/argvkit/argvkit/pkg/argv"
	"github.com/argvkit/argvkit/pkg/types"

	"github.com/charmbracelet/log"
)

type (
	// App wires CLI services and shared state. Every Cobra command handler
	// receives an App reference instead of reading package-level globals.
	App struct {
		Config config.Provider
		stdout io.Writer
		stderr io.Writer
		logger *log.Logger
		flags  rootFlags

		// cfg and cfgSource are set by the root PersistentPreRunE.
		cfg       *config.Config
		cfgSource string
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config config.Provider
		Stdout io.Writer
		Stderr io.Writer
	}

	// rootFlags holds the persistent flags shared by every subcommand.
	rootFlags struct {
		verbose bool
		strict  bool
		cfgFile string
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}

	return &App{
		Config: deps.Config,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
		logger: newLogger(deps.Stderr, config.LogLevelInfo, false),
	}
}

// newLogger builds the CLI logger. verbose forces debug level.
func newLogger(w io.Writer, level config.LogLevel, verbose bool) *log.Logger {
	lvl := level.Charm()
	if verbose {
		lvl = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "argvkit",
		Level:  lvl,
	})
}

// loadConfig resolves configuration for this invocation and rebuilds the
// logger from it.
func (a *App) loadConfig(ctx context.Context) error {
	loaded, err := a.Config.Load(ctx, a.loadOptions())
	if err != nil {
		return err
	}
	a.useConfig(loaded.Config, loaded.Source)
	return nil
}

// loadOptions maps the --config flag to provider options.
func (a *App) loadOptions() config.LoadOptions {
	return config.LoadOptions{ConfigFilePath: types.FilesystemPath(a.flags.cfgFile)}
}

func (a *App) useConfig(cfg *config.Config, source string) {
	a.cfg = cfg
	a.cfgSource = source
	a.logger = newLogger(a.stderr, cfg.Log.Level, a.verbose())
	applyColorScheme(cfg.UI.ColorScheme)
	if source != "" {
		a.logger.Debug("loaded configuration", "path", source)
	}
}

// activeConfig returns the active configuration, or the defaults before loading.
func (a *App) activeConfig() *config.Config {
	if a.cfg == nil {
		return config.DefaultConfig()
	}
	return a.cfg
}

func (a *App) verbose() bool {
	return a.flags.verbose || (a.cfg != nil && a.cfg.UI.Verbose)
}

func (a *App) strict() bool {
	return a.flags.strict || a.activeConfig().Strict
}

// encoder returns a reflection encoder honoring strict mode and the CLI logger.
func (a *App) encoder() *argv.Encoder {
	return argv.NewEncoder(argv.WithStrict(a.strict()), argv.WithLogger(a.logger))
}

// outputFormat resolves a --format flag value, falling back to the configured
// output format when the flag is empty.
func (a *App) outputFormat(flag string) (tokenfmt.Format, error) {
	if flag == "" {
		return a.activeConfig().Output, nil
	}
	f, err := tokenfmt.ParseFormat(flag)
	if err != nil {
		return "", usageError(issue.NewErrorContext().
			WithOperation("select output format").
			WithResource(flag).
			WithSuggestion("Use one of: " + strings.Join(tokenfmt.FormatNames(), ", ")).
			WithIssue(issue.InvalidOutputFormatId).
			Wrap(err).
			BuildError())
	}
	return f, nil
}

// glamourStyle maps the configured color scheme to a glamour style name.
func (a *App) glamourStyle() string {
	return a.activeConfig().UI.ColorScheme.String()
}

// printGuidance writes the remediation hints attached to err. The longer
// Markdown guidance from the issue catalog is only shown in verbose mode.
func (a *App) printGuidance(err error) {
	var ae *issue.ActionableError
	if errors.As(err, &ae) && ae.HasSuggestions() {
		for _, s := range ae.Suggestions {
			fmt.Fprintln(a.stderr, WarningStyle.Render("  • ")+s)
		}
	}

	if !a.verbose() {
		return
	}
	guidance := issue.Guidance(err)
	if guidance == nil {
		return
	}
	rendered, renderErr := guidance.Render(a.glamourStyle())
	if renderErr != nil {
		a.logger.Debug("failed to render guidance", "error", renderErr)
		return
	}
	fmt.Fprint(a.stderr, rendered)
}
