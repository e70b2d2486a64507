// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/argvkit/argvkit/internal/config"
	"github.com/argvkit/argvkit/internal/issue"
	"github.com/argvkit/argvkit/internal/tokenfmt"
	"github.com/argvkit/argvkit/pkg/types"
)

const testDocument = `
commands: [
	{
		variant:     "Mock"
		description: "text and path fields"
		fields: {
			with:    "with"
			without: "two words"
			path:    "foo/bar/file.text" @argv(path)
		}
	},
	{variant: "Empty"},
	{
		variant: "GenSomething"
		fields: {
			something_to_gen: 2
			maybe?:           int
			tuple: [1, 2] @argv(pair)
			variables: [[1, 2], [3, 4]] @argv(each=pair)
		}
	},
]
`

type staticProvider struct {
	cfg    *config.Config
	source string
	err    error
}

func (p staticProvider) Load(context.Context, config.LoadOptions) (*config.Loaded, error) {
	if p.err != nil {
		return nil, p.err
	}
	cfg := p.cfg
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &config.Loaded{Config: cfg, Source: p.source}, nil
}

type result struct {
	stdout string
	stderr string
	err    error
}

// execute runs the CLI in-process against provider with args.
func execute(t *testing.T, provider config.Provider, stdin string, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app := NewApp(Dependencies{Config: provider, Stdout: &stdout, Stderr: &stderr})
	rootCmd := newRootCommand(app)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))

	err := rootCmd.ExecuteContext(context.Background())
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeDocument(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "commands.cue")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write document: %v", err)
	}
	return path
}

func TestApp_OutputFormat(t *testing.T) {
	t.Parallel()

	app := NewApp(Dependencies{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})
	cfg := config.DefaultConfig()
	cfg.Output = tokenfmt.FormatJSON
	app.useConfig(cfg, "")

	if f, err := app.outputFormat(""); err != nil || f != tokenfmt.FormatJSON {
		t.Errorf("outputFormat(\"\") = %q, %v; want config default json", f, err)
	}
	if f, err := app.outputFormat("SHELL"); err != nil || f != tokenfmt.FormatShell {
		t.Errorf("outputFormat(SHELL) = %q, %v; want shell", f, err)
	}

	_, err := app.outputFormat("yaml")
	if exitCode(err) != types.ExitUsage {
		t.Errorf("exit code = %d, want %d", exitCode(err), types.ExitUsage)
	}
	if !errors.Is(err, tokenfmt.ErrInvalidFormat) {
		t.Errorf("error = %v, want ErrInvalidFormat", err)
	}
	if g := issue.Guidance(err); g == nil || g.Id() != issue.InvalidOutputFormatId {
		t.Error("error should carry InvalidOutputFormat guidance")
	}
}

func TestApp_StrictAndVerbose(t *testing.T) {
	t.Parallel()

	app := NewApp(Dependencies{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})
	if app.strict() || app.verbose() {
		t.Fatal("fresh app should be neither strict nor verbose")
	}

	cfg := config.DefaultConfig()
	cfg.Strict = true
	cfg.UI.Verbose = true
	app.useConfig(cfg, "")
	if !app.strict() {
		t.Error("strict() = false, want true from config")
	}
	if !app.verbose() {
		t.Error("verbose() = false, want true from config")
	}

	flagged := NewApp(Dependencies{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})
	flagged.flags.strict = true
	if !flagged.strict() {
		t.Error("strict() = false, want true from flag")
	}
}

func TestApp_PrintGuidance(t *testing.T) {
	t.Parallel()

	err := usageError(issue.NewErrorContext().
		WithOperation("select variant").
		WithIssue(issue.VariantNotFoundId).
		WithSuggestion("Run 'argvkit explain'").
		BuildError())

	var quiet bytes.Buffer
	app := NewApp(Dependencies{Stdout: &bytes.Buffer{}, Stderr: &quiet})
	app.printGuidance(err)
	if !strings.Contains(quiet.String(), "Run 'argvkit explain'") {
		t.Errorf("suggestions missing from %q", quiet.String())
	}
	if strings.Contains(quiet.String(), "Variant not found") {
		t.Error("catalog guidance should only be shown in verbose mode")
	}

	var loud bytes.Buffer
	verbose := NewApp(Dependencies{Stdout: &bytes.Buffer{}, Stderr: &loud})
	verbose.flags.verbose = true
	verbose.printGuidance(err)
	if !strings.Contains(loud.String(), "Variant not found") {
		t.Errorf("verbose output missing catalog guidance: %q", loud.String())
	}
}

func TestConfigLoadFailure(t *testing.T) {
	t.Parallel()

	loadErr := issue.NewErrorContext().
		WithOperation("load configuration").
		WithIssue(issue.ConfigLoadFailedId).
		BuildError()

	res := execute(t, staticProvider{err: loadErr}, "", "examples")
	if !errors.Is(res.err, loadErr) {
		t.Fatalf("error = %v, want config load error", res.err)
	}

	// config path works without loading the configuration.
	res = execute(t, staticProvider{err: loadErr}, "", "config", "path", "--config", "/tmp/argvkit.cue")
	if res.err != nil {
		t.Fatalf("config path error = %v", res.err)
	}
	if !strings.Contains(res.stdout, "/tmp/argvkit.cue") {
		t.Errorf("stdout = %q, want the explicit config path", res.stdout)
	}
}
