// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/argvkit/argvkit/internal/document"
	"github.com/argvkit/argvkit/internal/issue"
	"github.com/argvkit/argvkit/internal/sample"
	"github.com/argvkit/argvkit/internal/tokenfmt"

	"github.com/spf13/cobra"
)

func newExamplesCommand(app *App) *cobra.Command {
	var (
		format string
		check  bool
	)

	examplesCmd := &cobra.Command{
		Use:   "examples [VARIANT]",
		Short: "Render the built-in example commands",
		Long: `Render the built-in example command set through the Go struct encoder.

The examples cover text, path, integer and boolean scalars, optionals,
sequences, pairs and nested records. With --check, each rendered line is
compared against its expected output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := app.outputFormat(format)
			if err != nil {
				return err
			}
			cases, err := selectExamples(args)
			if err != nil {
				return err
			}

			enc := app.encoder()
			for _, c := range cases {
				tokens, err := enc.Marshal(c.Value)
				if err != nil {
					return issue.NewErrorContext().
						WithOperation("encode example").
						WithResource(c.Name).
						WithIssue(classifyError(err, issue.UnsupportedValueKindId)).
						Wrap(err).
						BuildError()
				}
				if check {
					if got := strings.Join(tokens, " "); got != c.Want {
						return fmt.Errorf("example %s rendered %q, want %q", c.Name, got, c.Want)
					}
				}
				if err := tokenfmt.Write(app.stdout, tokens, f); err != nil {
					return fmt.Errorf("write tokens: %w", err)
				}
			}

			if check {
				fmt.Fprintf(app.stderr, "%s %d example(s) match their expected output\n", SuccessStyle.Render("✓"), len(cases))
			}
			return nil
		},
	}

	addFormatFlag(examplesCmd, &format)
	examplesCmd.Flags().BoolVar(&check, "check", false, "fail if an example does not render its expected line")
	return examplesCmd
}

func selectExamples(args []string) ([]sample.Case, error) {
	if len(args) == 0 {
		return sample.Cases(), nil
	}
	c, ok := sample.Lookup(args[0])
	if !ok {
		names := make([]string, 0, len(sample.Cases()))
		for _, c := range sample.Cases() {
			names = append(names, c.Name)
		}
		return nil, usageError(issue.NewErrorContext().
			WithOperation("select example").
			WithResource(args[0]).
			WithIssue(issue.VariantNotFoundId).
			WithSuggestion("Available examples: " + strings.Join(names, ", ")).
			Wrap(&document.VariantNotFoundError{Name: args[0], Available: names}).
			BuildError())
	}
	return []sample.Case{c}, nil
}
