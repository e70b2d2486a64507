// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/argvkit/argvkit/internal/document"
	"github.com/argvkit/argvkit/internal/tokenfmt"
	"github.com/argvkit/argvkit/pkg/argv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newExplainCommand(app *App) *cobra.Command {
	var variant string

	explainCmd := &cobra.Command{
		Use:   "explain FILE",
		Short: "Show how each field of a document encodes",
		Long: `Show, for every command of a CUE document, how each field is classified
and which tokens it contributes to the rendered argument list.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			commands, err := app.loadDocuments(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			commands, err = selectVariant(commands, variant)
			if err != nil {
				return err
			}

			for i, c := range commands {
				if i > 0 {
					fmt.Fprintln(app.stdout)
				}
				explainCommand(app.stdout, c)
			}
			return nil
		},
	}

	explainCmd.Flags().StringVar(&variant, "variant", "", "only explain commands of this variant")
	return explainCmd
}

func explainCommand(w io.Writer, c document.Command) {
	title := TitleStyle.Render(c.Variant)
	if c.Description != "" {
		title += " " + SubtitleStyle.Render(c.Description)
	}
	fmt.Fprintln(w, title)

	if len(c.Fields) == 0 {
		fmt.Fprintln(w, SubtitleStyle.Render("(no fields)"))
	} else {
		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(tableBorderStyle).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return tableHeaderStyle
				}
				return tableCellStyle
			}).
			Headers("FIELD", "KEY", "KIND", "ROLE", "TOKENS")
		for _, f := range c.Fields {
			t.Row(explainRow(f)...)
		}
		fmt.Fprintln(w, t.Render())
	}

	fmt.Fprintln(w, CmdStyle.Render("=> ")+SuccessStyle.Render(displayTokens(c.Tokens())))
}

// explainRow describes one field: its flag key, value kind, capability and
// the tokens it contributes.
func explainRow(f argv.Field) []string {
	capability := argv.Classify(f.Value)

	key := "--" + argv.FlagKey(f.Name)
	role := "value"
	if capability.Flag {
		role = "flags"
	}
	if !capability.IsValue() {
		key = "(spliced)"
	}
	if capability.Optional {
		role += ", optional"
	}

	contributed := argv.Flatten("", []argv.Field{f})[1:]
	tokens := "(omitted)"
	if len(contributed) > 0 {
		tokens = displayTokens(contributed)
	}

	return []string{f.Name, key, kindName(f.Value), role, tokens}
}

func kindName(v argv.Value) string {
	switch v := v.(type) {
	case nil:
		return "absent"
	case argv.OptionalValue:
		if !v.IsPresent() {
			return "optional (absent)"
		}
		return "optional " + kindName(v.Inner)
	default:
		return v.Kind().String()
	}
}

// displayTokens shell-quotes tokens so that empty and spaced tokens stay visible.
func displayTokens(tokens []string) string {
	line, err := tokenfmt.Render(tokens, tokenfmt.FormatShell)
	if err != nil {
		return strings.Join(tokens, " ")
	}
	return line
}
