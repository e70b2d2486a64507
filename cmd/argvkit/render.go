// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/argvkit/argvkit/internal/tokenfmt"

	"github.com/spf13/cobra"
)

func newRenderCommand(app *App) *cobra.Command {
	var (
		format  string
		variant string
	)

	renderCmd := &cobra.Command{
		Use:   "render FILE...",
		Short: "Render the commands of CUE documents as argument tokens",
		Long: `Render the commands of one or more CUE documents as argument tokens.

Each command is written on its own line, in document order. Pass '-' to
read a document from standard input.`,
		Example: `  argvkit render commands.cue
  argvkit render commands.cue --variant gen-something --format json
  cat commands.cue | argvkit render -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := app.outputFormat(format)
			if err != nil {
				return err
			}
			commands, err := app.loadDocuments(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			commands, err = selectVariant(commands, variant)
			if err != nil {
				return err
			}

			for _, c := range commands {
				app.logger.Debug("rendering command", "variant", c.Variant, "path", c.Path)
				if err := tokenfmt.Write(app.stdout, c.Tokens(), f); err != nil {
					return fmt.Errorf("write tokens: %w", err)
				}
			}
			return nil
		},
	}

	addFormatFlag(renderCmd, &format)
	renderCmd.Flags().StringVar(&variant, "variant", "", "only render commands of this variant")
	return renderCmd
}

// addFormatFlag registers --format with shell completion of format names.
func addFormatFlag(cmd *cobra.Command, format *string) {
	cmd.Flags().StringVarP(format, "format", "f", "",
		"output format: "+strings.Join(tokenfmt.FormatNames(), ", ")+" (default from config)")
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return tokenfmt.FormatNames(), cobra.ShellCompDirectiveNoFileComp
	})
}
