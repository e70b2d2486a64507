// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/argvkit/argvkit/internal/document"
	"github.com/argvkit/argvkit/internal/issue"
)

// stdinPath is the document argument that reads standard input.
const stdinPath = "-"

// loadDocuments parses every document in paths, in order.
func (a *App) loadDocuments(stdin io.Reader, paths []string) ([]document.Command, error) {
	opts := []document.Option{document.WithStrict(a.strict())}

	var all []document.Command
	for _, path := range paths {
		var (
			commands []document.Command
			err      error
		)
		if path == stdinPath {
			commands, err = parseStdin(stdin, opts)
			path = "<stdin>"
		} else {
			commands, err = document.Load(path, opts...)
		}
		if err != nil {
			return nil, documentError(path, err)
		}
		a.logger.Debug("loaded document", "path", path, "commands", len(commands))
		all = append(all, commands...)
	}
	return all, nil
}

func parseStdin(stdin io.Reader, opts []document.Option) ([]document.Command, error) {
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read standard input: %w", err)
	}
	return document.Parse(data, "<stdin>", opts...)
}

// selectVariant narrows commands to one variant when name is set.
func selectVariant(commands []document.Command, name string) ([]document.Command, error) {
	if name == "" {
		return commands, nil
	}
	selected, err := document.Select(commands, name)
	if err != nil {
		return nil, usageError(issue.NewErrorContext().
			WithOperation("select variant").
			WithResource(name).
			WithIssue(issue.VariantNotFoundId).
			WithSuggestion("Run 'argvkit explain' on the document to list its variants").
			Wrap(err).
			BuildError())
	}
	return selected, nil
}
