// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"io/fs"

	"github.com/argvkit/argvkit/internal/document"
	"github.com/argvkit/argvkit/internal/issue"
	"github.com/argvkit/argvkit/internal/tokenfmt"
	"github.com/argvkit/argvkit/pkg/argv"
	"github.com/argvkit/argvkit/pkg/cueutil"
)

// classifyError maps codec and document failures to issue catalog IDs.
// Errors it does not recognize map to fallback.
func classifyError(err error, fallback issue.Id) issue.Id {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return issue.DocumentNotFoundId
	case errors.Is(err, argv.ErrUnsupportedKind):
		return issue.UnsupportedValueKindId
	case errors.Is(err, argv.ErrDuplicateField):
		return issue.DuplicateFieldId
	case errors.Is(err, argv.ErrInvalidPair):
		return issue.InvalidPairId
	case errors.Is(err, document.ErrVariantNotFound):
		return issue.VariantNotFoundId
	case errors.Is(err, tokenfmt.ErrInvalidFormat):
		return issue.InvalidOutputFormatId
	default:
		return fallback
	}
}

// documentError wraps a document loading failure with the matching
// guidance and suggestions.
func documentError(path string, err error) error {
	id := classifyError(err, issue.DocumentParseErrorId)
	ctx := issue.NewErrorContext().
		WithOperation("load document").
		WithResource(path).
		WithIssue(id)

	// A hint attached to the offending value comes first.
	var verr *cueutil.ValidationError
	if errors.As(err, &verr) && verr.Suggestion != "" {
		ctx.WithSuggestion(verr.Suggestion)
	}

	switch id {
	case issue.DocumentNotFoundId:
		ctx.WithSuggestion("Check the document path").
			WithSuggestion("Pass '-' to read the document from standard input")
	case issue.UnsupportedValueKindId:
		ctx.WithSuggestion("Run without --strict to encode the value with its display text")
	case issue.InvalidPairId:
		ctx.WithSuggestion("Write pairs as two-element lists, e.g. [1, 2]")
	default:
		ctx.WithSuggestion("Run with --verbose for the document format")
	}
	return ctx.Wrap(err).BuildError()
}
