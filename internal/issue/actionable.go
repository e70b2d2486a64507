// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
)

const suggestionBullet = "  • "

type (
	// ActionableError reports a failed argvkit operation together with the
	// document, variant or file it concerned and what the user can try next.
	//
	//	err := issue.NewErrorContext().
	//		WithOperation("load document").
	//		WithResource("./commands.cue").
	//		WithIssue(issue.DocumentNotFoundId).
	//		Wrap(cause).
	//		BuildError()
	ActionableError struct {
		// Operation is a verb phrase such as "load document" or "select variant".
		Operation string
		// Resource names the path, variant or flag value involved, if any.
		Resource string
		// Suggestions are one-line remediation hints.
		Suggestions []string
		// Cause is the wrapped error.
		Cause error
		// Issue is the catalog entry holding longer guidance; zero means none.
		Issue Id
	}

	// ErrorContext accumulates the parts of an ActionableError. A context can
	// be prepared once per operation and finished with Wrap/Build on failure.
	ErrorContext struct {
		err ActionableError
	}
)

// NewErrorContext returns an empty builder.
func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

func (e *ActionableError) Error() string {
	parts := []string{"failed to " + e.Operation}
	if e.Resource != "" {
		parts = append(parts, e.Resource)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// HasSuggestions reports whether any remediation hint is attached.
func (e *ActionableError) HasSuggestions() bool {
	return len(e.Suggestions) > 0
}

// Format renders the message followed by one bulleted line per suggestion.
// Verbose output also lists every error in the cause chain and the catalog
// issue number, when one is attached.
func (e *ActionableError) Format(verbose bool) string {
	var b strings.Builder
	b.WriteString(e.Error())

	if e.HasSuggestions() {
		b.WriteString("\n")
		for _, s := range e.Suggestions {
			b.WriteString("\n" + suggestionBullet + s)
		}
	}

	if !verbose {
		return b.String()
	}

	if e.Cause != nil {
		b.WriteString("\n\nError chain:")
		for i, err := 1, e.Cause; err != nil; i, err = i+1, errors.Unwrap(err) {
			fmt.Fprintf(&b, "\n  %d. %s", i, err)
		}
	}
	if e.Issue != 0 {
		fmt.Fprintf(&b, "\n\nSee issue #%d for details.", e.Issue)
	}
	return b.String()
}

// Guidance returns the catalog issue of the outermost ActionableError in
// err's chain that names one, or nil.
func Guidance(err error) *Issue {
	var ae *ActionableError
	for errors.As(err, &ae) {
		if ae.Issue != 0 {
			return Get(ae.Issue)
		}
		err = ae.Cause
	}
	return nil
}

// WithOperation sets the verb phrase describing what failed.
func (c *ErrorContext) WithOperation(op string) *ErrorContext {
	c.err.Operation = op
	return c
}

// WithResource sets the path, variant or value involved.
func (c *ErrorContext) WithResource(res string) *ErrorContext {
	c.err.Resource = res
	return c
}

// WithSuggestion appends one remediation hint.
func (c *ErrorContext) WithSuggestion(sug string) *ErrorContext {
	c.err.Suggestions = append(c.err.Suggestions, sug)
	return c
}

// WithSuggestions appends several remediation hints.
func (c *ErrorContext) WithSuggestions(sugs ...string) *ErrorContext {
	c.err.Suggestions = append(c.err.Suggestions, sugs...)
	return c
}

// WithIssue attaches a catalog issue.
func (c *ErrorContext) WithIssue(id Id) *ErrorContext {
	c.err.Issue = id
	return c
}

// Wrap sets the underlying cause.
func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.err.Cause = err
	return c
}

// Build returns a copy of the accumulated error, or nil when no operation
// was set. Later builder calls do not affect errors already built.
func (c *ErrorContext) Build() *ActionableError {
	if c.err.Operation == "" {
		return nil
	}
	ae := c.err
	ae.Suggestions = append([]string(nil), c.err.Suggestions...)
	return &ae
}

// BuildError is Build typed as error, so a missing operation yields a nil
// interface rather than a typed nil.
func (c *ErrorContext) BuildError() error {
	if ae := c.Build(); ae != nil {
		return ae
	}
	return nil
}
