// SPDX-License-Identifier: MPL-2.0

// Package tokenfmt writes flattened token lists in the output formats the
// CLI supports.
package tokenfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

const (
	// FormatPlain joins tokens with single spaces. Tokens are not quoted, so
	// the line is only re-parseable when no token contains whitespace.
	FormatPlain Format = "plain"
	// FormatShell quotes each token for bash so the line can be pasted
	// into a shell verbatim.
	FormatShell Format = "shell"
	// FormatJSON writes the tokens as a JSON array of strings.
	FormatJSON Format = "json"
	// FormatLines writes one token per line.
	FormatLines Format = "lines"
)

// ErrInvalidFormat is the sentinel error wrapped by InvalidFormatError.
var ErrInvalidFormat = errors.New("invalid output format")

type (
	// Format names an output rendering of a token list.
	Format string

	// InvalidFormatError is returned when a Format value is not recognized.
	// It wraps ErrInvalidFormat for errors.Is() compatibility.
	InvalidFormatError struct {
		Value Format
	}
)

// Error implements the error interface.
func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid output format %q (valid: %s)", e.Value, strings.Join(FormatNames(), ", "))
}

// Unwrap returns ErrInvalidFormat for errors.Is() compatibility.
func (e *InvalidFormatError) Unwrap() error { return ErrInvalidFormat }

// Formats returns every supported format in display order.
func Formats() []Format {
	return []Format{FormatPlain, FormatShell, FormatJSON, FormatLines}
}

// FormatNames returns the string form of Formats.
func FormatNames() []string {
	formats := Formats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return names
}

// ParseFormat returns the Format named s. Matching is case-insensitive and
// the empty string selects FormatPlain.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatPlain, nil
	}
	if err := f.Validate(); err != nil {
		return "", err
	}
	return f, nil
}

// Validate returns an error if the Format is not one of the defined formats.
func (f Format) Validate() error {
	switch f {
	case FormatPlain, FormatShell, FormatJSON, FormatLines:
		return nil
	default:
		return &InvalidFormatError{Value: f}
	}
}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Write renders tokens to w in the given format, terminated by a newline.
func Write(w io.Writer, tokens []string, format Format) error {
	line, err := Render(tokens, format)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, line+"\n")
	return err
}

// Render returns the rendering of tokens without a trailing newline.
func Render(tokens []string, format Format) (string, error) {
	switch format {
	case FormatPlain:
		return strings.Join(tokens, " "), nil
	case FormatShell:
		return shellJoin(tokens)
	case FormatJSON:
		if tokens == nil {
			tokens = []string{}
		}
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(tokens); err != nil {
			return "", fmt.Errorf("encode tokens as JSON: %w", err)
		}
		return strings.TrimSuffix(buf.String(), "\n"), nil
	case FormatLines:
		return strings.Join(tokens, "\n"), nil
	default:
		return "", &InvalidFormatError{Value: format}
	}
}

func shellJoin(tokens []string) (string, error) {
	quoted := make([]string, len(tokens))
	for i, tok := range tokens {
		q, err := syntax.Quote(tok, syntax.LangBash)
		if err != nil {
			return "", fmt.Errorf("quote token %d: %w", i, err)
		}
		quoted[i] = q
	}
	return strings.Join(quoted, " "), nil
}
