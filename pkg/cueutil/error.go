// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	cueerrors "cuelang.org/go/cue/errors"
)

var (
	// ErrInvalidCUEPath is returned when a CUEPath value is empty or whitespace-only.
	ErrInvalidCUEPath = errors.New("invalid CUE path")

	// ErrSchema is the sentinel wrapped by SchemaError.
	ErrSchema = errors.New("CUE schema violation")

	// ErrFileTooLarge is the sentinel wrapped by FileTooLargeError.
	ErrFileTooLarge = errors.New("file too large")
)

type (
	// CUEPath is a JSON-path style location inside a CUE file, such as
	// "commands[0].fields.tuple".
	CUEPath string

	// Problem is one CUE diagnostic located at Path.
	Problem struct {
		Path    CUEPath
		Message string
	}

	// SchemaError collects the CUE diagnostics raised while compiling,
	// validating or decoding one file.
	SchemaError struct {
		File     string
		Problems []Problem
	}

	// FileTooLargeError is returned before compilation for oversized input.
	FileTooLargeError struct {
		File string
		Size int64
		Max  int64
	}

	// ValidationError reports a value that passed schema validation but
	// cannot be mapped to the argv value taxonomy.
	ValidationError struct {
		// FilePath is the file being validated.
		FilePath string
		// CUEPath is the location of the invalid value.
		CUEPath CUEPath
		// Message is the validation error message.
		Message string
		// Suggestion is an optional hint for fixing the error.
		Suggestion string
	}
)

// String returns the path text.
func (p CUEPath) String() string { return string(p) }

// Validate returns an error if the path is empty or whitespace-only.
func (p CUEPath) Validate() error {
	if strings.TrimSpace(string(p)) == "" {
		return fmt.Errorf("%w: %q", ErrInvalidCUEPath, string(p))
	}
	return nil
}

// PathOf returns the location of v in JSON-path notation.
func PathOf(v cue.Value) CUEPath {
	sels := v.Path().Selectors()
	parts := make([]string, len(sels))
	for i, sel := range sels {
		parts[i] = sel.String()
	}
	return jsonPath(parts)
}

func (p Problem) String() string {
	if p.Path == "" {
		return p.Message
	}
	return p.Path.String() + ": " + p.Message
}

// Error renders a single problem inline and several problems as an
// indented list:
//
//	commands.cue: commands[0].variant: conflicting values 1 and string
//	config.cue: validation failed:
//	  output: 4 errors in empty disjunction
//	  ui.verbose: conflicting values "yes" and bool
func (e *SchemaError) Error() string {
	if len(e.Problems) == 1 {
		return e.File + ": " + e.Problems[0].String()
	}
	lines := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		lines[i] = p.String()
	}
	return e.File + ": validation failed:\n  " + strings.Join(lines, "\n  ")
}

func (e *SchemaError) Unwrap() error { return ErrSchema }

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("%s: file size %d bytes exceeds maximum %d bytes", e.File, e.Size, e.Max)
}

func (e *FileTooLargeError) Unwrap() error { return ErrFileTooLarge }

func (e *ValidationError) Error() string {
	if e.CUEPath != "" {
		return fmt.Sprintf("%s: %s: %s", e.FilePath, e.CUEPath, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
}

// FormatError converts a CUE error into a *SchemaError for filePath. Errors
// that carry no CUE diagnostics are wrapped with the filename only.
func FormatError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	diags := cueerrors.Errors(err)
	if len(diags) == 0 {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	se := &SchemaError{File: filePath, Problems: make([]Problem, 0, len(diags))}
	for _, d := range diags {
		sels := cueerrors.Path(d)
		path := jsonPath(sels)
		msg := d.Error()
		// CUE prefixes most messages with the dotted selector path.
		for _, prefix := range []string{strings.Join(sels, "."), path.String()} {
			if rest, ok := strings.CutPrefix(msg, prefix); ok && prefix != "" {
				msg = strings.TrimSpace(strings.TrimPrefix(rest, ":"))
				break
			}
		}
		se.Problems = append(se.Problems, Problem{Path: path, Message: msg})
	}
	return se
}

// CheckFileSize returns a *FileTooLargeError if data exceeds maxSize bytes.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if size := int64(len(data)); size > maxSize {
		return &FileTooLargeError{File: filename, Size: size, Max: maxSize}
	}
	return nil
}

// jsonPath renders CUE selectors (["commands", "0", "fields"]) as
// "commands[0].fields". A leading definition such as "#Document" is dropped
// since values unified with a schema root report paths relative to it.
func jsonPath(sels []string) CUEPath {
	if len(sels) > 0 && strings.HasPrefix(sels[0], "#") {
		sels = sels[1:]
	}

	var b strings.Builder
	for i, sel := range sels {
		switch {
		case i > 0 && isIndex(sel):
			b.WriteString("[" + sel + "]")
		case i > 0:
			b.WriteString("." + sel)
		default:
			b.WriteString(sel)
		}
	}
	return CUEPath(b.String())
}

func isIndex(sel string) bool {
	return sel != "" && strings.Trim(sel, "0123456789") == ""
}
