// SPDX-License-Identifier: MPL-2.0

package document

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/argvkit/argvkit/pkg/argv"
	"github.com/argvkit/argvkit/pkg/cueutil"

	"cuelang.org/go/cue"
)

const (
	// schemaPath is the root definition every document is unified with.
	schemaPath = "#Document"

	attrKey = "argv"
)

//go:embed document_schema.cue
var schemaBytes []byte

// ErrVariantNotFound is the sentinel error wrapped by VariantNotFoundError.
var ErrVariantNotFound = errors.New("variant not found")

type (
	// Command is one variant instance read from a document.
	Command struct {
		// Variant is the variant name as written in the document.
		Variant string
		// Description is free text shown by explain.
		Description string
		// Fields are the variant's fields in declaration order.
		Fields []argv.Field
		// Path locates the command in its document, e.g. "commands[1]".
		Path cueutil.CUEPath
	}

	// VariantNotFoundError is returned by Select when no command matches.
	VariantNotFoundError struct {
		Name      string
		Available []string
	}

	// Option configures Parse and Load.
	Option func(*converter)

	header struct {
		Commands []commandHeader `json:"commands"`
	}

	commandHeader struct {
		Variant     string `json:"variant"`
		Description string `json:"description,omitempty"`
	}
)

// Error implements the error interface.
func (e *VariantNotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("variant %q not found (document has no commands)", e.Name)
	}
	return fmt.Sprintf("variant %q not found (available: %s)", e.Name, strings.Join(e.Available, ", "))
}

// Unwrap returns ErrVariantNotFound for errors.Is() compatibility.
func (e *VariantNotFoundError) Unwrap() error { return ErrVariantNotFound }

// WithStrict rejects values that would need the fallback encoding (bytes).
func WithStrict(strict bool) Option {
	return func(c *converter) {
		c.strict = strict
	}
}

// WithMaxFileSize overrides cueutil.DefaultMaxFileSize.
func WithMaxFileSize(size int64) Option {
	return func(c *converter) {
		c.maxFileSize = size
	}
}

// Parse validates data against the #Document schema and returns its
// commands in document order. filename is only used in error messages.
func Parse(data []byte, filename string, opts ...Option) ([]Command, error) {
	c := &converter{filename: filename, maxFileSize: cueutil.DefaultMaxFileSize}
	for _, opt := range opts {
		opt(c)
	}

	result, err := cueutil.ParseAndDecode[header](
		schemaBytes,
		data,
		schemaPath,
		cueutil.WithFilename(filename),
		cueutil.WithMaxFileSize(c.maxFileSize),
	)
	if err != nil {
		return nil, err
	}

	iter, err := result.Unified.LookupPath(cue.ParsePath("commands")).List()
	if err != nil {
		return nil, cueutil.FormatError(err, filename)
	}

	commands := make([]Command, 0, len(result.Value.Commands))
	for i := 0; iter.Next(); i++ {
		cmdValue := iter.Value()
		fields, err := c.fields(cmdValue.LookupPath(cue.ParsePath("fields")))
		if err != nil {
			return nil, err
		}
		h := result.Value.Commands[i]
		commands = append(commands, Command{
			Variant:     h.Variant,
			Description: h.Description,
			Fields:      fields,
			Path:        cueutil.PathOf(cmdValue),
		})
	}
	return commands, nil
}

// Load reads and parses the document at path.
func Load(path string, opts ...Option) ([]Command, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return Parse(data, path, opts...)
}

// Tokens flattens the command.
func (c Command) Tokens() []string {
	return argv.Flatten(c.Variant, c.Fields)
}

// Record returns the command as a record value named after its variant.
func (c Command) Record() argv.RecordValue {
	return argv.RecordValue{Name: c.Variant, Fields: c.Fields}
}

// Select returns the commands whose variant matches name. Names match when
// they are equal or kebab-case to the same string, so "GenSomething" and
// "gen-something" select the same commands.
func Select(commands []Command, name string) ([]Command, error) {
	want := argv.KebabCase(name)
	var selected []Command
	for _, cmd := range commands {
		if cmd.Variant == name || argv.KebabCase(cmd.Variant) == want {
			selected = append(selected, cmd)
		}
	}
	if len(selected) == 0 {
		return nil, &VariantNotFoundError{Name: name, Available: Variants(commands)}
	}
	return selected, nil
}

// Variants returns the distinct variant names of commands in first-seen order.
func Variants(commands []Command) []string {
	seen := make(map[string]struct{}, len(commands))
	names := make([]string, 0, len(commands))
	for _, cmd := range commands {
		if _, ok := seen[cmd.Variant]; ok {
			continue
		}
		seen[cmd.Variant] = struct{}{}
		names = append(names, cmd.Variant)
	}
	return names
}
