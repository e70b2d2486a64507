// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// ParseResult pairs the decoded value with the CUE value it came from.
type ParseResult[T any] struct {
	Value *T

	// Unified keeps field order and attributes, which Decode drops. The
	// document loader walks it.
	Unified cue.Value
}

type unifier struct {
	file     string
	maxSize  int64
	concrete bool
}

func newUnifier(opts []Option) *unifier {
	u := &unifier{file: "<input>", maxSize: DefaultMaxFileSize, concrete: true}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// definition compiles the embedded schema and selects name from it. Any
// failure here is a defect in the schema, not in user input.
func (u *unifier) definition(ctx *cue.Context, schema []byte, name string) (cue.Value, error) {
	compiled := ctx.CompileBytes(schema)
	if err := compiled.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("internal error: compile schema: %w", err)
	}
	def := compiled.LookupPath(cue.ParsePath(name))
	if err := def.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("internal error: schema has no %s: %w", name, err)
	}
	return def, nil
}

func (u *unifier) run(schema, data []byte, schemaPath string) (cue.Value, error) {
	if err := CheckFileSize(data, u.maxSize, u.file); err != nil {
		return cue.Value{}, err
	}

	ctx := cuecontext.New()
	def, err := u.definition(ctx, schema, schemaPath)
	if err != nil {
		return cue.Value{}, err
	}

	user := ctx.CompileBytes(data, cue.Filename(u.file))
	if err := user.Err(); err != nil {
		return cue.Value{}, FormatError(err, u.file)
	}

	unified := def.Unify(user)
	if err := unified.Validate(cue.Concrete(u.concrete)); err != nil {
		return cue.Value{}, FormatError(err, u.file)
	}
	return unified, nil
}

// Unify compiles data, unifies it with the schemaPath definition ("#Document",
// "#Config") of schema and validates the result. User errors come back as
// *SchemaError or *FileTooLargeError.
func Unify(schema, data []byte, schemaPath string, opts ...Option) (cue.Value, error) {
	return newUnifier(opts).run(schema, data, schemaPath)
}

// ParseAndDecode runs Unify and decodes the validated value into T.
func ParseAndDecode[T any](schema, data []byte, schemaPath string, opts ...Option) (*ParseResult[T], error) {
	u := newUnifier(opts)
	unified, err := u.run(schema, data, schemaPath)
	if err != nil {
		return nil, err
	}

	var out T
	if err := unified.Decode(&out); err != nil {
		return nil, FormatError(err, u.file)
	}
	return &ParseResult[T]{Value: &out, Unified: unified}, nil
}
