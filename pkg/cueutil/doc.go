// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates user CUE files against an embedded schema.
//
// Unify compiles the input, unifies it with one definition of the schema and
// validates the result. ParseAndDecode also decodes it into a Go type:
//
//	result, err := cueutil.ParseAndDecode[header](schemaBytes, data, "#Document",
//		cueutil.WithFilename("commands.cue"))
//
// Use the returned Unified value when field declaration order matters,
// since neither maps nor struct decoding preserve it.
//
// Diagnostics are *SchemaError values whose paths use JSON-path notation
// (commands[0].fields.tuple) so they read the same in every error message.
package cueutil
