// SPDX-License-Identifier: MPL-2.0

// Package argv serializes typed values into command-line token lists.
//
// A variant (one case of a tagged union, modelled in Go as a struct type)
// becomes its kebab-cased name followed by one contribution per field, in
// declaration order:
//
//	type GenSomething struct {
//		SomethingToGen uint
//		Tuple          argv.Pair[int, int]
//		Variables      []argv.Pair[int, int]
//	}
//
//	argv.Marshal(GenSomething{2, argv.MakePair(1, 2), ...})
//	// ["gen-something", "--something-to-gen", "2", "--tuple", "1->2", "--variables", "1->2,3->4"]
//
// # Layers
//
// The capability layer (Classify, Encode) works on a closed Value
// taxonomy: scalars, paths, optionals, sequences, pairs, records and a
// fallback display kind. The flattening layer (Flatten, KebabCase, FlagKey)
// assembles the final list; mandatory nested records splice their own
// --key value pairs inline with no enclosing key, absent optionals vanish,
// and present optionals are keyed whatever their inner kind.
//
// The reflection provider (Encoder, Marshal, Describe) builds Value trees
// from Go structs. Field names come from the `argv` struct tag or from the
// snake_case form of the Go identifier. Per-type field layouts are computed
// once and cached for the life of the process.
//
// Everything here is a pure function of its input and safe for concurrent use.
package argv
