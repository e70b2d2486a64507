// SPDX-License-Identifier: MPL-2.0

// Package sample holds argvkit's built-in example command set: six command
// variants covering every value shape the codec knows, each paired with the
// exact argument line it must produce.
package sample

import (
	"github.com/argvkit/argvkit/pkg/argv"
)

// Mode is an enum-like value with its own argument encoding.
type Mode int

const (
	ModeOne Mode = iota
	ModeTwo
	ModeThree
)

type (
	// SubStruct is spliced into its parent's flags without a key, since
	// Nested.Sub is mandatory.
	SubStruct struct {
		A int32
		B int32
		C int32
		D *int32
		E *int32
	}

	// Mock exercises text fields and a plain string tagged as a path.
	Mock struct {
		With    string
		Without string
		Path    string `argv:",path"`
	}

	// Empty is a unit variant: it renders as its name alone.
	Empty struct{}

	// Run exercises integer and boolean scalars.
	Run struct {
		With    string
		Without string
		And     int64
		Or      bool
	}

	// Long exercises multi-word field names.
	Long struct {
		OrNot      bool
		AndNot     int64
		WithNot    string
		WithoutNot string
	}

	// Nested exercises custom encoders, sequences, optionals and nested records.
	Nested struct {
		Mode  Mode
		Level int32
		Vec   []int32
		Opt   *int64
		Opt2  *int64
		Sub   SubStruct
	}

	// GenSomething exercises pairs and sequences of pairs.
	GenSomething struct {
		SomethingToGen uint
		Tuple          argv.Pair[int32, int32]
		Variables      []argv.Pair[int32, int32]
	}

	// Case is one example command and the argument line it renders to.
	Case struct {
		Name  string
		Value any
		Want  string
	}
)

// String returns the lowercase mode name.
func (m Mode) String() string {
	switch m {
	case ModeOne:
		return "one"
	case ModeTwo:
		return "two"
	case ModeThree:
		return "three"
	default:
		return "unknown"
	}
}

// MarshalArgv encodes the mode as its name.
func (m Mode) MarshalArgv() (argv.Value, error) {
	return argv.Text(m.String()), nil
}

func ptr[T any](v T) *T { return &v }

// Cases returns the example commands in a fixed order. Each call returns
// fresh values.
func Cases() []Case {
	return []Case{
		{
			Name:  "Mock",
			Value: Mock{With: "with", Without: "without", Path: "foo/bar/file.text"},
			Want:  "mock --with with --without without --path foo/bar/file.text",
		},
		{
			Name:  "Empty",
			Value: Empty{},
			Want:  "empty",
		},
		{
			Name:  "Run",
			Value: Run{With: "with", Without: "without", And: 1, Or: true},
			Want:  "run --with with --without without --and 1 --or true",
		},
		{
			Name:  "Long",
			Value: Long{OrNot: true, AndNot: 1, WithNot: "with", WithoutNot: "without"},
			Want:  "long --or-not true --and-not 1 --with-not with --without-not without",
		},
		{
			Name: "Nested",
			Value: Nested{
				Mode:  ModeOne,
				Level: 1,
				Vec:   []int32{1, 2, 3},
				Opt:   ptr[int64](1),
				Opt2:  nil,
				Sub:   SubStruct{A: 0, B: 1, C: 2, D: nil, E: ptr[int32](3)},
			},
			Want: "nested --mode one --level 1 --vec 1,2,3 --opt 1 --a 0 --b 1 --c 2 --e 3",
		},
		{
			Name: "GenSomething",
			Value: GenSomething{
				SomethingToGen: 2,
				Tuple:          argv.MakePair[int32, int32](1, 2),
				Variables:      []argv.Pair[int32, int32]{argv.MakePair[int32, int32](1, 2), argv.MakePair[int32, int32](3, 4)},
			},
			Want: "gen-something --something-to-gen 2 --tuple 1->2 --variables 1->2,3->4",
		},
	}
}

// Lookup returns the case whose name matches name exactly or by kebab case.
func Lookup(name string) (Case, bool) {
	for _, c := range Cases() {
		if c.Name == name || argv.KebabCase(c.Name) == name {
			return c, true
		}
	}
	return Case{}, false
}
