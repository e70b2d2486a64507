// SPDX-License-Identifier: MPL-2.0

package argv

import (
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func newProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return gopter.NewProperties(parameters)
}

// Property: KebabCase(KebabCase(s)) == KebabCase(s)
func TestKebabCaseProperties(t *testing.T) {
	t.Parallel()

	properties := newProperties()

	properties.Property("kebab-casing is idempotent", prop.ForAll(
		func(s string) bool {
			once := KebabCase(s)
			return KebabCase(once) == once
		},
		gen.AlphaString(),
	))

	properties.Property("lowercase names are unchanged", prop.ForAll(
		func(s string) bool {
			return KebabCase(s) == s
		},
		gen.Identifier().Map(strings.ToLower),
	))

	properties.Property("flag keys contain no underscores", prop.ForAll(
		func(parts []string) bool {
			return !strings.Contains(FlagKey(strings.Join(parts, "_")), "_")
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}

// Property: split(Encode(Seq(xs)), ",") == xs for non-empty xs
func TestSequenceProperties(t *testing.T) {
	t.Parallel()

	properties := newProperties()

	properties.Property("sequence encoding preserves element order", prop.ForAll(
		func(xs []int64) bool {
			if len(xs) == 0 {
				return slices.Equal(Encode(Seq()), []string{""})
			}
			elems := make([]Value, len(xs))
			want := make([]string, len(xs))
			for i, x := range xs {
				elems[i] = Int(x)
				want[i] = strconv.FormatInt(x, 10)
			}
			tokens := Encode(Seq(elems...))
			return len(tokens) == 1 && slices.Equal(strings.Split(tokens[0], SequenceSeparator), want)
		},
		gen.SliceOf(gen.Int64()),
	))

	properties.Property("pair encoding is ordered", prop.ForAll(
		func(a, b int64) bool {
			ab := Encode(PairOf(Int(a), Int(b)))
			ba := Encode(PairOf(Int(b), Int(a)))
			if a == b {
				return slices.Equal(ab, ba)
			}
			return !slices.Equal(ab, ba)
		},
		gen.Int64(),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

// Property: len(Flatten(v)) == 1 + sum of per-field contributions
func TestFlattenProperties(t *testing.T) {
	t.Parallel()

	properties := newProperties()

	properties.Property("token count matches field contributions", prop.ForAll(
		func(present []bool, records []bool) bool {
			fields := make([]Field, 0, len(present)+len(records))
			want := 1
			for i, p := range present {
				name := "f_" + strconv.Itoa(i)
				if p {
					fields = append(fields, Field{Name: name, Value: Some(Int(int64(i)))})
					want += 2
					continue
				}
				fields = append(fields, Field{Name: name, Value: None()})
			}
			for i, withField := range records {
				name := "r_" + strconv.Itoa(i)
				if withField {
					fields = append(fields, Field{Name: name, Value: Record("Sub", Field{Name: "x", Value: Int(1)})})
					want += 2
					continue
				}
				fields = append(fields, Field{Name: name, Value: Record("Unit")})
			}
			return len(Flatten("Variant", fields)) == want
		},
		gen.SliceOf(gen.Bool()),
		gen.SliceOf(gen.Bool()),
	))

	properties.Property("present optional records are keyed", prop.ForAll(
		func(sizes []int) bool {
			fields := make([]Field, len(sizes))
			want := 1
			for i, n := range sizes {
				inner := make([]Field, n)
				for j := range inner {
					inner[j] = Field{Name: "x_" + strconv.Itoa(j), Value: Int(int64(j))}
				}
				rec := Record("Sub", inner...)
				fields[i] = Field{Name: "o_" + strconv.Itoa(i), Value: Some(rec)}
				if encoded := len(Encode(rec)); encoded > 0 {
					want += 1 + encoded
				}
			}
			return len(Flatten("Variant", fields)) == want
		},
		gen.SliceOf(gen.IntRange(0, 3)),
	))

	properties.Property("first token is the kebab-cased variant name", prop.ForAll(
		func(name string) bool {
			return Flatten(name, nil)[0] == KebabCase(name)
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
