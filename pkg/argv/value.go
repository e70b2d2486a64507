// SPDX-License-Identifier: MPL-2.0

package argv

import (
	"fmt"
	"math"
	"strconv"
)

// Kind identifies which node of the closed value taxonomy a Value is.
type Kind uint8

const (
	// KindScalar is a boolean, integer, float, character, or text literal.
	KindScalar Kind = iota + 1
	// KindPath is a filesystem-path-like value rendered by its display form.
	KindPath
	// KindOptional wraps a value that may be absent.
	KindOptional
	// KindSequence is an ordered, homogeneous list of values.
	KindSequence
	// KindPair is exactly two, possibly heterogeneous, values.
	KindPair
	// KindRecord is a nested record that splices its own fields inline.
	KindRecord
	// KindFallback is the catch-all for anything outside the taxonomy.
	KindFallback
)

type (
	// Value is the runtime payload of a field. The set of implementations is
	// closed: only the *Value node types declared in this package satisfy it.
	Value interface {
		Kind() Kind
		sealed()
	}

	// Field is one (name, value) pair of a record or variant. Name is the
	// declared identifier (snake_case or plain); FlagKey derives the key.
	Field struct {
		Name  string
		Value Value
	}

	// ScalarValue holds the canonical literal text of a primitive.
	ScalarValue struct {
		Text string
	}

	// PathValue holds the display form of a filesystem path.
	PathValue struct {
		Display string
	}

	// OptionalValue is present when Inner is non-nil.
	OptionalValue struct {
		Inner Value
	}

	// SequenceValue is an ordered list of elements.
	SequenceValue struct {
		Elems []Value
	}

	// PairValue is an ordered two-element tuple.
	PairValue struct {
		First  Value
		Second Value
	}

	// RecordValue is a named, ordered list of fields. Name is only emitted
	// when the record is the top-level variant passed to Flatten.
	RecordValue struct {
		Name   string
		Fields []Field
	}

	// FallbackValue carries the generic display text of a value that no
	// other kind describes. It is the least precise encoding path.
	FallbackValue struct {
		Text string
	}
)

func (ScalarValue) Kind() Kind   { return KindScalar }
func (PathValue) Kind() Kind     { return KindPath }
func (OptionalValue) Kind() Kind { return KindOptional }
func (SequenceValue) Kind() Kind { return KindSequence }
func (PairValue) Kind() Kind     { return KindPair }
func (RecordValue) Kind() Kind   { return KindRecord }
func (FallbackValue) Kind() Kind { return KindFallback }

func (ScalarValue) sealed()   {}
func (PathValue) sealed()     {}
func (OptionalValue) sealed() {}
func (SequenceValue) sealed() {}
func (PairValue) sealed()     {}
func (RecordValue) sealed()   {}
func (FallbackValue) sealed() {}

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindPath:
		return "path"
	case KindOptional:
		return "optional"
	case KindSequence:
		return "sequence"
	case KindPair:
		return "pair"
	case KindRecord:
		return "record"
	case KindFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// IsPresent reports whether the optional carries a value.
func (o OptionalValue) IsPresent() bool { return o.Inner != nil }

// Bool returns the scalar "true" or "false".
func Bool(b bool) Value { return ScalarValue{Text: strconv.FormatBool(b)} }

// Int returns a signed decimal scalar.
func Int(n int64) Value { return ScalarValue{Text: strconv.FormatInt(n, 10)} }

// Uint returns an unsigned decimal scalar.
func Uint(n uint64) Value { return ScalarValue{Text: strconv.FormatUint(n, 10)} }

// Float returns a float64 scalar in canonical form.
func Float(f float64) Value { return ScalarValue{Text: formatFloat(f, 64)} }

// Float32 returns a float32 scalar in canonical form.
func Float32(f float32) Value { return ScalarValue{Text: formatFloat(float64(f), 32)} }

// Char returns a single-character scalar.
func Char(r rune) Value { return ScalarValue{Text: string(r)} }

// Text returns a text scalar, copied through verbatim.
func Text(s string) Value { return ScalarValue{Text: s} }

// Path returns a path value. Separators are kept as given; no quoting.
func Path(p string) Value { return PathValue{Display: p} }

// Some returns a present optional.
func Some(v Value) Value { return OptionalValue{Inner: v} }

// None returns an absent optional.
func None() Value { return OptionalValue{} }

// Seq returns a sequence of the given elements in order.
func Seq(elems ...Value) Value { return SequenceValue{Elems: elems} }

// PairOf returns the ordered pair (a, b).
func PairOf(a, b Value) Value { return PairValue{First: a, Second: b} }

// Record returns a nested record value.
func Record(name string, fields ...Field) Value {
	return RecordValue{Name: name, Fields: fields}
}

// Display returns a fallback value carrying fmt's %v rendering of x.
func Display(x any) Value { return FallbackValue{Text: fmt.Sprint(x)} }

// formatFloat renders a float the way the token format expects: shortest
// round-trip decimal digits, never an exponent, and inf/-inf/NaN for the
// IEEE specials.
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}
