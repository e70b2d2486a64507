// SPDX-License-Identifier: MPL-2.0

package argv

import "strings"

const (
	// SequenceSeparator joins the encoded elements of a sequence.
	SequenceSeparator = ","
	// PairSeparator joins the two sides of a pair.
	PairSeparator = "->"
)

// Capability describes how the flattening layer renders a field's value.
type Capability struct {
	// Flag means the value is a record. A mandatory record field splices its
	// tokens with no --key prefix.
	Flag bool
	// Optional means the field is omitted entirely when it encodes to nothing
	// and keyed like a value field otherwise.
	Optional bool
}

// IsValue reports whether a present field is rendered as --key followed by
// its tokens. Only mandatory records are not.
func (c Capability) IsValue() bool { return !c.Flag || c.Optional }

// Classify returns the capability of v. A nil Value is an absent optional.
func Classify(v Value) Capability {
	switch v := v.(type) {
	case nil:
		return Capability{Optional: true}
	case OptionalValue:
		if v.Inner == nil {
			return Capability{Optional: true}
		}
		inner := Classify(v.Inner)
		return Capability{Flag: inner.Flag, Optional: true}
	case RecordValue:
		return Capability{Flag: true}
	case ScalarValue, PathValue, SequenceValue, PairValue, FallbackValue:
		return Capability{}
	default:
		panic("argv: unhandled value kind " + v.Kind().String())
	}
}

// Encode returns the literal tokens of v, never including a --key prefix.
//
// Scalars, paths, sequences, pairs and fallbacks always yield exactly one
// token. Optionals yield nothing when absent. Records yield their flattened
// fields.
func Encode(v Value) []string {
	switch v := v.(type) {
	case nil:
		return nil
	case ScalarValue:
		return []string{v.Text}
	case PathValue:
		return []string{v.Display}
	case OptionalValue:
		if v.Inner == nil {
			return nil
		}
		return Encode(v.Inner)
	case SequenceValue:
		parts := make([]string, len(v.Elems))
		for i, elem := range v.Elems {
			parts[i] = firstToken(elem)
		}
		return []string{strings.Join(parts, SequenceSeparator)}
	case PairValue:
		return []string{firstToken(v.First) + PairSeparator + firstToken(v.Second)}
	case RecordValue:
		return appendFields(nil, v.Fields)
	case FallbackValue:
		return []string{v.Text}
	default:
		panic("argv: unhandled value kind " + v.Kind().String())
	}
}

// firstToken is the element encoding used inside sequences and pairs: only
// the first token survives, and an empty encoding contributes "".
func firstToken(v Value) string {
	tokens := Encode(v)
	if len(tokens) == 0 {
		return ""
	}
	return tokens[0]
}
