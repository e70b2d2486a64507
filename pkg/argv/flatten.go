// SPDX-License-Identifier: MPL-2.0

package argv

// FlagPrefix precedes every flag key in the token stream.
const FlagPrefix = "--"

// Flatten renders a variant (or plain record) named name with the given
// fields into its token list.
//
// The first token is KebabCase(name). Each field then contributes, in
// declared order:
//   - optional fields: nothing when absent (or when the inner value encodes
//     to nothing), otherwise "--" + FlagKey(name) followed by the inner
//     tokens, even when the inner value is a record;
//   - flag-like fields (mandatory nested records): their tokens with no key;
//   - value fields: "--" + FlagKey(name) followed by their tokens.
//
// Flatten assumes the field list is well formed; duplicate names are
// rejected by the schema provider before this point.
func Flatten(name string, fields []Field) []string {
	tokens := make([]string, 1, 1+2*len(fields))
	tokens[0] = KebabCase(name)
	return appendFields(tokens, fields)
}

// Tokens flattens the record using its own name.
func (r RecordValue) Tokens() []string {
	return Flatten(r.Name, r.Fields)
}

func appendFields(dst []string, fields []Field) []string {
	for _, f := range fields {
		dst = appendField(dst, f)
	}
	return dst
}

func appendField(dst []string, f Field) []string {
	c := Classify(f.Value)
	encoded := Encode(f.Value)

	switch {
	case c.Optional && len(encoded) == 0:
		return dst
	case c.Flag && !c.Optional:
		return append(dst, encoded...)
	default:
		dst = append(dst, FlagPrefix+FlagKey(f.Name))
		return append(dst, encoded...)
	}
}
