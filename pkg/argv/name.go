// SPDX-License-Identifier: MPL-2.0

package argv

import (
	"strings"
	"unicode"
)

// KebabCase converts an identifier-case name to kebab-case.
//
// Every uppercase rune is lowercased and, unless it is the first rune
// written, preceded by a hyphen. Other runes are copied through, so names
// that are already kebab-case come back unchanged. Acronyms are split per
// letter: "HTTPServer" becomes "h-t-t-p-server".
func KebabCase(name string) string {
	var sb strings.Builder
	sb.Grow(len(name) + 4)
	for _, r := range name {
		if unicode.IsUpper(r) {
			if sb.Len() > 0 {
				sb.WriteByte('-')
			}
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// FlagKey converts a field name to its flag key by replacing every
// underscore with a hyphen. No case folding is applied.
func FlagKey(field string) string {
	return strings.ReplaceAll(field, "_", "-")
}

// snakeCase derives the declared field name of a Go struct field from its
// identifier: "SomethingToGen" becomes "something_to_gen". Unlike KebabCase
// it keeps a run of capitals together as one word, so Go initialisms stay
// readable: "ID" becomes "id" and "InputURL" becomes "input_url". A run
// followed by a lowercase rune ends before its last capital, which starts
// the next word ("HTTPServer" becomes "http_server").
func snakeCase(ident string) string {
	runes := []rune(ident)
	var sb strings.Builder
	sb.Grow(len(ident) + 4)
	for i, r := range runes {
		if !unicode.IsUpper(r) {
			sb.WriteRune(r)
			continue
		}
		if i > 0 && runes[i-1] != '_' {
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if !unicode.IsUpper(runes[i-1]) || nextLower {
				sb.WriteByte('_')
			}
		}
		sb.WriteRune(unicode.ToLower(r))
	}
	return sb.String()
}
