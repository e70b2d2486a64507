// SPDX-License-Identifier: MPL-2.0

package argv

// Pair is a two-element tuple field. It encodes as "first->second".
//
//	type GenSomething struct {
//		Tuple     argv.Pair[int, int]
//		Variables []argv.Pair[int, int]
//	}
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair returns the pair (a, b).
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// argvPair marks every instantiation of Pair for the reflection provider,
// which then reads First and Second as struct fields 0 and 1.
func (Pair[A, B]) argvPair() {}

type pairer interface {
	argvPair()
}
