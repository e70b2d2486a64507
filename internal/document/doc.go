// SPDX-License-Identifier: MPL-2.0

// Package document loads command documents: CUE files that describe
// variants and their fields without any Go code.
//
//	commands: [
//		{variant: "GenSomething", fields: {
//			something_to_gen: 2
//			tuple:     [1, 2] @argv(pair)
//			variables: [[1, 2], [3, 4]] @argv(each=pair)
//		}},
//		{variant: "Empty"},
//	]
//
// Each command becomes a list of argv fields in declaration order, ready
// to be flattened with argv.Flatten.
package document
