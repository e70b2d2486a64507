// SPDX-License-Identifier: MPL-2.0

package cueutil

// DefaultMaxFileSize caps the input accepted by Unify (5 MiB). Documents and
// config files are hand-written, so larger input is rejected unread.
const DefaultMaxFileSize int64 = 5 << 20

// Option adjusts a single Unify or ParseAndDecode call.
type Option func(*unifier)

// WithMaxFileSize replaces DefaultMaxFileSize.
func WithMaxFileSize(size int64) Option {
	return func(u *unifier) { u.maxSize = size }
}

// WithConcrete controls whether regular fields must be concrete after
// unification. It defaults to true. Optional fields (name?: T) are exempt
// either way.
//
// Config files pass false so that unset values keep their defaults.
func WithConcrete(concrete bool) Option {
	return func(u *unifier) { u.concrete = concrete }
}

// WithFilename names the input in diagnostics. Unnamed input is reported
// as "<input>".
func WithFilename(name string) Option {
	return func(u *unifier) {
		if name != "" {
			u.file = name
		}
	}
}
