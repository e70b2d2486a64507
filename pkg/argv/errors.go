// SPDX-License-Identifier: MPL-2.0

package argv

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrUnsupportedKind is the sentinel error wrapped by UnsupportedKindError.
	ErrUnsupportedKind = errors.New("unsupported value kind")
	// ErrDuplicateField is the sentinel error wrapped by DuplicateFieldError.
	ErrDuplicateField = errors.New("duplicate field name")
	// ErrNotRecord is returned when the top-level value is not a struct.
	ErrNotRecord = errors.New("value is not a record")
	// ErrUnnamedRecord is returned when a top-level record has no type name
	// and does not implement Namer.
	ErrUnnamedRecord = errors.New("record has no name")
	// ErrNilValue is returned when Marshal is given nil or a nil pointer.
	ErrNilValue = errors.New("nil value")
	// ErrInvalidPair is the sentinel error wrapped by InvalidPairError.
	ErrInvalidPair = errors.New("invalid pair")
)

type (
	// UnsupportedKindError is returned by a strict Encoder when a value falls
	// outside the kind taxonomy and would otherwise use the fallback encoding.
	UnsupportedKindError struct {
		// Field is the dotted path of the offending field, empty at top level.
		Field string
		Type  reflect.Type
	}

	// DuplicateFieldError is returned when two fields of one record resolve
	// to the same declared name.
	DuplicateFieldError struct {
		Record string
		Name   string
	}

	// InvalidPairError is returned when a value marked as a pair does not
	// hold exactly two elements.
	InvalidPairError struct {
		Field string
		Len   int
	}
)

// Error implements the error interface.
func (e *UnsupportedKindError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("unsupported value kind %s (type %s)", e.Type.Kind(), e.Type)
	}
	return fmt.Sprintf("field %s: unsupported value kind %s (type %s)", e.Field, e.Type.Kind(), e.Type)
}

// Unwrap returns ErrUnsupportedKind for errors.Is() compatibility.
func (e *UnsupportedKindError) Unwrap() error { return ErrUnsupportedKind }

// Error implements the error interface.
func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("record %s: duplicate field name %q", e.Record, e.Name)
}

// Unwrap returns ErrDuplicateField for errors.Is() compatibility.
func (e *DuplicateFieldError) Unwrap() error { return ErrDuplicateField }

// Error implements the error interface.
func (e *InvalidPairError) Error() string {
	return fmt.Sprintf("field %s: pair must have exactly 2 elements, got %d", e.Field, e.Len)
}

// Unwrap returns ErrInvalidPair for errors.Is() compatibility.
func (e *InvalidPairError) Unwrap() error { return ErrInvalidPair }
