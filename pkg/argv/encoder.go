// SPDX-License-Identifier: MPL-2.0

package argv

import (
	"encoding"
	"fmt"
	"reflect"

	"github.com/argvkit/argvkit/pkg/types"

	"github.com/charmbracelet/log"
)

type (
	// Namer overrides the variant name of a top-level record. The returned
	// name is still normalized with KebabCase.
	Namer interface {
		ArgvName() string
	}

	// Marshaler is implemented by types that build their own Value. A nil
	// Value is treated as an absent optional.
	Marshaler interface {
		MarshalArgv() (Value, error)
	}

	// Encoder turns Go values into token lists using reflection. An Encoder
	// holds no mutable state and is safe for concurrent use.
	Encoder struct {
		strict bool
		logger *log.Logger
	}

	// Option configures an Encoder.
	Option func(*Encoder)
)

var (
	pairerType         = reflect.TypeFor[pairer]()
	filesystemPathType = reflect.TypeFor[types.FilesystemPath]()

	defaultEncoder = NewEncoder()
)

// NewEncoder returns an Encoder. Without options it is lenient: values
// outside the kind taxonomy use the fallback display encoding.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WithStrict makes the Encoder reject values that would need the fallback
// encoding with an *UnsupportedKindError.
func WithStrict(strict bool) Option {
	return func(e *Encoder) {
		e.strict = strict
	}
}

// WithLogger sets the logger used to report fallback encodings at debug level.
func WithLogger(logger *log.Logger) Option {
	return func(e *Encoder) {
		e.logger = logger
	}
}

// Marshal flattens v with the default lenient Encoder.
func Marshal(v any) ([]string, error) {
	return defaultEncoder.Marshal(v)
}

// MustMarshal is like Marshal but panics on error. Use it for values whose
// types are known to be well formed, such as package-level command tables.
func MustMarshal(v any) []string {
	tokens, err := Marshal(v)
	if err != nil {
		panic(err)
	}
	return tokens
}

// Describe builds the value tree of v with the default lenient Encoder.
func Describe(v any) (RecordValue, error) {
	return defaultEncoder.Describe(v)
}

// Marshal flattens v, which must be a struct or a non-nil pointer to one,
// into its token list. The first token is the kebab-cased variant name.
func (e *Encoder) Marshal(v any) ([]string, error) {
	rec, err := e.Describe(v)
	if err != nil {
		return nil, err
	}
	return rec.Tokens(), nil
}

// Describe builds the RecordValue for v without flattening it.
func (e *Encoder) Describe(v any) (RecordValue, error) {
	if v == nil {
		return RecordValue{}, ErrNilValue
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return RecordValue{}, ErrNilValue
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return RecordValue{}, fmt.Errorf("%w: got %s", ErrNotRecord, rv.Type())
	}
	// Work on an addressable copy so that pointer-receiver hooks apply the
	// same way whether v was passed by value or by pointer.
	if !rv.CanAddr() {
		addressable := reflect.New(rv.Type()).Elem()
		addressable.Set(rv)
		rv = addressable
	}

	name := typeName(rv.Type())
	if n, ok := v.(Namer); ok {
		name = n.ArgvName()
	} else if n, ok := implementer[Namer](rv); ok {
		name = n.ArgvName()
	}
	if name == "" {
		return RecordValue{}, fmt.Errorf("%w: %s", ErrUnnamedRecord, rv.Type())
	}

	fields, err := e.fields(rv, "")
	if err != nil {
		return RecordValue{}, err
	}
	return RecordValue{Name: name, Fields: fields}, nil
}

func (e *Encoder) fields(rv reflect.Value, path string) ([]Field, error) {
	s := schemaFor(rv.Type())
	if s.err != nil {
		return nil, s.err
	}

	fields := make([]Field, 0, len(s.fields))
	for _, fs := range s.fields {
		fv, err := e.value(rv.Field(fs.index), fs.opts, joinPath(path, fs.name))
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{Name: fs.name, Value: fv})
	}
	return fields, nil
}

func (e *Encoder) value(rv reflect.Value, opts tagOptions, path string) (Value, error) {
	if !rv.IsValid() {
		return None(), nil
	}

	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return None(), nil
		}
		inner, err := e.value(rv.Elem(), opts, path)
		if err != nil {
			return nil, err
		}
		return Some(inner), nil
	case reflect.Interface:
		if rv.IsNil() {
			return None(), nil
		}
		return e.value(rv.Elem(), opts, path)
	}

	if v, ok, err := e.hooked(rv, path); ok || err != nil {
		return v, err
	}

	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int32:
		if opts.char {
			return Char(rune(rv.Int())), nil
		}
		return Int(rv.Int()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Uint(rv.Uint()), nil
	case reflect.Float32:
		return Float32(float32(rv.Float())), nil
	case reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.String:
		if opts.path {
			return Path(rv.String()), nil
		}
		return Text(rv.String()), nil
	case reflect.Slice, reflect.Array:
		elems := make([]Value, rv.Len())
		for i := range rv.Len() {
			elem, err := e.value(rv.Index(i), opts, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			elems[i] = elem
		}
		return SequenceValue{Elems: elems}, nil
	case reflect.Struct:
		if rv.Type().Implements(pairerType) {
			return e.pair(rv, path)
		}
		fields, err := e.fields(rv, path)
		if err != nil {
			return nil, err
		}
		return RecordValue{Name: typeName(rv.Type()), Fields: fields}, nil
	default:
		return e.fallback(rv, path)
	}
}

// hooked resolves values whose types define their own encoding. Stringer is
// only honored for non-struct kinds so that records with a debugging String
// method still expand as records.
func (e *Encoder) hooked(rv reflect.Value, path string) (Value, bool, error) {
	t := rv.Type()
	if t == filesystemPathType {
		return Path(rv.String()), true, nil
	}

	if m, ok := implementer[Marshaler](rv); ok {
		v, err := m.MarshalArgv()
		if err != nil {
			return nil, true, fmt.Errorf("field %s: %w", path, err)
		}
		if v == nil {
			return None(), true, nil
		}
		return v, true, nil
	}

	if tm, ok := implementer[encoding.TextMarshaler](rv); ok {
		text, err := tm.MarshalText()
		if err != nil {
			return nil, true, fmt.Errorf("field %s: %w", path, err)
		}
		return Text(string(text)), true, nil
	}

	if t.Kind() != reflect.Struct {
		if s, ok := implementer[fmt.Stringer](rv); ok {
			return Text(s.String()), true, nil
		}
	}
	return nil, false, nil
}

func (e *Encoder) pair(rv reflect.Value, path string) (Value, error) {
	first, err := e.value(rv.Field(0), tagOptions{}, path+".first")
	if err != nil {
		return nil, err
	}
	second, err := e.value(rv.Field(1), tagOptions{}, path+".second")
	if err != nil {
		return nil, err
	}
	return PairOf(first, second), nil
}

func (e *Encoder) fallback(rv reflect.Value, path string) (Value, error) {
	if e.strict {
		return nil, &UnsupportedKindError{Field: path, Type: rv.Type()}
	}
	if e.logger != nil {
		e.logger.Debug("using fallback encoding", "field", path, "type", rv.Type().String())
	}
	return FallbackValue{Text: fmt.Sprint(rv)}, nil
}

// implementer returns rv, or a pointer to it, as T when either method set
// allows. Values that are not addressable are copied first.
func implementer[T any](rv reflect.Value) (T, bool) {
	var zero T
	if !rv.CanInterface() {
		return zero, false
	}
	if x, ok := rv.Interface().(T); ok {
		return x, true
	}
	if rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		return zero, false
	}
	ptr := reflect.PointerTo(rv.Type())
	if !ptr.Implements(reflect.TypeFor[T]()) {
		return zero, false
	}
	if !rv.CanAddr() {
		addressable := reflect.New(rv.Type()).Elem()
		addressable.Set(rv)
		rv = addressable
	}
	return rv.Addr().Interface().(T), true
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
