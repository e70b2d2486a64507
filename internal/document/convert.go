// SPDX-License-Identifier: MPL-2.0

package document

import (
	"fmt"
	"unicode/utf8"

	"github.com/argvkit/argvkit/pkg/argv"
	"github.com/argvkit/argvkit/pkg/cueutil"

	"cuelang.org/go/cue"
)

type (
	// converter maps validated CUE values onto the argv value taxonomy.
	converter struct {
		filename    string
		strict      bool
		maxFileSize int64
	}

	// fieldAttrs is the parsed form of an @argv(...) attribute.
	fieldAttrs struct {
		path     bool
		char     bool
		pair     bool
		optional bool
		// each applies to every element of a list value.
		each *fieldAttrs
	}
)

func (c *converter) fields(v cue.Value) ([]argv.Field, error) {
	if !v.Exists() {
		return nil, nil
	}
	iter, err := v.Fields(cue.Optional(true))
	if err != nil {
		return nil, cueutil.FormatError(err, c.filename)
	}

	var fields []argv.Field
	for iter.Next() {
		fv := iter.Value()
		attrs, err := c.attrs(fv)
		if err != nil {
			return nil, err
		}

		var value argv.Value
		if iter.IsOptional() && !fv.IsConcrete() {
			value = argv.None()
		} else {
			value, err = c.value(fv, attrs)
			if err != nil {
				return nil, err
			}
			if iter.IsOptional() && !attrs.optional {
				value = argv.Some(value)
			}
		}
		fields = append(fields, argv.Field{Name: iter.Selector().Unquoted(), Value: value})
	}
	return fields, nil
}

func (c *converter) value(v cue.Value, attrs fieldAttrs) (argv.Value, error) {
	if attrs.optional {
		inner := attrs
		inner.optional = false
		value, err := c.value(v, inner)
		if err != nil {
			return nil, err
		}
		return argv.Some(value), nil
	}

	switch v.Kind() {
	case cue.NullKind:
		return argv.None(), nil
	case cue.BoolKind:
		b, err := v.Bool()
		if err != nil {
			return nil, cueutil.FormatError(err, c.filename)
		}
		return argv.Bool(b), nil
	case cue.IntKind:
		return c.integer(v)
	case cue.FloatKind:
		f, err := v.Float64()
		if err != nil {
			return nil, cueutil.FormatError(err, c.filename)
		}
		return argv.Float(f), nil
	case cue.StringKind:
		return c.text(v, attrs)
	case cue.ListKind:
		return c.list(v, attrs)
	case cue.StructKind:
		fields, err := c.fields(v)
		if err != nil {
			return nil, err
		}
		return argv.Record(label(v), fields...), nil
	case cue.BytesKind:
		b, err := v.Bytes()
		if err != nil {
			return nil, cueutil.FormatError(err, c.filename)
		}
		if c.strict {
			return nil, fmt.Errorf("%w (%w)", c.invalid(v, "bytes values have no token encoding",
				"use a string, or render without --strict"), argv.ErrUnsupportedKind)
		}
		return argv.Display(b), nil
	default:
		return nil, c.invalid(v, fmt.Sprintf("value of kind %s cannot be rendered", v.IncompleteKind()),
			"give the field a concrete value or mark it optional with ?")
	}
}

func (c *converter) integer(v cue.Value) (argv.Value, error) {
	if n, err := v.Int64(); err == nil {
		return argv.Int(n), nil
	}
	n, err := v.Int(nil)
	if err != nil {
		return nil, cueutil.FormatError(err, c.filename)
	}
	return argv.ScalarValue{Text: n.String()}, nil
}

func (c *converter) text(v cue.Value, attrs fieldAttrs) (argv.Value, error) {
	s, err := v.String()
	if err != nil {
		return nil, cueutil.FormatError(err, c.filename)
	}
	switch {
	case attrs.path:
		return argv.Path(s), nil
	case attrs.char:
		if utf8.RuneCountInString(s) != 1 {
			return nil, c.invalid(v, fmt.Sprintf("char value %q must be exactly one character", s), "")
		}
		r, _ := utf8.DecodeRuneInString(s)
		return argv.Char(r), nil
	default:
		return argv.Text(s), nil
	}
}

func (c *converter) list(v cue.Value, attrs fieldAttrs) (argv.Value, error) {
	iter, err := v.List()
	if err != nil {
		return nil, cueutil.FormatError(err, c.filename)
	}

	var elemAttrs fieldAttrs
	if attrs.each != nil {
		elemAttrs = *attrs.each
	}

	var elems []argv.Value
	for iter.Next() {
		elem, err := c.value(iter.Value(), elemAttrs)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}

	if !attrs.pair {
		return argv.Seq(elems...), nil
	}
	if len(elems) != 2 {
		return nil, fmt.Errorf("%s: %w", c.filename, &argv.InvalidPairError{
			Field: cueutil.PathOf(v).String(),
			Len:   len(elems),
		})
	}
	return argv.PairOf(elems[0], elems[1]), nil
}

// attrs parses the @argv attribute of v. A missing attribute yields the
// zero fieldAttrs.
func (c *converter) attrs(v cue.Value) (fieldAttrs, error) {
	attr := v.Attribute(attrKey)
	if attr.Err() != nil {
		return fieldAttrs{}, nil
	}

	var out fieldAttrs
	for i := range attr.NumArgs() {
		key, val := attr.Arg(i)
		switch key {
		case "path":
			out.path = true
		case "char":
			out.char = true
		case "pair":
			out.pair = true
		case "optional":
			out.optional = true
		case "each":
			each, ok := elementAttrs(val)
			if !ok {
				return fieldAttrs{}, c.invalid(v, fmt.Sprintf("unknown @argv(each=%s)", val),
					"each accepts pair, path or char")
			}
			out.each = each
		default:
			return fieldAttrs{}, c.invalid(v, fmt.Sprintf("unknown @argv option %q", key),
				"valid options are path, char, pair, optional and each=<option>")
		}
	}
	return out, nil
}

// label returns the last selector of v's path, which names nested records.
func label(v cue.Value) string {
	sels := v.Path().Selectors()
	if len(sels) == 0 {
		return ""
	}
	sel := sels[len(sels)-1]
	if sel.LabelType() == cue.StringLabel {
		return sel.Unquoted()
	}
	return sel.String()
}

func elementAttrs(name string) (*fieldAttrs, bool) {
	switch name {
	case "pair":
		return &fieldAttrs{pair: true}, true
	case "path":
		return &fieldAttrs{path: true}, true
	case "char":
		return &fieldAttrs{char: true}, true
	default:
		return nil, false
	}
}

func (c *converter) invalid(v cue.Value, msg, suggestion string) *cueutil.ValidationError {
	return &cueutil.ValidationError{
		FilePath:   c.filename,
		CUEPath:    cueutil.PathOf(v),
		Message:    msg,
		Suggestion: suggestion,
	}
}
