// SPDX-License-Identifier: MPL-2.0

package argv

import (
	"reflect"
	"strings"
	"sync"
)

// TagName is the struct tag key read by the reflection provider.
//
//	type Run struct {
//		Input  string `argv:"input_file,path"`
//		Marker int32  `argv:",char"`
//		Debug  bool   `argv:"-"`
//	}
const TagName = "argv"

type (
	tagOptions struct {
		path bool
		char bool
	}

	fieldSchema struct {
		index int
		name  string
		opts  tagOptions
	}

	// typeSchema is the ordered field description of one struct type.
	// It is computed once per type and never mutated afterwards.
	typeSchema struct {
		fields []fieldSchema
		err    error
	}
)

// schemaCache maps reflect.Type to *typeSchema.
var schemaCache sync.Map

func schemaFor(t reflect.Type) *typeSchema {
	if s, ok := schemaCache.Load(t); ok {
		return s.(*typeSchema)
	}
	s, _ := schemaCache.LoadOrStore(t, buildSchema(t))
	return s.(*typeSchema)
}

func buildSchema(t reflect.Type) *typeSchema {
	s := &typeSchema{fields: make([]fieldSchema, 0, t.NumField())}
	seen := make(map[string]struct{}, t.NumField())

	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag := sf.Tag.Get(TagName)
		if tag == "-" {
			continue
		}
		name, opts := parseTag(tag)
		if name == "" {
			name = snakeCase(sf.Name)
		}
		if _, dup := seen[name]; dup {
			s.err = &DuplicateFieldError{Record: t.String(), Name: name}
			return s
		}
		seen[name] = struct{}{}
		s.fields = append(s.fields, fieldSchema{index: i, name: name, opts: opts})
	}
	return s
}

func parseTag(tag string) (string, tagOptions) {
	name, rest, _ := strings.Cut(tag, ",")
	var opts tagOptions
	for rest != "" {
		var opt string
		opt, rest, _ = strings.Cut(rest, ",")
		switch strings.TrimSpace(opt) {
		case "path":
			opts.path = true
		case "char":
			opts.char = true
		}
	}
	return strings.TrimSpace(name), opts
}

// typeName returns the declared name of t without generic type arguments.
func typeName(t reflect.Type) string {
	name, _, _ := strings.Cut(t.Name(), "[")
	return name
}
