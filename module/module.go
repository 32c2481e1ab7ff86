// Package module provides the settings-module layer of the resolver: a
// user-supplied object whose attributes are settings.
//
// A module can be a plain map, an exported struct, or a YAML/JSON document
// loaded by identifier through a Registry:
//
//	registry := module.NewRegistry()
//	registry.MustRegister("defaults", func() (module.Module, error) {
//	    return module.FromStruct(Defaults{Workers: 4})
//	})
//
//	mod, err := registry.Load("defaults")
//	mod, err = registry.Load("/etc/app/settings.yaml#production")
package module

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNotStruct is returned by FromStruct for values that are not structs.
var ErrNotStruct = errors.New("module value is not a struct")

// Module exposes named attributes.
type Module interface {
	// Lookup returns the attribute called name and whether it exists.
	Lookup(name string) (any, bool)
}

// Map is a Module backed by a map.
type Map map[string]any

// Lookup returns m[name].
func (m Map) Lookup(name string) (any, bool) {
	value, ok := m[name]

	return value, ok
}

// Func adapts a lookup function to Module.
type Func func(name string) (any, bool)

// Lookup calls f(name).
func (f Func) Lookup(name string) (any, bool) {
	return f(name)
}

type structModule struct {
	value  reflect.Value
	fields map[string][]int
}

// FromStruct exposes the exported fields of a struct, or of the struct a
// pointer refers to. Fields of embedded structs are promoted. The tag
// `setting:"name"` renames a field and `setting:"-"` hides it.
//
// When v is a pointer, lookups observe later changes made through it.
// Integer and float fields are returned as int64 and float64, like the
// values of file modules; a uint64 above math.MaxInt64 stays uint64.
func FromStruct(v any) (Module, error) {
	value := reflect.ValueOf(v)

	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, fmt.Errorf("%w: nil %T", ErrNotStruct, v)
		}

		value = value.Elem()
	}

	if value.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %T", ErrNotStruct, v)
	}

	fields := map[string][]int{}

	for _, field := range reflect.VisibleFields(value.Type()) {
		if !field.IsExported() || field.Anonymous {
			continue
		}

		name := field.Name

		if tag, ok := field.Tag.Lookup("setting"); ok {
			if tag == "-" {
				continue
			}

			if tag != "" {
				name = tag
			}
		}

		fields[name] = field.Index
	}

	return &structModule{value: value, fields: fields}, nil
}

func (s *structModule) Lookup(name string) (any, bool) {
	index, ok := s.fields[name]
	if !ok {
		return nil, false
	}

	field, err := s.value.FieldByIndexErr(index)
	if err != nil {
		return nil, false
	}

	return normalize(field.Interface()), true
}
