// Package isolate produces immutable deep copies of parameter values and
// deterministic content hashes over them.
//
// Isolation converts a live Go value into a cty value. cty values are deeply
// immutable, so once a value has been isolated no mutation of the original
// can reach the copy. The supported value kinds form a closed set: scalars,
// sequences, string-keyed mappings, structs, and pointers to those. Anything
// else fails fast with an UnsupportedValueError rather than being silently
// reference-copied, because a shared reference would break the
// no-mutation-after-capture invariant that caching depends on.
package isolate

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/zclconf/go-cty/cty"
)

// UnsupportedValueError reports a value that cannot be isolated. Path locates
// the offending value inside the isolated root ("level", "files[2]",
// "options.dict").
type UnsupportedValueError struct {
	Path string
	Kind reflect.Kind
}

// Error implements the error interface.
func (e *UnsupportedValueError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("value of kind %s cannot be isolated", e.Kind)
	}
	return fmt.Sprintf("value at %q of kind %s cannot be isolated", e.Path, e.Kind)
}

// Value isolates an arbitrary Go value into an immutable cty value. A nil
// value isolates to a null. Values that are already cty values pass through
// unchanged, since they are immutable by construction.
func Value(v any) (cty.Value, error) {
	return walk("", reflect.ValueOf(v))
}

// Property isolates a value read from a named property, so that failures
// report the property path.
func Property(name string, v any) (cty.Value, error) {
	return walk(name, reflect.ValueOf(v))
}

func walk(path string, rv reflect.Value) (cty.Value, error) {
	if !rv.IsValid() {
		return cty.NullVal(cty.DynamicPseudoType), nil
	}
	if rv.Type() == reflect.TypeOf(cty.Value{}) {
		return rv.Interface().(cty.Value), nil
	}

	switch rv.Kind() {
	case reflect.Bool:
		return cty.BoolVal(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cty.NumberIntVal(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return cty.NumberUIntVal(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return cty.NumberFloatVal(rv.Float()), nil
	case reflect.String:
		return cty.StringVal(rv.String()), nil

	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return cty.NullVal(cty.DynamicPseudoType), nil
		}
		return walk(path, rv.Elem())

	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return cty.NullVal(cty.DynamicPseudoType), nil
		}
		if rv.Len() == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, rv.Len())
		for idx := 0; idx < rv.Len(); idx++ {
			elem, err := walk(fmt.Sprintf("%s[%d]", path, idx), rv.Index(idx))
			if err != nil {
				return cty.NilVal, err
			}
			elems[idx] = elem
		}
		return cty.TupleVal(elems), nil

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return cty.NilVal, &UnsupportedValueError{Path: path, Kind: rv.Kind()}
		}
		if rv.IsNil() {
			return cty.NullVal(cty.DynamicPseudoType), nil
		}
		if rv.Len() == 0 {
			return cty.EmptyObjectVal, nil
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		attrs := make(map[string]cty.Value, len(keys))
		for _, k := range keys {
			elem, err := walk(joinPath(path, k), rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())))
			if err != nil {
				return cty.NilVal, err
			}
			attrs[k] = elem
		}
		return cty.ObjectVal(attrs), nil

	case reflect.Struct:
		t := rv.Type()
		attrs := make(map[string]cty.Value)
		for idx := 0; idx < t.NumField(); idx++ {
			field := t.Field(idx)
			if !field.IsExported() {
				continue
			}
			elem, err := walk(joinPath(path, field.Name), rv.Field(idx))
			if err != nil {
				return cty.NilVal, err
			}
			attrs[field.Name] = elem
		}
		if len(attrs) == 0 {
			return cty.EmptyObjectVal, nil
		}
		return cty.ObjectVal(attrs), nil

	default:
		return cty.NilVal, &UnsupportedValueError{Path: path, Kind: rv.Kind()}
	}
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
