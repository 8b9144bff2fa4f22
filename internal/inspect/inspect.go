// Package inspect derives the declared input properties of transform
// parameter types.
//
// A parameter type declares which of its fields participate in the
// transform's cache identity through the `transform` struct tag:
//
//	type Params struct {
//		Level    int      `transform:"level,input"`
//		Manifest string   `transform:"manifest,input_file"`
//		Extra    Options  `transform:"extra,nested"`
//	}
//
// The tag names the property and assigns it one of the recognized input
// roles. Untagged fields (and fields tagged "-") are invisible to
// snapshotting. Inspection is a pure function of the type; its result is
// computed once per type and cached for reuse across registrations.
package inspect

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/patrickmn/go-cache"
)

// Role classifies how a declared property feeds the transform's inputs.
type Role string

// The recognized input-declaring roles. Any other role verb in a tag is a
// configuration error.
const (
	RoleInput          Role = "input"
	RoleInputFile      Role = "input_file"
	RoleInputFiles     Role = "input_files"
	RoleInputDirectory Role = "input_dir"
	RoleClasspath      Role = "classpath"
	RoleNested         Role = "nested"
)

var recognizedRoles = map[Role]struct{}{
	RoleInput:          {},
	RoleInputFile:      {},
	RoleInputFiles:     {},
	RoleInputDirectory: {},
	RoleClasspath:      {},
	RoleNested:         {},
}

// Property describes one declared input property of a parameter type.
type Property struct {
	// Name is the declared property name from the tag.
	Name string
	// Field is the Go field name backing the property.
	Field string
	// Role is the input role the property was declared with.
	Role Role
}

// Inspector computes and caches declared-property sets per parameter type.
// The cache is safe for concurrent use; concurrent first inspections of the
// same type converge because inspection is deterministic and the first
// completed write wins.
type Inspector struct {
	cache *cache.Cache
}

// NewInspector creates an inspector with an empty process-scoped cache.
func NewInspector() *Inspector {
	return &Inspector{cache: cache.New(cache.NoExpiration, 0)}
}

// DeclaredProperties returns the declared input properties of the given
// parameter type, sorted by property name. Pointer types are normalized to
// their element type; the element type must be a struct. An empty result is
// legal: a transform may be parameterless in effect even with a parameter
// type.
func (i *Inspector) DeclaredProperties(t reflect.Type) ([]Property, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("parameter type %s is not a struct", t)
	}

	key := typeKey(t)
	if cached, ok := i.cache.Get(key); ok {
		return cached.([]Property), nil
	}

	properties, err := inspectType(t)
	if err != nil {
		return nil, err
	}

	// First write wins; on a lost race return the stored set so every caller
	// observes the same slice.
	if err := i.cache.Add(key, properties, cache.NoExpiration); err != nil {
		if cached, ok := i.cache.Get(key); ok {
			return cached.([]Property), nil
		}
	}
	return properties, nil
}

// inspectType walks the exported fields of a struct type and collects the
// tagged properties.
func inspectType(t reflect.Type) ([]Property, error) {
	var properties []Property
	for idx := 0; idx < t.NumField(); idx++ {
		field := t.Field(idx)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get("transform")
		if tag == "" || tag == "-" {
			continue
		}

		name := tag
		role := RoleInput
		if comma := strings.Index(tag, ","); comma >= 0 {
			name = tag[:comma]
			role = Role(tag[comma+1:])
		}
		if name == "" {
			name = field.Name
		}
		if _, ok := recognizedRoles[role]; !ok {
			return nil, fmt.Errorf("field %s.%s declares unrecognized input role %q", t, field.Name, role)
		}
		properties = append(properties, Property{Name: name, Field: field.Name, Role: role})
	}

	sort.Slice(properties, func(a, b int) bool { return properties[a].Name < properties[b].Name })
	for idx := 1; idx < len(properties); idx++ {
		if properties[idx].Name == properties[idx-1].Name {
			return nil, fmt.Errorf("type %s declares property %q more than once", t, properties[idx].Name)
		}
	}
	return properties, nil
}

// typeKey produces a stable cache key for a type. Named types key on their
// import path; unnamed types fall back to their structural string form.
func typeKey(t reflect.Type) string {
	if t.Name() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}
