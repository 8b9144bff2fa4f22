package attrs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// Container is the mutable attribute collection populated by a registration
// callback. It is single-use: it belongs to exactly one draft and is
// discarded once frozen.
type Container struct {
	values map[string]cty.Value
}

// NewContainer creates an empty mutable attribute container.
func NewContainer() *Container {
	return &Container{values: make(map[string]cty.Value)}
}

// Set records an attribute value under the given name, replacing any earlier
// value for the same name. It returns the container for chaining.
func (c *Container) Set(name string, value cty.Value) *Container {
	c.values[name] = value
	return c
}

// SetString is a convenience for the common case of string-valued attributes.
func (c *Container) SetString(name, value string) *Container {
	return c.Set(name, cty.StringVal(value))
}

// Empty reports whether no attributes have been set.
func (c *Container) Empty() bool {
	return len(c.values) == 0
}

// Freeze produces an immutable Predicate holding a snapshot of the current
// contents. Later writes to the container do not affect the predicate.
func (c *Container) Freeze() Predicate {
	snapshot := make(map[string]cty.Value, len(c.values))
	for name, value := range c.values {
		snapshot[name] = value
	}
	return Predicate{values: snapshot}
}

// Predicate is an immutable mapping from attribute name to attribute value.
// The zero value is the empty predicate.
type Predicate struct {
	values map[string]cty.Value
}

// Empty reports whether the predicate constrains no dimensions.
func (p Predicate) Empty() bool {
	return len(p.values) == 0
}

// Len returns the number of attributes in the predicate.
func (p Predicate) Len() int {
	return len(p.values)
}

// Value returns the value recorded for the given attribute name.
func (p Predicate) Value(name string) (cty.Value, bool) {
	v, ok := p.values[name]
	return v, ok
}

// Names returns the attribute names in sorted order.
func (p Predicate) Names() []string {
	names := make([]string, 0, len(p.values))
	for name := range p.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ContainsAllNames reports whether every attribute name present in other is
// also present in p. Values are not compared: a transform may change the
// value of a dimension, but it may not invent a dimension it did not
// constrain on input.
func (p Predicate) ContainsAllNames(other Predicate) bool {
	for name := range other.values {
		if _, ok := p.values[name]; !ok {
			return false
		}
	}
	return true
}

// String renders the predicate as {name: value, ...} with sorted names, for
// logs and error messages.
func (p Predicate) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, name := range p.Names() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %s", name, renderValue(p.values[name]))
	}
	b.WriteString("}")
	return b.String()
}

func renderValue(value cty.Value) string {
	switch {
	case value.IsNull():
		return "null"
	case value.Type() == cty.String:
		return fmt.Sprintf("%q", value.AsString())
	case value.Type() == cty.Number:
		return value.AsBigFloat().Text('g', -1)
	case value.Type() == cty.Bool:
		if value.True() {
			return "true"
		}
		return "false"
	default:
		return value.GoString()
	}
}
