package registry

import (
	"fmt"
	"reflect"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/transmute/internal/inspect"
	"github.com/vk/transmute/internal/isolate"
)

// parameterBinding is the tagged union describing how a transform's behavior
// receives configuration. Exactly one variant is chosen per registration.
type parameterBinding interface {
	// isolated deep-copies the bound parameter values into an immutable cty
	// value. The second return is false when the binding carries no values at
	// all, in which case the cache-key fragment derives from the
	// implementation hash alone.
	isolated() (cty.Value, bool, error)
}

// noParameters is the binding of an action-type registration: no parameter
// object and no raw values.
type noParameters struct{}

func (noParameters) isolated() (cty.Value, bool, error) {
	return cty.NilVal, false, nil
}

// rawParameterList binds an ordered list of opaque configuration values.
// Each element is isolated individually.
type rawParameterList struct {
	values []any
}

func (b rawParameterList) isolated() (cty.Value, bool, error) {
	if len(b.values) == 0 {
		return cty.EmptyTupleVal, true, nil
	}
	elems := make([]cty.Value, len(b.values))
	for idx, value := range b.values {
		elem, err := isolate.Property(fmt.Sprintf("[%d]", idx), value)
		if err != nil {
			return cty.NilVal, false, err
		}
		elems[idx] = elem
	}
	return cty.TupleVal(elems), true, nil
}

// typedParameterObject binds a typed parameter object together with the
// declared-property set derived from its type. Only declared properties
// contribute to the snapshot; everything else on the object is invisible to
// caching.
type typedParameterObject struct {
	object     any
	properties []inspect.Property
}

func (b typedParameterObject) isolated() (cty.Value, bool, error) {
	if len(b.properties) == 0 {
		return cty.EmptyObjectVal, true, nil
	}
	obj := reflect.ValueOf(b.object)
	for obj.Kind() == reflect.Pointer {
		obj = obj.Elem()
	}
	attrs := make(map[string]cty.Value, len(b.properties))
	for _, prop := range b.properties {
		field := obj.FieldByName(prop.Field)
		value, err := isolate.Property(prop.Name, field.Interface())
		if err != nil {
			return cty.NilVal, false, err
		}
		attrs[prop.Name] = value
	}
	return cty.ObjectVal(attrs), true, nil
}
