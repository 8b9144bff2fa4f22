// Package minify provides the built-in transform action that strips
// artifacts down to their externally visible surface.
package minify

import (
	"reflect"

	"github.com/vk/transmute/internal/action"
)

// Module implements the action.Module interface for this package.
type Module struct{}

// Minify is the implementation type of the transform.
type Minify struct{}

// Options groups the nested tuning knobs of the minifier.
type Options struct {
	KeepDebugInfo bool `transform:"keep_debug_info,input"`
	Level         int  `transform:"level,input"`
}

// Params configures the minify transform.
type Params struct {
	// KeepClasses lists type names that must survive minification verbatim.
	KeepClasses []string `transform:"keep_classes,input"`
	// ReferenceClasspath is the set of artifacts resolved against while
	// minifying.
	ReferenceClasspath []string `transform:"reference_classpath,classpath"`
	// Options carries the nested tuning object.
	Options Options `transform:"options,nested"`
}

// Register registers the action and its parameter binding with the catalog.
func (m *Module) Register(c *action.Catalog) {
	c.Register(&action.Action{
		Name: "Minify",
		Impl: reflect.TypeOf(Minify{}),
	})
	if err := c.BindParameters(reflect.TypeOf(Params{}), "Minify"); err != nil {
		panic(err)
	}
}
