// Package unzip provides the built-in transform action that expands archive
// artifacts into directory trees.
package unzip

import (
	"reflect"

	"github.com/vk/transmute/internal/action"
)

// Module implements the action.Module interface for this package.
type Module struct{}

// Unzip is the implementation type of the transform. The resolution engine
// invokes it against matching artifacts; registration only needs its
// identity.
type Unzip struct{}

// Params configures the unzip transform.
type Params struct {
	// RetainStructure keeps the archive's internal directory layout in the
	// output tree.
	RetainStructure bool `transform:"retain_structure,input"`
	// Manifest points at an optional archive manifest consulted during
	// expansion.
	Manifest string `transform:"manifest,input_file"`
	// Excludes lists archive entry patterns to skip.
	Excludes []string `transform:"excludes,input"`
}

// Register registers the action and its parameter binding with the catalog.
func (m *Module) Register(c *action.Catalog) {
	c.Register(&action.Action{
		Name: "Unzip",
		Impl: reflect.TypeOf(Unzip{}),
	})
	if err := c.BindParameters(reflect.TypeOf(Params{}), "Unzip"); err != nil {
		panic(err)
	}
}
