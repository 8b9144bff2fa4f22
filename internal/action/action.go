// Package action maintains the catalog of compiled transform actions.
//
// An Action is the Go-side identity of a transform's behavior: the named,
// registered implementation type together with the isolation boundary it was
// loaded in. The catalog also holds the explicit parameter-type lookup table
// that typed registrations use to discover their action, replacing any kind
// of reflective annotation discovery.
package action

import (
	"fmt"
	"reflect"
	"sync"
)

// DefaultBoundary is the isolation boundary assigned to actions compiled
// into the tool itself, as opposed to ones contributed by a plugin.
const DefaultBoundary = "core"

// Action describes a registered transform implementation.
type Action struct {
	// Name is the unique, user-visible identifier of the action.
	Name string
	// Impl is the Go type implementing the transform's behavior.
	Impl reflect.Type
	// Boundary identifies the isolation scope the implementation was loaded
	// in. Two actions with identical code but different boundaries must never
	// share a cache-key fragment.
	Boundary string
}

// Module is the interface that action-providing packages implement to be
// registered with a catalog.
type Module interface {
	Register(c *Catalog)
}

// Catalog holds all registered actions for a single application instance.
// Registration happens during startup; lookups are safe for concurrent use
// once registration completes.
type Catalog struct {
	mu       sync.RWMutex
	byName   map[string]*Action
	byParams map[reflect.Type]*Action
}

// NewCatalog creates and initializes an empty action catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		byName:   make(map[string]*Action),
		byParams: make(map[reflect.Type]*Action),
	}
}

// Register adds an action to the catalog. A duplicate name is a programmer
// error and panics, matching how handler registries treat identifier clashes.
// An empty boundary defaults to DefaultBoundary.
func (c *Catalog) Register(a *Action) {
	if a.Name == "" {
		panic("action with empty name registered")
	}
	if a.Impl == nil {
		panic(fmt.Sprintf("action '%s' registered without an implementation type", a.Name))
	}
	if a.Boundary == "" {
		a.Boundary = DefaultBoundary
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.byName[a.Name]; exists {
		panic(fmt.Sprintf("action with name '%s' already registered", a.Name))
	}
	c.byName[a.Name] = a
}

// BindParameters associates a parameter type with a previously registered
// action, so that typed registrations using that parameter type resolve their
// action through the catalog. Pointer types are normalized to their element
// type. Rebinding a parameter type to a different action is an error.
func (c *Catalog) BindParameters(parameterType reflect.Type, actionName string) error {
	for parameterType.Kind() == reflect.Pointer {
		parameterType = parameterType.Elem()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	a, ok := c.byName[actionName]
	if !ok {
		return fmt.Errorf("cannot bind parameter type %s: no action named '%s' is registered", parameterType, actionName)
	}
	if existing, exists := c.byParams[parameterType]; exists && existing != a {
		return fmt.Errorf("parameter type %s is already bound to action '%s'", parameterType, existing.Name)
	}
	c.byParams[parameterType] = a
	return nil
}

// ByName returns the action registered under the given name.
func (c *Catalog) ByName(name string) (*Action, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	a, ok := c.byName[name]
	return a, ok
}

// ForParameters returns the action bound to the given parameter type, if any.
// Pointer types are normalized to their element type.
func (c *Catalog) ForParameters(parameterType reflect.Type) (*Action, bool) {
	for parameterType.Kind() == reflect.Pointer {
		parameterType = parameterType.Elem()
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	a, ok := c.byParams[parameterType]
	return a, ok
}
