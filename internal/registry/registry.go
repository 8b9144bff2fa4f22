package registry

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/vk/transmute/internal/action"
	"github.com/vk/transmute/internal/attrs"
	"github.com/vk/transmute/internal/ctxlog"
	"github.com/vk/transmute/internal/identity"
	"github.com/vk/transmute/internal/inspect"
)

// Registration is a finalized, immutable transform registration. It is
// created exactly once, owned solely by the registry, and consumed read-only
// by the resolution engine.
type Registration struct {
	// From is the predicate a candidate input artifact must satisfy.
	From attrs.Predicate
	// To is the predicate the transformed artifact satisfies.
	To attrs.Predicate
	// Action is the registered behavior of the transform.
	Action *action.Action
	// Fragment is the cache-key fragment materialized at registration time.
	Fragment CacheKeyFragment
}

// Registry is the append-only, ordered collection of finalized transform
// registrations for a single application instance. Registration happens
// single-threaded during the configuration phase; reads are safe from
// multiple worker threads once configuration completes. Iteration order is
// registration order and is stable for the process lifetime.
type Registry struct {
	catalog   *action.Catalog
	inspector *inspect.Inspector
	hasher    *identity.Hasher

	mu         sync.RWMutex
	transforms []Registration
}

// New creates an empty registry resolving actions through the given catalog.
func New(catalog *action.Catalog) *Registry {
	return &Registry{
		catalog:   catalog,
		inspector: inspect.NewInspector(),
		hasher:    identity.NewHasher(),
	}
}

// RegisterTransform is the untyped registration entry point. The callback
// populates the from/to predicates and binds an action, optionally with an
// ordered list of raw configuration values.
func (r *Registry) RegisterTransform(ctx context.Context, configure func(*UntypedDraft)) error {
	draft := &UntypedDraft{recordingDraft: newRecordingDraft()}
	configure(draft)

	if err := validateDraft(draft.action, draft.duplicateUse, draft.from, draft.to); err != nil {
		return err
	}
	return r.finalize(ctx, draft.recordingDraft, draft.action, rawParameterList{values: draft.rawParams()})
}

// RegisterTransformParameters is the typed-parameter registration entry
// point. One parameter object of the given type is instantiated and handed
// to the callback; the action is discovered through the catalog's explicit
// parameter-type binding. A parameter type with no bound action leaves the
// draft actionless, which validation rejects.
func (r *Registry) RegisterTransformParameters(ctx context.Context, parameterType reflect.Type, configure func(*TypedDraft)) error {
	for parameterType.Kind() == reflect.Pointer {
		parameterType = parameterType.Elem()
	}
	if parameterType.Kind() != reflect.Struct {
		return configurationError(fmt.Sprintf("parameter type %s must be a struct", parameterType))
	}

	draft := &TypedDraft{
		recordingDraft: newRecordingDraft(),
		parameters:     reflect.New(parameterType).Interface(),
	}
	if act, ok := r.catalog.ForParameters(parameterType); ok {
		draft.action = act
	}
	configure(draft)

	if err := validateDraft(draft.action, false, draft.from, draft.to); err != nil {
		return err
	}

	properties, err := r.inspector.DeclaredProperties(parameterType)
	if err != nil {
		return configurationError(err.Error())
	}
	binding := typedParameterObject{object: draft.parameters, properties: properties}
	return r.finalize(ctx, draft.recordingDraft, draft.action, binding)
}

// RegisterTransformAction is the action-type registration entry point: the
// caller supplies the action directly and there is no parameter object.
func (r *Registry) RegisterTransformAction(ctx context.Context, act *action.Action, configure func(*ActionDraft)) error {
	draft := &ActionDraft{recordingDraft: newRecordingDraft()}
	configure(draft)

	if err := validateDraft(act, false, draft.from, draft.to); err != nil {
		return err
	}
	return r.finalize(ctx, draft.recordingDraft, act, noParameters{})
}

// finalize materializes the cache-key fragment and appends the registration.
// Nothing is appended unless snapshotting succeeds, so no partial
// registration is ever visible.
func (r *Registry) finalize(ctx context.Context, draft recordingDraft, act *action.Action, binding parameterBinding) error {
	fragment, err := r.materialize(act, binding)
	if err != nil {
		return err
	}

	registration := Registration{
		From:     draft.from.Freeze(),
		To:       draft.to.Freeze(),
		Action:   act,
		Fragment: fragment,
	}

	r.mu.Lock()
	r.transforms = append(r.transforms, registration)
	total := len(r.transforms)
	r.mu.Unlock()

	ctxlog.FromContext(ctx).Debug("Registered transform.",
		"action", act.Name,
		"from", registration.From.String(),
		"to", registration.To.String(),
		"fragment", fragment.Digest,
		"total", total,
	)
	return nil
}

// Transforms returns the registrations in FIFO registration order. The
// returned slice is a copy; the registry itself never exposes a mutable
// view.
func (r *Registry) Transforms() []Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Registration, len(r.transforms))
	copy(out, r.transforms)
	return out
}

// Len returns the number of finalized registrations.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.transforms)
}
