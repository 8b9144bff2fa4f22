package registry

import (
	"github.com/vk/transmute/internal/action"
	"github.com/vk/transmute/internal/attrs"
)

// recordingDraft is the shared core of every registration draft: the mutable
// "from" and "to" attribute containers a callback populates. Drafts are
// single-use and owned exclusively by the registration call that created
// them.
type recordingDraft struct {
	from *attrs.Container
	to   *attrs.Container
}

func newRecordingDraft() recordingDraft {
	return recordingDraft{from: attrs.NewContainer(), to: attrs.NewContainer()}
}

// From returns the mutable container for the attributes a matching input
// artifact must carry.
func (d *recordingDraft) From() *attrs.Container {
	return d.from
}

// To returns the mutable container for the attributes the transformed
// artifact will carry.
func (d *recordingDraft) To() *attrs.Container {
	return d.to
}

// ActionConfiguration accumulates the ordered raw parameter values of an
// untyped registration. Values are opaque to the registration pipeline:
// arity and types are not checked here.
type ActionConfiguration struct {
	params []any
}

// Params appends values to the parameter list.
func (c *ActionConfiguration) Params(values ...any) {
	c.params = append(c.params, values...)
}

// SetParams replaces the parameter list with the given values.
func (c *ActionConfiguration) SetParams(values ...any) {
	c.params = append([]any(nil), values...)
}

// UntypedDraft is the draft handed to untyped registration callbacks. The
// behavior binding is a registered action plus an optional raw parameter
// configuration callback.
type UntypedDraft struct {
	recordingDraft
	action          *action.Action
	configureParams func(*ActionConfiguration)
	duplicateUse    bool
}

// Use binds the transform's behavior to the given action with no
// configuration values.
func (d *UntypedDraft) Use(a *action.Action) {
	d.UseConfigured(a, nil)
}

// UseConfigured binds the transform's behavior to the given action and
// records a callback that populates its raw parameter list. Exactly one
// action may be bound per draft; a second call is a configuration error
// surfaced at finalization, never a silent overwrite.
func (d *UntypedDraft) UseConfigured(a *action.Action, configure func(*ActionConfiguration)) {
	if d.action != nil {
		d.duplicateUse = true
		return
	}
	d.action = a
	d.configureParams = configure
}

// rawParams runs the recorded configuration callback and returns the ordered
// raw parameter list. An unconfigured draft yields an empty list.
func (d *UntypedDraft) rawParams() []any {
	config := &ActionConfiguration{}
	if d.configureParams != nil {
		d.configureParams(config)
	}
	return config.params
}

// TypedDraft is the draft handed to typed-parameter registration callbacks.
// Its action is resolved through the catalog's parameter-type table before
// the callback runs; the callback configures the parameter object and the
// from/to predicates.
type TypedDraft struct {
	recordingDraft
	parameters any
	action     *action.Action
}

// Parameters returns the parameter object instantiated for this
// registration. The callback configures it in place; its values are isolated
// at finalization, so later mutation cannot affect the stored registration.
func (d *TypedDraft) Parameters() any {
	return d.parameters
}

// ActionDraft is the draft handed to action-type registration callbacks: the
// action is supplied directly by the caller and there is no parameter object.
type ActionDraft struct {
	recordingDraft
}
