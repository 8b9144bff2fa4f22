package registry

import (
	"github.com/vk/transmute/internal/action"
	"github.com/vk/transmute/internal/attrs"
)

// validateDraft enforces the admission invariants over a fully populated
// draft, after the registration callback has returned. Checks run in a fixed
// order and each failure maps to a distinct configuration error, so terminal
// errors are always attributable to the final, user-visible intent.
func validateDraft(act *action.Action, duplicateUse bool, from, to *attrs.Container) error {
	if duplicateUse {
		return configurationError("only one transform action may be provided for registration")
	}
	if act == nil {
		return configurationError("a transform action must be provided")
	}
	if to.Empty() {
		return configurationError("at least one 'to' attribute must be provided")
	}
	if from.Empty() {
		return configurationError("at least one 'from' attribute must be provided")
	}
	if !from.Freeze().ContainsAllNames(to.Freeze()) {
		return configurationError("each 'to' attribute must be included as a 'from' attribute")
	}
	return nil
}
