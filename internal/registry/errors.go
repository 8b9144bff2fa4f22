package registry

import (
	"errors"

	"github.com/vk/transmute/internal/isolate"
)

// ConfigurationError reports a malformed registration: a missing action, an
// empty or inconsistent attribute predicate, or a duplicate action
// assignment within one draft. It is always synchronous and the failed
// registration has no effect on the registry.
type ConfigurationError struct {
	Reason string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return "could not register transform: " + e.Reason
}

func configurationError(reason string) error {
	return &ConfigurationError{Reason: reason}
}

// SnapshotError reports that a parameter value could not be isolated or
// hashed at registration time. Caching correctness forbids emitting a
// fragment that understates real differences, so materialization fails
// instead of degrading.
type SnapshotError struct {
	// Action is the name of the action whose parameters failed to snapshot.
	Action string
	// Path locates the offending value (property name or list index), when
	// known.
	Path string
	// Err is the underlying isolation failure.
	Err error
}

// Error implements the error interface.
func (e *SnapshotError) Error() string {
	return "could not snapshot parameters of transform action '" + e.Action + "': " + e.Err.Error()
}

// Unwrap exposes the underlying isolation failure to errors.As/Is.
func (e *SnapshotError) Unwrap() error {
	return e.Err
}

func snapshotError(actionName string, err error) error {
	snapErr := &SnapshotError{Action: actionName, Err: err}
	var unsupported *isolate.UnsupportedValueError
	if errors.As(err, &unsupported) {
		snapErr.Path = unsupported.Path
	}
	return snapErr
}
