package registry

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/vk/transmute/internal/action"
	"github.com/vk/transmute/internal/isolate"
)

// CacheKeyFragment is the content-addressed identity of a registered
// transform's behavior: the structural hash of its implementation plus an
// isolated snapshot of its parameter values at registration time. Two
// registrations with identical implementations and structurally equal
// parameter values produce equal fragments; mutating a live parameter object
// after registration never changes a stored fragment.
type CacheKeyFragment struct {
	// Implementation is the hex digest of the action's code identity,
	// including its isolation boundary.
	Implementation string
	// ValueSnapshot is the hex digest of the isolated parameter values.
	// Empty when the registration carries no parameter binding at all.
	ValueSnapshot string
	// Digest deterministically combines Implementation and ValueSnapshot.
	Digest string
}

// Equal reports whether two fragments denote the same implementation and
// parameter state.
func (f CacheKeyFragment) Equal(other CacheKeyFragment) bool {
	return f.Digest == other.Digest
}

// materialize converts an action plus its parameter binding into a cache-key
// fragment. Any value that cannot be isolated fails materialization with a
// SnapshotError; no degraded fragment is ever produced.
func (r *Registry) materialize(act *action.Action, binding parameterBinding) (CacheKeyFragment, error) {
	implementation := r.hasher.ImplementationHash(act)

	isolated, present, err := binding.isolated()
	if err != nil {
		return CacheKeyFragment{}, snapshotError(act.Name, err)
	}

	fragment := CacheKeyFragment{Implementation: implementation}
	if present {
		fragment.ValueSnapshot = isolate.Snapshot(isolated)
	}

	combined := sha256.New()
	isolate.WriteField(combined, []byte(fragment.Implementation))
	isolate.WriteField(combined, []byte(fragment.ValueSnapshot))
	fragment.Digest = hex.EncodeToString(combined.Sum(nil))
	return fragment, nil
}
