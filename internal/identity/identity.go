// Package identity computes implementation hashes for transform actions.
//
// The implementation hash is the code-identity half of a cache-key fragment:
// it covers the action's implementation type and the isolation boundary the
// type was loaded in, so that otherwise-identical actions contributed by
// different boundaries never collide in the cache.
package identity

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/patrickmn/go-cache"

	"github.com/vk/transmute/internal/action"
	"github.com/vk/transmute/internal/isolate"
)

// Hasher computes and caches implementation hashes per action. Safe for
// concurrent use.
type Hasher struct {
	cache *cache.Cache
}

// NewHasher creates a hasher with an empty process-scoped cache.
func NewHasher() *Hasher {
	return &Hasher{cache: cache.New(cache.NoExpiration, 0)}
}

// ImplementationHash returns the hex-encoded structural hash of the action's
// implementing code identity.
func (h *Hasher) ImplementationHash(a *action.Action) string {
	key := a.Boundary + "\x00" + a.Impl.PkgPath() + "." + a.Impl.Name() + "\x00" + a.Name
	if cached, ok := h.cache.Get(key); ok {
		return cached.(string)
	}

	sum := sha256.New()
	isolate.WriteField(sum, []byte(a.Boundary))
	isolate.WriteField(sum, []byte(a.Impl.PkgPath()))
	isolate.WriteField(sum, []byte(a.Impl.Name()))
	isolate.WriteField(sum, []byte(a.Name))
	digest := hex.EncodeToString(sum.Sum(nil))

	// Hashing is a pure function of the action, so a lost first-write race is
	// harmless: both writers computed the same digest.
	_ = h.cache.Add(key, digest, cache.NoExpiration)
	return digest
}
