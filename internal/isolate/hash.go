package isolate

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"sort"

	"github.com/zclconf/go-cty/cty"
)

// Snapshot computes the content hash of an isolated value: a hex-encoded
// sha256 over a canonical encoding of the value.
//
// Determinism rules:
//   - Object and map attributes are visited in sorted key order.
//   - Every field is tagged with its kind and length-prefixed, so distinct
//     structures can never produce identical byte streams.
//   - Numbers are encoded via their minimal decimal text, which is stable
//     across architectures.
func Snapshot(v cty.Value) string {
	h := sha256.New()
	appendValue(h, v)
	return hex.EncodeToString(h.Sum(nil))
}

// WriteField writes a single length-prefixed field into a hash. Shared with
// the fragment combiner so all cache-key material uses one framing scheme.
func WriteField(h hash.Hash, data []byte) {
	var length [8]byte
	binary.BigEndian.PutUint64(length[:], uint64(len(data)))
	h.Write(length[:])
	h.Write(data)
}

func appendValue(h hash.Hash, v cty.Value) {
	if v.IsNull() {
		WriteField(h, []byte("null"))
		return
	}

	ty := v.Type()
	switch {
	case ty == cty.Bool:
		if v.True() {
			WriteField(h, []byte("bool:1"))
		} else {
			WriteField(h, []byte("bool:0"))
		}
	case ty == cty.Number:
		WriteField(h, []byte("num:"+v.AsBigFloat().Text('g', -1)))
	case ty == cty.String:
		WriteField(h, append([]byte("str:"), v.AsString()...))

	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		elems := v.AsValueSlice()
		WriteField(h, []byte("seq"))
		WriteField(h, countField(len(elems)))
		for _, elem := range elems {
			appendValue(h, elem)
		}

	case ty.IsObjectType() || ty.IsMapType():
		attrs := v.AsValueMap()
		keys := make([]string, 0, len(attrs))
		for k := range attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		WriteField(h, []byte("obj"))
		WriteField(h, countField(len(keys)))
		for _, k := range keys {
			WriteField(h, []byte(k))
			appendValue(h, attrs[k])
		}

	default:
		// Isolation only produces the kinds above; anything else still gets a
		// distinct, type-tagged encoding.
		WriteField(h, []byte("other:"+ty.GoString()))
	}
}

func countField(n int) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(n))
	return buf[:]
}
