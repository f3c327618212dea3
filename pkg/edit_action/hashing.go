package edit_action

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
)

// Hashes are FNV-64a over the canonical key only, never over the display
// order, so equal values always hash identically.

func hashEdgeKey(k EdgeKey) uint64 {
	h := fnv.New64a()
	WriteEdgeKey(h, k)
	return h.Sum64()
}

func hashEditKey(k EditKey) uint64 {
	h := fnv.New64a()
	WriteEditKey(h, k)
	return h.Sum64()
}

// WriteEdgeKey feeds a canonical edge into h. Exported so that wrapping
// types can build their own hashes on top of it.
func WriteEdgeKey(h hash.Hash64, k EdgeKey) {
	writeUint64(h, uint64(k.Shape))
	writeInt64(h, k.Lo)
	writeInt64(h, k.Hi)
}

func WriteEditKey(h hash.Hash64, k EditKey) {
	WriteString(h, string(k.Kind))
	WriteEdgeKey(h, k.Edge)
}

// ---------- helpers ----------

func writeInt64(h hash.Hash64, v int) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	_, _ = h.Write(buf[:])
}

func writeUint64(h hash.Hash64, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, _ = h.Write(buf[:])
}

func WriteString(h hash.Hash64, s string) {
	_, _ = h.Write([]byte(s))
	_, _ = h.Write([]byte{0}) // separator
}
