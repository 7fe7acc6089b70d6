package mapgen

import (
	"crypto/sha256"
	"encoding/binary"
)

// SeedFromString hashes an arbitrary seed string down to an int64 for
// math/rand, so human-readable seeds reproduce worlds exactly.
func SeedFromString(seed string) int64 {
	sum := sha256.Sum256([]byte(seed))
	return int64(binary.LittleEndian.Uint64(sum[:8]))
}
