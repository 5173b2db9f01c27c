package sampling

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

const keySize = 32

// KeyFromUint64 derives a 32-byte PRNG key by hashing the given words with blake3.
// Distinct inputs yield independent deterministic streams when the key is used
// to seed a [KeyedPRNG], which is how reproducible test vectors are generated
// for a given parameter set.
func KeyFromUint64(words ...uint64) []byte {
	hasher := blake3.New()
	buf := make([]byte, 8)
	for _, w := range words {
		binary.LittleEndian.PutUint64(buf, w)
		hasher.Write(buf)
	}
	sum := hasher.Sum(nil)
	return sum[:keySize]
}
