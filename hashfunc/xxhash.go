package hashfunc

import "github.com/cespare/xxhash/v2"

// XXHashAlgorithm - Bundled alternative hash algorithm implemented over xxhash, selectable
// through the hashAlgorithm parameter of NewWordFreqMap. It typically distributes better
// than FNV-1a on short keys at slightly higher per-call cost, which can pay off on inputs
// with a very large unique word set.
type XXHashAlgorithm struct{}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance
func NewXXHashAlgorithm() *XXHashAlgorithm {
	return &XXHashAlgorithm{}
}

// Sum64 - Given key it generates a 64 bit hash value over the key bytes
func (B *XXHashAlgorithm) Sum64(key []byte) uint64 {
	return xxhash.Sum64(key)
}
