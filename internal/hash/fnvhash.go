package hash

// fnvOffset - FNV-1a 64 bit offset basis
const fnvOffset uint64 = 0xcbf29ce484222325

// fnvPrime - FNV-1a 64 bit prime
const fnvPrime uint64 = 0x100000001b3

// FNV1aAlgorithm - The internally used hash algorithm, implementing the 64 bit FNV-1a
// function over the key bytes. It is the default when no custom algorithm is supplied
// in the call to NewWordFreqMap.
type FNV1aAlgorithm struct{}

// NewFNV1aAlgorithm - Returns a pointer to a new FNV1aAlgorithm instance
func NewFNV1aAlgorithm() *FNV1aAlgorithm {
	return &FNV1aAlgorithm{}
}

// Sum64 - Given key it generates a 64 bit hash value over the key bytes
func (B *FNV1aAlgorithm) Sum64(key []byte) uint64 {
	h := fnvOffset
	for _, b := range key {
		h ^= uint64(b)
		h *= fnvPrime
	}

	return h
}
