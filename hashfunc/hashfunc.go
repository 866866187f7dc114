package hashfunc

// HashAlgorithm - Interface that permits an implementation using the WordFreqMap to supply a custom
// hash algorithm suited for its particular distribution of words.
type HashAlgorithm interface {
	// Sum64 - Given key it generates a 64 bit hash value over the key bytes.
	// The table reduces the value modulo its current capacity to get the home slot of the key,
	// hence the algorithm needs no knowledge of the table size. The same key must always yield
	// the same value since entries are rehashed with it every time the table expands.
	Sum64(key []byte) uint64
}
