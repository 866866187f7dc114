package pool

import (
	"github.com/gostonefire/wordfreqmap/crt"
)

// Pool - A bump allocator over a single growable byte buffer. Blocks are handed out strictly
// sequentially, are never released individually and live for as long as the pool itself, which
// makes per-word allocation overhead and fragmentation a non-issue for the hash table.
// Blocks are addressed by offset rather than by slice, so a buffer relocation caused by Grow
// never invalidates an outstanding block reference.
type Pool struct {
	buf  []byte
	used int64
}

// NewPool - Returns a pointer to a new Pool instance with the given capacity in bytes
func NewPool(capacity int64) *Pool {
	return &Pool{buf: make([]byte, capacity)}
}

// Alloc - Allocates a block of numBytes bytes and returns its offset within the pool.
//   - numBytes is the size of the block to allocate
//
// It returns:
//   - offset is the position of the block within the pool
//   - err is of type crt.PoolFull if the pool has too little free space left, in which case
//     nothing was allocated and the call can be retried after a call to Grow
func (P *Pool) Alloc(numBytes int64) (offset int64, err error) {
	if P.used+numBytes > int64(len(P.buf)) {
		err = crt.PoolFull{}
		return
	}

	offset = P.used
	P.used += numBytes

	return
}

// Bytes - Returns the block of length bytes at the given offset.
// The returned slice aliases the pool buffer, so it is valid only until the next call to Grow.
func (P *Pool) Bytes(offset, length int64) []byte {
	return P.buf[offset : offset+length]
}

// UtilizationBelow - Returns true if the used part of the pool is below limitPrc percent of its capacity
func (P *Pool) UtilizationBelow(limitPrc int64) bool {
	return P.used*100 < int64(len(P.buf))*limitPrc
}

// Grow - Doubles the capacity of the pool. Existing blocks keep both their offsets and contents.
func (P *Pool) Grow() {
	ext := make([]byte, int64(len(P.buf))*2)
	copy(ext, P.buf)
	P.buf = ext
}

// Used - Returns the number of bytes allocated so far
func (P *Pool) Used() int64 {
	return P.used
}

// Capacity - Returns the current capacity of the pool in bytes
func (P *Pool) Capacity() int64 {
	return int64(len(P.buf))
}
