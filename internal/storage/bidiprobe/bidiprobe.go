package bidiprobe

import (
	"github.com/gostonefire/wordfreqmap/crt"
	"github.com/gostonefire/wordfreqmap/hashfunc"
	"github.com/gostonefire/wordfreqmap/internal/model"
	"github.com/gostonefire/wordfreqmap/internal/pool"
	"github.com/gostonefire/wordfreqmap/internal/utils"
)

// Table - Represents an in-memory implementation of the Bidirectional Linear Probing
// Collision Resolution Technique, mapping words to occurrence counts.
// It uses one array of entries where the home slot of a word is its hash reduced modulo the
// capacity. In case of a collision it probes outward from the home slot in both directions
// alternately by increasing distance, looking for the word or an empty slot. The word bytes
// themselves live in a string pool and entries address them by offset.
// Alongside the entries an order array holds the indices of all occupied slots sorted in
// lexicographical word order, maintained incrementally on every first-time insertion, so a
// report in word order never needs a separate sort pass.
type Table struct {
	entries       []model.Entry
	order         []int64
	capacity      int64
	size          int64
	stringsPool   *pool.Pool
	hashAlgorithm hashfunc.HashAlgorithm

	// Indices of the longest and the most frequently occurring word, maintained online
	// so report formatting needs no extra scan over the table.
	maxLengthIndex int64
	maxCountIndex  int64

	totalInsertions int64
	totalCollisions int64
}

// NewTable - Returns a pointer to a new Table instance
//   - tableConf is a model.TableConf struct providing configuration affecting table creation
func NewTable(tableConf model.TableConf) *Table {
	return &Table{
		entries:       make([]model.Entry, tableConf.InitialCapacity),
		order:         make([]int64, tableConf.InitialCapacity),
		capacity:      tableConf.InitialCapacity,
		stringsPool:   pool.NewPool(tableConf.PoolCapacity),
		hashAlgorithm: tableConf.HashAlgorithm,
	}
}

// probeSeq - Iterator over the candidate slots for a given home slot, alternating outward in
// both directions by increasing distance: home, home+1, home-1, home+2, home-2 and so on,
// skipping candidates outside the table. It is the single source of probing order, insertion,
// lookup and rehash all walk it identically, hence the displacement stored in an entry is
// derived bookkeeping and never drives placement.
type probeSeq struct {
	home     int64
	capacity int64
	d        int64
	backward bool
}

// newProbeSeq - Returns a probeSeq iterating candidates for the given home slot
func newProbeSeq(home, capacity int64) probeSeq {
	return probeSeq{home: home, capacity: capacity}
}

// next - Returns the next candidate slot together with its signed displacement from home.
// Returns ok as false once both probing directions have exited the table.
func (S *probeSeq) next() (slot, displacement int64, ok bool) {
	for {
		if S.home+S.d >= S.capacity && S.home-S.d < 0 {
			return
		}
		if !S.backward {
			S.backward = true
			if S.home+S.d < S.capacity {
				slot, displacement, ok = S.home+S.d, S.d, true
				return
			}
		} else {
			d := S.d
			S.backward = false
			S.d++
			if d > 0 && S.home-d >= 0 {
				slot, displacement, ok = S.home-d, -d, true
				return
			}
		}
	}
}

// homeSlot - Returns the home slot of a word under the current capacity
func (T *Table) homeSlot(word []byte) int64 {
	return int64(T.hashAlgorithm.Sum64(word) % uint64(T.capacity))
}

// key - Returns the stored word bytes of the entry in the given slot
func (T *Table) key(slot int64) []byte {
	entry := &T.entries[slot]
	return T.stringsPool.Bytes(entry.KeyOffset, entry.KeyLength)
}

// Add - Inserts a word or increments its count if it is already in the table.
//   - word is the word to count, treated as opaque bytes
//
// It returns:
//   - err is of type crt.PoolFull if the string pool can't store a new word, which is
//     recoverable by a call to GrowPool followed by a retry of the identical Add since no
//     state was touched before the failed allocation. An error of type crt.ProbeExhausted
//     means the probing sequence ran through the whole table, something that can't happen
//     as long as the occupancy expansion discipline is honored by the caller.
func (T *Table) Add(word []byte) (err error) {
	seq := newProbeSeq(T.homeSlot(word), T.capacity)

	for {
		slot, displacement, ok := seq.next()
		if !ok {
			break
		}

		entry := &T.entries[slot]
		if entry.Count == 0 {
			var offset int64
			offset, err = T.stringsPool.Alloc(int64(len(word)))
			if err != nil {
				return
			}
			copy(T.stringsPool.Bytes(offset, int64(len(word))), word)

			entry.KeyOffset = offset
			entry.KeyLength = int64(len(word))
			entry.Count = 1
			entry.Displacement = displacement

			T.orderInsert(T.key(slot), slot)

			T.totalInsertions++
			// An absolute displacement above zero for a new entry means collisions occurred.
			T.totalCollisions += utils.Abs(displacement)

			if T.size == 0 {
				// The first word is trivially both the longest and the most frequent.
				T.maxCountIndex = slot
				T.maxLengthIndex = slot
			} else if entry.KeyLength > T.entries[T.maxLengthIndex].KeyLength {
				// A first-time insertion can never take over the count lead.
				T.maxLengthIndex = slot
			}

			T.size++
			return
		}

		if utils.IsEqual(word, T.key(slot)) {
			entry.Count++
			// Length of an existing word was already evaluated, only the count lead can change.
			if entry.Count > T.entries[T.maxCountIndex].Count {
				T.maxCountIndex = slot
			}
			return
		}
	}

	err = crt.ProbeExhausted{}
	return
}

// Count - Returns the occurrence count of a word.
//   - word is the word to look up, treated as opaque bytes
//
// It returns:
//   - count is the number of times the word has been added
//   - err is of type crt.WordNotFound if the word is not in the table
func (T *Table) Count(word []byte) (count int64, err error) {
	seq := newProbeSeq(T.homeSlot(word), T.capacity)

	for {
		slot, _, ok := seq.next()
		if !ok {
			break
		}

		entry := &T.entries[slot]
		if entry.Count == 0 {
			err = crt.WordNotFound{}
			return
		}
		if utils.IsEqual(word, T.key(slot)) {
			count = entry.Count
			return
		}
	}

	err = crt.WordNotFound{}
	return
}

// SizeBelow - Returns true if the number of occupied slots is below limitPrc percent of the capacity
func (T *Table) SizeBelow(limitPrc int64) bool {
	return T.size*100 < T.capacity*limitPrc
}

// GrowPool - Doubles the capacity of the string pool. Entries address their words by offset
// within the pool, so no stored reference needs repair afterwards.
func (T *Table) GrowPool() {
	T.stringsPool.Grow()
}

// GetTableParameters - Returns a struct with parameters describing the current state of the table
func (T *Table) GetTableParameters() (params model.TableParameters) {
	params = model.TableParameters{
		Size:         T.size,
		Capacity:     T.capacity,
		PoolUsed:     T.stringsPool.Used(),
		PoolCapacity: T.stringsPool.Capacity(),
	}

	return
}
