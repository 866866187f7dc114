package bidiprobe

import (
	"github.com/gostonefire/wordfreqmap/internal/conf"
	"github.com/gostonefire/wordfreqmap/internal/model"
	"github.com/gostonefire/wordfreqmap/internal/utils"
)

// Expand - Doubles the capacity of the table and rehashes every occupied entry into the new
// entry array. The order array keeps its lexicographical order, only the slot indices it holds
// are rewritten, since rehashing changes where a word lives but never its rank. If the string
// pool utilization is already high it is grown first, so new words after the expansion have room.
func (T *Table) Expand() {
	newCapacity := T.capacity * 2

	extEntries := make([]model.Entry, newCapacity)
	extOrder := make([]int64, newCapacity)
	copy(extOrder, T.order[:T.size])

	T.capacity = newCapacity
	T.order = extOrder

	if !T.stringsPool.UtilizationBelow(conf.PoolGrowthLimitPercent) {
		T.stringsPool.Grow()
	}

	T.migrate(extEntries)
	T.entries = extEntries
}

// migrate - Rehashes the entries of the old entry array into the extended one.
// Only empty slots are searched for since each entry was inserted exactly once in the old
// table, hence no candidate can match an already placed word.
func (T *Table) migrate(extEntries []model.Entry) {
	// Tracker indices refer to the old array throughout the loop, so they are matched
	// against their pre-migration values and repointed at the end.
	oldMaxCountIndex := T.maxCountIndex
	oldMaxLengthIndex := T.maxLengthIndex
	newMaxCountIndex := T.maxCountIndex
	newMaxLengthIndex := T.maxLengthIndex

	for i := int64(0); i < T.size; i++ {
		// Only the indices stored in the order array are valid.
		oldIndex := T.order[i]
		oldEntry := T.entries[oldIndex]

		word := T.stringsPool.Bytes(oldEntry.KeyOffset, oldEntry.KeyLength)
		seq := newProbeSeq(T.homeSlot(word), T.capacity)

		for {
			slot, displacement, ok := seq.next()
			if !ok {
				// Can't happen, the new table has twice the slots of the set being placed.
				break
			}
			if extEntries[slot].Count != 0 {
				continue
			}

			extEntries[slot] = model.Entry{
				KeyOffset:    oldEntry.KeyOffset,
				KeyLength:    oldEntry.KeyLength,
				Count:        oldEntry.Count,
				Displacement: displacement,
			}
			T.order[i] = slot

			if oldIndex == oldMaxCountIndex {
				newMaxCountIndex = slot
			}
			if oldIndex == oldMaxLengthIndex {
				newMaxLengthIndex = slot
			}

			// Insertions and collisions are counted for the rehashing process as well.
			T.totalInsertions++
			T.totalCollisions += utils.Abs(displacement)

			break
		}
	}

	T.maxCountIndex = newMaxCountIndex
	T.maxLengthIndex = newMaxLengthIndex
}
