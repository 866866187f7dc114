package bidiprobe

import "bytes"

// orderInsert - Places the index of a newly occupied slot at the correct position of the
// order array, keeping the array sorted in lexicographical word order.
// Insertion sort is used: the array is iterated backwards, moving each index one position
// up until an index is found whose word sorts before the new word.
func (T *Table) orderInsert(word []byte, slot int64) {
	if T.size == 0 {
		T.order[0] = slot
		return
	}

	i := T.size - 1
	for ; i >= 0 && bytes.Compare(word, T.key(T.order[i])) <= 0; i-- {
		T.order[i+1] = T.order[i]
	}
	T.order[i+1] = slot
}

// ForEachOrdered - Calls fn for every stored word in ascending lexicographical order, together
// with its occurrence count. Iteration stops early if fn returns false.
// The word slice aliases the string pool and must not be retained across calls that may grow it.
func (T *Table) ForEachOrdered(fn func(word []byte, count int64) bool) {
	for i := int64(0); i < T.size; i++ {
		entry := &T.entries[T.order[i]]
		if !fn(T.key(T.order[i]), entry.Count) {
			return
		}
	}
}
