package bidiprobe

import (
	"github.com/gostonefire/wordfreqmap/internal/model"
	"github.com/gostonefire/wordfreqmap/internal/utils"
)

// Size - Returns the number of distinct words currently in the table
func (T *Table) Size() int64 {
	return T.size
}

// MostCommon - Returns the most frequently occurring word and its count.
// Word and count are nil and zero for an empty table.
func (T *Table) MostCommon() (word []byte, count int64) {
	if T.size == 0 {
		return
	}

	word = T.key(T.maxCountIndex)
	count = T.entries[T.maxCountIndex].Count

	return
}

// Longest - Returns the longest stored word and its length in bytes.
// Word and length are nil and zero for an empty table.
func (T *Table) Longest() (word []byte, length int64) {
	if T.size == 0 {
		return
	}

	word = T.key(T.maxLengthIndex)
	length = T.entries[T.maxLengthIndex].KeyLength

	return
}

// GetHashStats - Computes and returns statistics on the hashing performance of the table.
// Mean and median absolute displacements are derived on demand from the current occupied
// set, a diagnostic pass that stays off the insertion path.
func (T *Table) GetHashStats() (stats model.HashStats) {
	stats.TotalInsertions = T.totalInsertions
	stats.TotalCollisions = T.totalCollisions

	if T.size == 0 {
		return
	}

	// Insertion sort over the absolute displacements of the occupied slots, enumerated
	// through the order array which holds exactly the valid indices.
	displacements := make([]int64, T.size)
	var sum int64
	for i := int64(0); i < T.size; i++ {
		newAbsDispl := utils.Abs(T.entries[T.order[i]].Displacement)
		sum += newAbsDispl

		j := i - 1
		for ; j >= 0 && newAbsDispl > displacements[j]; j-- {
			displacements[j+1] = displacements[j]
		}
		displacements[j+1] = newAbsDispl
	}

	stats.MeanDisplacement = float64(sum) / float64(T.size)

	if T.size%2 == 0 {
		stats.MedianDisplacement = float64(displacements[T.size/2-1]+displacements[T.size/2]) / 2
	} else {
		stats.MedianDisplacement = float64(displacements[T.size/2])
	}

	return
}
