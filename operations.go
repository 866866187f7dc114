package wordfreqmap

import (
	"errors"
	"fmt"

	"github.com/gostonefire/wordfreqmap/crt"
	"github.com/gostonefire/wordfreqmap/internal/conf"
)

// Add - Adds one occurrence of a word to the map, inserting it with a count of one if it was
// absent and incrementing its count otherwise.
// Should the string pool be unable to store a new word, the pool is grown and the identical
// insertion retried, which is safe since a pool-full insertion commits no partial state. After
// a successful insertion the table is expanded as soon as its occupancy has reached 70%, to
// keep an increased collision rate from slowing down insertions.
//   - word is the word to count, treated as opaque bytes
//
// It returns:
//   - err is a standard error, if something went wrong
func (W *WordFreqMap) Add(word []byte) (err error) {
	// Check validity of the word
	if len(word) == 0 {
		err = fmt.Errorf("word can not be empty")
		return
	}

	for {
		err = W.table.Add(word)
		if err == nil {
			break
		}
		if errors.Is(err, crt.PoolFull{}) {
			W.table.GrowPool()
			continue
		}

		err = fmt.Errorf("error while adding word to table: %s", err)
		return
	}

	if !W.table.SizeBelow(conf.OccupancyLimitPercent) {
		W.table.Expand()
	}

	return
}

// AddString - Adds one occurrence of a word given as a string, see Add
func (W *WordFreqMap) AddString(word string) (err error) {
	err = W.Add([]byte(word))
	return
}

// Get - Gets the occurrence count of a word.
//   - word is the word to look up, treated as opaque bytes
//
// It returns:
//   - count is the number of times the word has been added
//   - err is of type WordNotFound if the word has never been added, or a standard error if something went wrong
func (W *WordFreqMap) Get(word []byte) (count int64, err error) {
	// Check validity of the word
	if len(word) == 0 {
		err = fmt.Errorf("word can not be empty")
		return
	}

	count, err = W.table.Count(word)
	if err != nil {
		if errors.Is(err, crt.WordNotFound{}) {
			err = WordNotFound{}
		}
		return
	}

	return
}

// ForEachOrdered - Calls fn for every stored word in ascending lexicographical byte order,
// together with its occurrence count. Iteration stops early if fn returns false.
// The word slice passed to fn is only valid for the duration of the call.
func (W *WordFreqMap) ForEachOrdered(fn func(word []byte, count int64) bool) {
	W.table.ForEachOrdered(fn)
}

// Words - Returns the number of distinct words currently in the map
func (W *WordFreqMap) Words() int64 {
	return W.table.Size()
}

// MostCommonWord - Returns the most frequently occurring word and its count.
// Word and count are nil and zero for an empty map.
func (W *WordFreqMap) MostCommonWord() (word []byte, count int64) {
	word, count = W.table.MostCommon()
	return
}

// LongestWord - Returns the longest stored word and its length in bytes.
// Word and length are nil and zero for an empty map.
func (W *WordFreqMap) LongestWord() (word []byte, length int64) {
	word, length = W.table.Longest()
	return
}

// Stat - Computes and returns statistics on the overall usage of the map.
// The displacement figures are derived on demand from the current occupied set, so the call
// has a cost proportional to the number of distinct words and is meant for diagnostics.
func (W *WordFreqMap) Stat() (mapStat MapStat) {
	params := W.table.GetTableParameters()
	stats := W.table.GetHashStats()

	mapStat = MapStat{
		Words:              params.Size,
		Capacity:           params.Capacity,
		Occupancy:          float64(params.Size) / float64(params.Capacity),
		TotalInsertions:    stats.TotalInsertions,
		TotalCollisions:    stats.TotalCollisions,
		MeanDisplacement:   stats.MeanDisplacement,
		MedianDisplacement: stats.MedianDisplacement,
	}

	return
}
