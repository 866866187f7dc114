package wordfreqmap

import (
	"fmt"

	"github.com/gostonefire/wordfreqmap/hashfunc"
	"github.com/gostonefire/wordfreqmap/internal/conf"
	"github.com/gostonefire/wordfreqmap/internal/hash"
	"github.com/gostonefire/wordfreqmap/internal/model"
	"github.com/gostonefire/wordfreqmap/internal/storage/bidiprobe"
	"github.com/gostonefire/wordfreqmap/internal/utils"
)

// MapInfo - Information structure containing some information about the word frequency map created
//   - InitialCapacity is the number of table slots the map started out with
//   - PoolCapacity is the number of string pool bytes the map started out with
//   - InternalAlgorithm is true when the map uses the internal FNV-1a hash algorithm
type MapInfo struct {
	InitialCapacity   int64
	PoolCapacity      int64
	InternalAlgorithm bool
}

// MapStat - Statistics on the overall usage of the map and the performance of its hashing
//   - Words is the number of distinct words currently stored
//   - Capacity is the current number of table slots
//   - Occupancy is Words divided by Capacity
//   - TotalInsertions is the total number of insertions, rehash placements included
//   - TotalCollisions is the total probing distance accumulated by those insertions
//   - MeanDisplacement and MedianDisplacement summarize how far entries sit from their home slots
type MapStat struct {
	Words              int64
	Capacity           int64
	Occupancy          float64
	TotalInsertions    int64
	TotalCollisions    int64
	MeanDisplacement   float64
	MedianDisplacement float64
}

// WordFreqMap - The main implementation struct
type WordFreqMap struct {
	table *bidiprobe.Table
}

// NewWordFreqMap - Returns a new in-memory map prepared to count a theoretical total number of words.
// The initial table capacity is the power of two closest to the expected word count, and the string
// pool is sized for an assumed average word length at target occupancy. Both the table and the pool
// grow transparently should the estimate fall short, so the estimate affects performance only.
//   - expectedWords is the expected total number of words to be counted, duplicates included
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface
//
// It returns:
//   - wordFreqMap is a pointer to a WordFreqMap struct
//   - mapInfo is a MapInfo struct containing some data regarding the map created
//   - err is a normal Go error which should be nil if everything went ok
func NewWordFreqMap(expectedWords int64, hashAlgorithm hashfunc.HashAlgorithm) (
	wordFreqMap *WordFreqMap,
	mapInfo MapInfo,
	err error,
) {
	// Check if expectedWords is valid
	if expectedWords <= 0 {
		err = fmt.Errorf("expectedWords must be a positive value higher than 0 (zero)")
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewFNV1aAlgorithm()
		internalAlg = true
	}

	capacity := initialCapacity(expectedWords)

	tableConf := model.TableConf{
		InitialCapacity: capacity,
		PoolCapacity:    conf.PoolBytesPerSlot * capacity,
		HashAlgorithm:   hashAlgorithm,
	}

	wordFreqMap = &WordFreqMap{table: bidiprobe.NewTable(tableConf)}

	mapInfo = MapInfo{
		InitialCapacity:   capacity,
		PoolCapacity:      tableConf.PoolCapacity,
		InternalAlgorithm: internalAlg,
	}

	return
}

// initialCapacity - Selects the initial table capacity given the expected total word count.
// Of the two surrounding powers of two, the lower is picked when the count sits in the lower
// half of the gap between them, otherwise the higher.
func initialCapacity(expectedWords int64) int64 {
	ceilSize := utils.NextPowerOfTwo(expectedWords)
	floorSize := ceilSize / 2

	if expectedWords-floorSize >= floorSize/2 {
		return ceilSize
	}
	return floorSize
}
