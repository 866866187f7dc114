package model

import "github.com/gostonefire/wordfreqmap/hashfunc"

// Entry - Represents one slot in the hash table.
// A Count of zero marks the slot as free, hence a stored word always has Count of at least one.
// KeyOffset and KeyLength address the word bytes within the string pool, which keeps entries
// valid across pool buffer relocations without any pointer fix-up.
// Displacement is the signed distance from the home slot the entry ended up at, kept for
// diagnostics only and never consulted when probing.
type Entry struct {
	KeyOffset    int64
	KeyLength    int64
	Count        int64
	Displacement int64
}

// TableConf - Is a struct to be passed in the call to NewTable and contains configuration
// that affects table creation.
//   - InitialCapacity is the number of slots to create the table with
//   - PoolCapacity is the number of bytes to create the string pool with
//   - HashAlgorithm is the hash function to use
type TableConf struct {
	InitialCapacity int64
	PoolCapacity    int64
	HashAlgorithm   hashfunc.HashAlgorithm
}

// TableParameters - Represents parameters specific for the current state of a table
type TableParameters struct {
	Size         int64
	Capacity     int64
	PoolUsed     int64
	PoolCapacity int64
}

// HashStats - Statistics related to the performance of the hashing function
//   - TotalInsertions is the total number of insertions, rehash placements included
//   - TotalCollisions is the total probing distance accumulated by those insertions
//   - MeanDisplacement is the mean absolute displacement of the entries currently in the table
//   - MedianDisplacement is the median absolute displacement of the entries currently in the table
type HashStats struct {
	TotalInsertions    int64
	TotalCollisions    int64
	MeanDisplacement   float64
	MedianDisplacement float64
}
