//go:build unit

package bidiprobe

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_Expand(t *testing.T) {
	t.Run("doubles capacity and preserves every word, count and rank", func(t *testing.T) {
		// Prepare
		table := newTestTable(8, 64)
		words := []string{"dog", "cat", "ant", "bee", "elk", "fox"}
		for _, word := range words {
			err := table.Add([]byte(word))
			assert.NoError(t, err, "add ok")
		}
		err := table.Add([]byte("dog"))
		assert.NoError(t, err, "duplicate add ok")

		wordsBefore, countsBefore := orderedWords(table)

		// Execute
		table.Expand()

		// Check
		params := table.GetTableParameters()
		assert.Equal(t, int64(16), params.Capacity, "capacity doubled")
		assert.Equal(t, int64(6), params.Size, "size unchanged")

		wordsAfter, countsAfter := orderedWords(table)
		assert.Equal(t, wordsBefore, wordsAfter, "report order unchanged by expansion")
		assert.Equal(t, countsBefore, countsAfter, "counts unchanged by expansion")

		for _, word := range words {
			count, err := table.Count([]byte(word))
			assert.NoError(t, err, "word found after expansion")
			if word == "dog" {
				assert.Equal(t, int64(2), count, "duplicate count preserved")
			} else {
				assert.Equal(t, int64(1), count, "count preserved")
			}
		}
	})

	t.Run("remaps the format trackers to the relocated slots", func(t *testing.T) {
		// Prepare
		table := newTestTable(8, 64)
		for _, word := range []string{"hippopotamus", "ant", "bee"} {
			err := table.Add([]byte(word))
			assert.NoError(t, err, "add ok")
		}
		for i := 0; i < 4; i++ {
			err := table.Add([]byte("bee"))
			assert.NoError(t, err, "duplicate add ok")
		}

		// Execute
		table.Expand()

		// Check
		longest, length := table.Longest()
		assert.Equal(t, []byte("hippopotamus"), longest, "longest word tracked across expansion")
		assert.Equal(t, int64(12), length, "longest length correct")

		mostCommon, count := table.MostCommon()
		assert.Equal(t, []byte("bee"), mostCommon, "most common word tracked across expansion")
		assert.Equal(t, int64(5), count, "highest count correct")
	})

	t.Run("is stable over repeated expansions", func(t *testing.T) {
		// Prepare
		table := newTestTable(4, 256)
		for i := 0; i < 20; i++ {
			err := table.Add([]byte(fmt.Sprintf("word%02d", i)))
			assert.NoError(t, err, "add ok")

			if !table.SizeBelow(70) {
				table.Expand()
			}
		}

		// Check
		params := table.GetTableParameters()
		assert.Equal(t, int64(20), params.Size, "all distinct words present")
		assert.True(t, table.SizeBelow(70), "occupancy discipline held")

		words, _ := orderedWords(table)
		assert.Len(t, words, 20, "order array complete")
		for i := 0; i < 20; i++ {
			assert.Equal(t, fmt.Sprintf("word%02d", i), words[i], "rank stable across expansions")

			count, err := table.Count([]byte(fmt.Sprintf("word%02d", i)))
			assert.NoError(t, err, "word found")
			assert.Equal(t, int64(1), count, "count preserved")
		}
	})

	t.Run("grows the pool first when its utilization is high", func(t *testing.T) {
		// Prepare
		table := newTestTable(4, 8)
		err := table.Add([]byte("abcdefg"))
		assert.NoError(t, err, "seven of eight pool bytes used")

		// Execute
		table.Expand()

		// Check
		params := table.GetTableParameters()
		assert.Equal(t, int64(8), params.Capacity, "capacity doubled")
		assert.Equal(t, int64(16), params.PoolCapacity, "pool grown alongside the table")
		assert.Equal(t, int64(7), params.PoolUsed, "pool contents untouched")

		count, err := table.Count([]byte("abcdefg"))
		assert.NoError(t, err, "word still found")
		assert.Equal(t, int64(1), count, "count preserved")
	})
}
