//go:build unit

package bidiprobe

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func orderedWords(table *Table) (words []string, counts []int64) {
	table.ForEachOrdered(func(word []byte, count int64) bool {
		words = append(words, string(word))
		counts = append(counts, count)
		return true
	})
	return
}

func TestTable_ForEachOrdered(t *testing.T) {
	t.Run("yields words in ascending lexicographical order", func(t *testing.T) {
		// Prepare
		table := newTestTable(16, 96)
		for _, word := range []string{"dog", "cat", "ant", "bee"} {
			err := table.Add([]byte(word))
			assert.NoError(t, err, "add ok")
		}

		// Execute
		words, counts := orderedWords(table)

		// Check
		assert.Equal(t, []string{"ant", "bee", "cat", "dog"}, words, "ascending word order")
		assert.Equal(t, []int64{1, 1, 1, 1}, counts, "counts correct")
	})

	t.Run("keeps duplicates off the order array", func(t *testing.T) {
		// Prepare
		table := newTestTable(8, 64)
		for _, word := range []string{"a", "b", "a"} {
			err := table.Add([]byte(word))
			assert.NoError(t, err, "add ok")
		}

		// Execute
		words, counts := orderedWords(table)

		// Check
		assert.Equal(t, []string{"a", "b"}, words, "each distinct word exactly once")
		assert.Equal(t, []int64{2, 1}, counts, "duplicate reflected in count only")
	})

	t.Run("stays sorted under many unordered insertions", func(t *testing.T) {
		// Prepare
		table := newTestTable(64, 512)
		words := []string{
			"mango", "apple", "zucchini", "kiwi", "banana", "grape", "fig",
			"orange", "lemon", "cherry", "plum", "apricot", "date", "melon",
		}
		for _, word := range words {
			err := table.Add([]byte(word))
			assert.NoError(t, err, "add ok")
		}

		// Execute
		got, _ := orderedWords(table)

		// Check
		assert.Len(t, got, len(words), "all distinct words present")
		for i := 1; i < len(got); i++ {
			assert.True(t, bytes.Compare([]byte(got[i-1]), []byte(got[i])) < 0, "strictly ascending order")
		}
	})

	t.Run("stops early when fn returns false", func(t *testing.T) {
		// Prepare
		table := newTestTable(8, 64)
		for _, word := range []string{"ant", "bee", "cat"} {
			err := table.Add([]byte(word))
			assert.NoError(t, err, "add ok")
		}

		// Execute
		var visited int
		table.ForEachOrdered(func(word []byte, count int64) bool {
			visited++
			return visited < 2
		})

		// Check
		assert.Equal(t, 2, visited, "iteration stopped after fn returned false")
	})
}
