package wordfreqmap

import (
	"fmt"
	"io"
	"strings"

	"github.com/gostonefire/wordfreqmap/internal/utils"
)

// WriteReport - Writes the number of appearances of each word to w, one row per distinct word
// in ascending lexicographical order. The word column is padded to the longest stored word and
// the count column to the widest count, both taken from the online trackers so no extra scan
// over the table is needed. An empty map writes nothing.
//
// It returns:
//   - err is a standard error, if something went wrong while writing
func (W *WordFreqMap) WriteReport(w io.Writer) (err error) {
	if W.table.Size() == 0 {
		return
	}

	_, maxLength := W.table.Longest()
	_, maxCount := W.table.MostCommon()
	maxDigits := utils.NumOfDigits(maxCount)

	if _, err = fmt.Fprintln(w, "Number of appearances of each word:"); err != nil {
		return
	}

	header := fmt.Sprintf("    %-*s    %s", int(maxLength), "Word", "Count")
	if _, err = fmt.Fprintln(w, header); err != nil {
		return
	}

	dashLine := strings.Repeat("-", len(header)+4)
	if _, err = fmt.Fprintln(w, dashLine); err != nil {
		return
	}

	W.table.ForEachOrdered(func(word []byte, count int64) bool {
		_, err = fmt.Fprintf(w, "    %-*s    %*d\n", int(maxLength), word, maxDigits, count)
		return err == nil
	})
	if err != nil {
		return
	}

	_, err = fmt.Fprintln(w, dashLine)

	return
}

// WriteStatReport - Writes hash table statistics to w, i.e. current size, capacity and occupancy
// together with the insertion, collision and displacement figures from Stat.
//
// It returns:
//   - err is a standard error, if something went wrong while writing
func (W *WordFreqMap) WriteStatReport(w io.Writer) (err error) {
	mapStat := W.Stat()

	if _, err = fmt.Fprintf(w, "\nHash Table statistics:\n"); err != nil {
		return
	}
	if _, err = fmt.Fprintf(w, "\tCurrent Table size is %d with a capacity of %d (%.2f%% used)\n",
		mapStat.Words, mapStat.Capacity, mapStat.Occupancy*100); err != nil {
		return
	}

	if mapStat.Words == 0 {
		return
	}

	collisionsPerInsertion := float64(mapStat.TotalCollisions) / float64(mapStat.TotalInsertions)

	if _, err = fmt.Fprintf(w, "\tTotal Insertions: %d\n", mapStat.TotalInsertions); err != nil {
		return
	}
	if _, err = fmt.Fprintf(w, "\tAverage Collisions per Insertion: %.4f\n", collisionsPerInsertion); err != nil {
		return
	}
	_, err = fmt.Fprintf(w, "\tMean and Median Displacements: %.4f and %.2f\n",
		mapStat.MeanDisplacement, mapStat.MedianDisplacement)

	return
}
