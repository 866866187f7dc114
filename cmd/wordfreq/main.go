package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gostonefire/wordfreqmap"
	"github.com/gostonefire/wordfreqmap/internal/wordscan"
)

var showStats bool

var rootCmd = &cobra.Command{
	Use:   "wordfreq [file]",
	Short: "Counts the number of appearances of each word in a text",
	Long: `wordfreq counts the number of appearances of each word in the text passed as input
through a text file or the standard input, and prints the result in alphabetical order.`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runWordFreq,
	SilenceUsage: true,
}

func runWordFreq(cmd *cobra.Command, args []string) error {
	var source io.Reader

	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open file %s: %s", args[0], err)
		}
		defer func(f *os.File) { _ = f.Close() }(f)
		source = f
	} else {
		fmt.Println("Enter input followed by an 'EOF' ([Enter - Ctrl+D] for Unix " +
			"and [Enter - Ctrl+Z - Enter] for Windows)")
		source = os.Stdin
	}

	words, err := wordscan.ScanAll(source)
	if err != nil {
		return fmt.Errorf("failed to read input: %s", err)
	}
	if len(words) == 0 {
		return nil
	}

	freqMap, _, err := wordfreqmap.NewWordFreqMap(int64(len(words)), nil)
	if err != nil {
		return fmt.Errorf("failed to create word frequency map: %s", err)
	}

	for _, word := range words {
		if err = freqMap.Add(word); err != nil {
			return fmt.Errorf("failed to count word %q: %s", word, err)
		}
	}

	if err = freqMap.WriteReport(os.Stdout); err != nil {
		return err
	}
	if showStats {
		if err = freqMap.WriteStatReport(os.Stdout); err != nil {
			return err
		}
	}

	return nil
}

func main() {
	rootCmd.Flags().BoolVar(&showStats, "stats", false, "also print hash table statistics")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
