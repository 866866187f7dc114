package wordscan

import (
	"bufio"
	"io"

	"github.com/gostonefire/wordfreqmap/internal/conf"
)

// charClass - The class of a processed input character
type charClass int

const (
	// charLetter - The character is a latin alphabet letter
	charLetter charClass = iota
	// charNumber - The character is a digit
	charNumber
	// charInWordSymbol - The character is among those that can appear inside a word
	charInWordSymbol
	// charOtherSymbol - The character is not used in words
	charOtherSymbol
)

// scanState - The state of the scanner, i.e. where the processing cursor is
type scanState int

const (
	// betweenWords - The cursor is between words
	betweenWords scanState = iota
	// inWordAfterAlphanum - The cursor is inside a word, after a letter or digit
	inWordAfterAlphanum
	// inWordAfterSymbol - The cursor is inside a word, after an in-word symbol
	inWordAfterSymbol
)

// inWordSymbols - Characters that may appear inside a word but neither start nor end one
var inWordSymbols = [...]byte{'-', '\'', '%', ',', '.', '@'}

// toLowercase - Converts a latin alphabet letter to its lowercase form
func toLowercase(c byte) byte {
	return c | 0x20
}

// isLetter - Returns true if the character is a latin alphabet letter
func isLetter(c byte) bool {
	l := toLowercase(c)
	return l >= 'a' && l <= 'z'
}

// isNumber - Returns true if the character is a digit
func isNumber(c byte) bool {
	return c >= '0' && c <= '9'
}

// isInWordSymbol - Returns true if the character can appear inside a word
func isInWordSymbol(c byte) bool {
	for _, s := range inWordSymbols {
		if c == s {
			return true
		}
	}
	return false
}

// classOf - Categorizes a character on the available character classes
func classOf(c byte) charClass {
	if isLetter(c) {
		return charLetter
	}
	if isNumber(c) {
		return charNumber
	}
	if isInWordSymbol(c) {
		return charInWordSymbol
	}
	return charOtherSymbol
}

// Scanner - Tokenizes an input stream into words on a character basis.
// A word starts with a letter or digit, letters are folded to lowercase, and a single in-word
// symbol may appear between alphanumerics. Two consecutive symbols end the word before the
// first of them, as does any separator character or the end of the input.
type Scanner struct {
	reader  *bufio.Reader
	buffer  *WordBuffer
	state   scanState
	pending bool
	done    bool
}

// NewScanner - Returns a pointer to a new Scanner instance reading from r
func NewScanner(r io.Reader) *Scanner {
	buffer, _ := NewWordBuffer(conf.InitialWordBufferLength)
	return &Scanner{reader: bufio.NewReader(r), buffer: buffer}
}

// Next - Returns the next word from the input, or io.EOF when the input is exhausted.
// The returned slice aliases the internal word buffer and is valid only until the following
// call to Next.
func (S *Scanner) Next() (word []byte, err error) {
	if S.pending {
		S.buffer.Clear()
		S.pending = false
	}
	if S.done {
		err = io.EOF
		return
	}

	for {
		c, rerr := S.reader.ReadByte()
		if rerr != nil {
			if rerr != io.EOF {
				err = rerr
				return
			}
			S.done = true

			// A word still in the buffer is concluded by the end of input, with a
			// trailing in-word symbol discarded since words can't end in one.
			switch S.state {
			case inWordAfterAlphanum:
				S.pending = true
				word = S.buffer.Bytes()
			case inWordAfterSymbol:
				S.buffer.Backspace()
				S.pending = true
				word = S.buffer.Bytes()
			default:
				err = io.EOF
			}
			return
		}

		switch S.state {
		case betweenWords:
			// Between words only letters and digits start a word, other characters
			// can't be at the beginning of one.
			switch classOf(c) {
			case charLetter:
				S.buffer.PushChar(toLowercase(c))
				S.state = inWordAfterAlphanum
			case charNumber:
				S.buffer.PushChar(c)
				S.state = inWordAfterAlphanum
			}

		case inWordAfterAlphanum:
			switch classOf(c) {
			case charLetter:
				S.buffer.PushChar(toLowercase(c))
			case charNumber:
				S.buffer.PushChar(c)
			case charInWordSymbol:
				// The word possibly ended here, settled by the next character.
				S.buffer.PushChar(c)
				S.state = inWordAfterSymbol
			case charOtherSymbol:
				S.state = betweenWords
				S.pending = true
				word = S.buffer.Bytes()
				return
			}

		case inWordAfterSymbol:
			switch classOf(c) {
			case charLetter:
				S.buffer.PushChar(toLowercase(c))
				S.state = inWordAfterAlphanum
			case charNumber:
				S.buffer.PushChar(c)
				S.state = inWordAfterAlphanum
			default:
				// Two consecutive symbols are not allowed inside words, so the word had
				// already ended before the previous one, which is discarded.
				S.buffer.Backspace()
				S.state = betweenWords
				S.pending = true
				word = S.buffer.Bytes()
				return
			}
		}
	}
}

// ScanAll - Reads the input to its end and returns the full staged word sequence.
// Staging the sequence up front is what lets a caller size a hash table from the total
// word count before counting begins.
func ScanAll(r io.Reader) (words [][]byte, err error) {
	scanner := NewScanner(r)

	var word []byte
	for {
		word, err = scanner.Next()
		if err != nil {
			if err == io.EOF {
				err = nil
			}
			return
		}

		staged := make([]byte, len(word))
		copy(staged, word)
		words = append(words, staged)
	}
}
