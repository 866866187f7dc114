package wordscan

import (
	"fmt"

	"github.com/gostonefire/wordfreqmap/internal/conf"
)

// WordBuffer - A growable byte buffer used to stage one word while scanning.
// It doubles its capacity whenever a pushed character doesn't fit.
type WordBuffer struct {
	letters []byte
}

// NewWordBuffer - Returns a pointer to a new WordBuffer instance with the given initial capacity
//   - initialLength is the starting capacity in bytes and must be at least 2
func NewWordBuffer(initialLength int) (wordBuffer *WordBuffer, err error) {
	if initialLength < conf.MinWordBufferLength {
		err = fmt.Errorf("initial word buffer length %d is smaller than %d", initialLength, conf.MinWordBufferLength)
		return
	}

	wordBuffer = &WordBuffer{letters: make([]byte, 0, initialLength)}

	return
}

// PushChar - Appends one character to the buffer, growing it if needed
func (B *WordBuffer) PushChar(newChar byte) {
	if len(B.letters) == cap(B.letters) {
		ext := make([]byte, len(B.letters), cap(B.letters)*2)
		copy(ext, B.letters)
		B.letters = ext
	}

	B.letters = append(B.letters, newChar)
}

// Backspace - Erases the last character of the buffer, if there is one to erase
func (B *WordBuffer) Backspace() {
	if len(B.letters) >= 1 {
		B.letters = B.letters[:len(B.letters)-1]
	}
}

// Clear - Empties the buffer while keeping its capacity
func (B *WordBuffer) Clear() {
	B.letters = B.letters[:0]
}

// Bytes - Returns the current contents of the buffer.
// The slice aliases the buffer and is valid only until the next PushChar or Clear.
func (B *WordBuffer) Bytes() []byte {
	return B.letters
}

// Len - Returns the current number of characters in the buffer
func (B *WordBuffer) Len() int {
	return len(B.letters)
}
