package wordfreqmap

// WordNotFound - Custom error to inform that no word was found
type WordNotFound struct {
	msg string
}

// Error - Used to notify that no word was found
func (E WordNotFound) Error() string {
	if E.msg == "" {
		return "word not found"
	}
	return E.msg
}
