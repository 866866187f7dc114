package crt

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

// PoolFull - Custom error to inform that the string pool is full and can't store another word.
// The condition is recoverable, the caller grows the pool and retries the exact same operation.
type PoolFull struct {
	msg string
}

// Error - Used to notify that the string pool is full
func (E PoolFull) Error() string {
	if E.msg == "" {
		return "string pool full"
	}
	return E.msg
}

// ProbeExhausted - Custom error to inform that the probing sequence traversed the entire table
// without finding a matching word or an empty slot
type ProbeExhausted struct {
	msg string
}

// Error - Used to notify that the probing sequence was exhausted
func (P ProbeExhausted) Error() string {
	if P.msg == "" {
		return "probing sequence exhausted"
	}
	return P.msg
}
