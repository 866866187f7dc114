package utils

import "strconv"

// IsEqual - Returns true if a and b are equal both in size and contents
func IsEqual(a, b []byte) bool {
	lenA := len(a)
	if lenA != len(b) {
		return false
	}

	for i := 0; i < lenA; i++ {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// NextPowerOfTwo - Rounds up the input to the nearest power of two, by setting all bits to the
// right of the most significant one bit and incrementing by one at the end.
func NextPowerOfTwo(num int64) int64 {
	if num <= 0 {
		return 1
	}

	v := num - 1
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v |= v >> 32

	return v + 1
}

// NumOfDigits - Returns the number of characters needed to represent a decimal number in a string
func NumOfDigits(num int64) int {
	return len(strconv.FormatInt(num, 10))
}

// Abs - Returns the absolute value of num
func Abs(num int64) int64 {
	if num < 0 {
		return -num
	}
	return num
}
