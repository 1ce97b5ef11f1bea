package kv

import (
	"strconv"
)

// parseCounter reads a stored counter. Absent and empty values count as 0.
// Anything else must be plain decimal text, so " 3" is rejected by every
// backend alike.
func parseCounter(v []byte) (int64, error) {
	if len(v) == 0 {
		return 0, nil
	}
	n, err := strconv.ParseInt(string(v), 10, 64)
	if err != nil {
		return 0, ErrNotInteger
	}
	return n, nil
}

func clone(v []byte) []byte {
	if v == nil {
		return nil
	}
	return append([]byte{}, v...)
}
