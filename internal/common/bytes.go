package common

// WipeByteArray zeroes b in place. Passwords read from the terminal are wiped
// with it once they have been converted for the account store.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
