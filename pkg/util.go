package pkg

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"unsafe"
)

// BytesToString converts bytes slice to a string without extra allocation
func BytesToString(buf []byte) string {
	return *(*string)(unsafe.Pointer(&buf))
}

// RandomID returns a hex encoded, securely generated random id
// made of n random bytes (so the result is 2*n chars long).
func RandomID(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("random id length must be positive")
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Truncate cuts s to at most max runes, appending "..." when cut.
func Truncate(s string, max int) string {
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
