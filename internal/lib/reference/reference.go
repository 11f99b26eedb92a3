package reference

import (
	"crypto/rand"
	"fmt"
)

const (
	prefix   = "BEE-"
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	length   = 8
)

// New generates a booking reference of the form BEE-XXXXXXXX where X is an
// uppercase letter or digit. References are random, not sequential, so they
// can be read out over the phone without leaking booking volume.
func New() (string, error) {
	const op = "lib.reference.New"

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}

	return prefix + string(buf), nil
}
