package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const orderNumberAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// RandomString returns n characters drawn from an unambiguous alphabet
// (no 0/O, 1/I) using crypto/rand.
func RandomString(n int) (string, error) {
	b := make([]byte, n)
	max := big.NewInt(int64(len(orderNumberAlphabet)))
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = orderNumberAlphabet[idx.Int64()]
	}
	return string(b), nil
}

// GenerateOrderNumber builds a human-quotable order reference like
// ORD-20260828-7KQ2M9.
func GenerateOrderNumber(prefix string) (string, error) {
	suffix, err := RandomString(6)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s-%s", prefix, time.Now().UTC().Format("20060102"), suffix), nil
}
