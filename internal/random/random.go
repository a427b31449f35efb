// Package random provides cryptographically secure random value helpers.
package random

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
)

// Intn returns a uniform random int in [0, max).
func Intn(max int) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0, fmt.Errorf("generating random number: %w", err)
	}
	return int(n.Int64()), nil
}

// Bytes returns n cryptographically random bytes.
func Bytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("generating random bytes: %w", err)
	}
	return b, nil
}

// Code returns a uniform 6-digit numeric code in [100000, 999999].
func Code() (string, error) {
	n, err := Intn(900000)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(100000 + n), nil
}

// Token returns a hex-encoded token with n bytes of entropy.
func Token(n int) (string, error) {
	b, err := Bytes(n)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
