package token

import (
	"crypto/rand"
	"math/big"
)

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GameIDLength is the fixed length of game identifiers.
const GameIDLength = 8

// New returns a random alphanumeric token of length n.
func New(n int) string {
	buf := make([]byte, n)
	max := big.NewInt(int64(len(alphabet)))
	for i := range buf {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken
			panic(err)
		}
		buf[i] = alphabet[idx.Int64()]
	}
	return string(buf)
}

// NewGameID returns a fresh game identifier.
func NewGameID() string {
	return New(GameIDLength)
}
