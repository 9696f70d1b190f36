package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLengthAndCharset(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := NewGameID()
		assert.Len(t, id, GameIDLength)
		for _, r := range id {
			assert.True(t, strings.ContainsRune(alphabet, r), "unexpected rune %q in %q", r, id)
		}
	}
}

func TestNewIsRandom(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		seen[NewGameID()] = true
	}
	// 62^8 possible tokens; 1000 draws colliding would mean a broken generator.
	assert.Len(t, seen, 1000)
}
