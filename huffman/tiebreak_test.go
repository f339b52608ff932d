package huffman

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequenceTieBreaker(t *testing.T) {
	tb := SequenceTieBreaker(true, false)
	var got []bool
	for i := 0; i < 5; i++ {
		got = append(got, tb.Swap())
	}
	assert.Equal(t, []bool{true, false, true, false, true}, got)
	assert.False(t, SequenceTieBreaker().Swap())
}

func TestSeededTieBreaker(t *testing.T) {
	a, b := SeededTieBreaker(7), SeededTieBreaker(7)
	for i := 0; i < 64; i++ {
		assert.Equal(t, a.Swap(), b.Swap())
	}
}

func TestCryptoTieBreakerFlips(t *testing.T) {
	tb := CryptoTieBreaker()
	seen := map[bool]bool{}
	for i := 0; i < 256 && len(seen) < 2; i++ {
		seen[tb.Swap()] = true
	}
	assert.Len(t, seen, 2)
}
