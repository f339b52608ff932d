package huffman

import (
	"crypto/rand"
	mrand "math/rand"
	"sync"
)

// TieBreaker decides, when the two lightest subtrees have the same weight,
// whether they swap sides before being joined.
type TieBreaker interface {
	Swap() bool
}

// TieBreakerFunc adapts a function to the TieBreaker interface.
type TieBreakerFunc func() bool

func (f TieBreakerFunc) Swap() bool { return f() }

// NeverSwap keeps ties in heap order.
var NeverSwap TieBreaker = TieBreakerFunc(func() bool { return false })

type cryptoTieBreaker struct {
	lock sync.Mutex
	buf  [1]byte
}

// CryptoTieBreaker returns a TieBreaker backed by crypto/rand. It is the default
// and is safe for concurrent use.
func CryptoTieBreaker() TieBreaker {
	return &cryptoTieBreaker{}
}

func (c *cryptoTieBreaker) Swap() bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	if _, err := rand.Read(c.buf[:]); err != nil {
		panic(err)
	}
	return c.buf[0]&1 == 1
}

// SeededTieBreaker returns a reproducible TieBreaker. Not safe for concurrent use.
func SeededTieBreaker(seed int64) TieBreaker {
	r := mrand.New(mrand.NewSource(seed)) //#nosec G404 tie breaking needs no secure rng
	return TieBreakerFunc(func() bool { return r.Intn(2) == 1 })
}

// SequenceTieBreaker replays bits, starting over once they are exhausted.
// With no bits it never swaps. Not safe for concurrent use.
func SequenceTieBreaker(bits ...bool) TieBreaker {
	if len(bits) == 0 {
		return NeverSwap
	}
	bits = append([]bool(nil), bits...)
	i := 0
	return TieBreakerFunc(func() bool {
		b := bits[i]
		i = (i + 1) % len(bits)
		return b
	})
}
