package deck

import (
	"crypto/cipher"
	"encoding/binary"
	"math"
	"math/rand/v2"

	"go.dedis.ch/kyber/v4/suites"
)

// Source yields uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

var suite suites.Suite = suites.MustFind("Ed25519")

// Shuffle permutes the set in place with Fisher–Yates, so every ordering is
// equally likely given a uniform src.
func (cs *CardSet) Shuffle(src Source) {
	for i := len(cs.cards) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		cs.cards[i], cs.cards[j] = cs.cards[j], cs.cards[i]
	}
}

// NewSeededSource returns a reproducible PCG source.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// StreamSource draws integers from a cipher stream keyed by the system
// randomness.
type StreamSource struct {
	stream cipher.Stream
}

// NewStreamSource wraps an arbitrary cipher stream.
func NewStreamSource(stream cipher.Stream) *StreamSource {
	return &StreamSource{stream: stream}
}

// NewCryptoSource returns a StreamSource over the Ed25519 suite random stream.
func NewCryptoSource() *StreamSource {
	return NewStreamSource(suite.RandomStream())
}

// IntN returns a value in [0, n). Values above the largest multiple of n are
// rejected to keep the result unbiased. It panics if n <= 0.
func (s *StreamSource) IntN(n int) int {
	if n <= 0 {
		panic("deck: invalid argument to IntN")
	}
	un := uint64(n)
	limit := math.MaxUint64 - (math.MaxUint64%un+1)%un
	var buf [8]byte
	for {
		clear(buf[:])
		s.stream.XORKeyStream(buf[:], buf[:])
		v := binary.LittleEndian.Uint64(buf[:])
		if v <= limit {
			return int(v % un)
		}
	}
}
