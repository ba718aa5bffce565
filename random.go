package tstoken

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/google/tink/go/subtle/random"
)

// Source provides random floats in [0, 1).
// *math/rand/v2.Rand satisfies it.
type Source interface {
	Float64() float64
}

// cryptoSource draws from Tink's CSPRNG. It is safe for concurrent use.
type cryptoSource struct{}

func (cryptoSource) Float64() float64 {
	b := random.GetRandomBytes(8)
	// top 53 bits fill the float64 mantissa exactly
	return float64(binary.BigEndian.Uint64(b)>>11) / (1 << 53)
}

// CryptoSource returns the default Source, backed by a cryptographically secure generator.
func CryptoSource() Source { return cryptoSource{} }

type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// SeededSource returns a deterministic ChaCha8 Source. Two sources built from
// the same seed yield the same sequence. It is safe for concurrent use.
func SeededSource(seed [32]byte) Source {
	return &lockedSource{rng: rand.New(rand.NewChaCha8(seed))}
}

// Rnd returns an integer meant to lie in [min, max).
//
// It adds two independently scaled draws, floor(f1*min) + floor(f2*(max-min)),
// so the result is not uniform over the interval; with min > 0 it can fall
// below min. Tokens written by earlier releases were salted with this
// exact shape, which is why it is kept.
func Rnd(src Source, max, min int) int {
	alt := int(math.Floor(src.Float64() * float64(min)))
	otr := int(math.Floor(src.Float64() * float64(max-min)))
	return otr + alt
}

// Choose returns seq[Rnd(src, len(seq), 0)]. ok is false for an empty seq.
func Choose[T any](src Source, seq []T) (v T, ok bool) {
	if len(seq) == 0 {
		return v, false
	}
	return seq[Rnd(src, len(seq), 0)], true
}

// ChooseN makes n independent choices from seq. Repeats are allowed.
// It returns nil when seq is empty or n <= 0.
func ChooseN[T any](src Source, seq []T, n int) []T {
	if len(seq) == 0 || n <= 0 {
		return nil
	}
	res := make([]T, n)
	for i := range res {
		res[i], _ = Choose(src, seq)
	}
	return res
}
