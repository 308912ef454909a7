package random

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"

	"github.com/google/uuid"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// ID returns a new unique identifier
	ID() string
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a cryptographically random int in [0, n)
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	max := big.NewInt(int64(n))
	result, err := rand.Int(rand.Reader, max)
	if err != nil {
		// Fall back to 0 on error (should never happen with crypto/rand)
		return 0
	}
	return int(result.Int64())
}

// ID returns a random UUID string
func (r *CryptoRandom) ID() string {
	return uuid.NewString()
}

// SeededRandom is a deterministic Random for reproducible rolls
type SeededRandom struct {
	rng *mrand.Rand
}

// NewSeeded creates a SeededRandom from a seed
func NewSeeded(seed uint64) *SeededRandom {
	return &SeededRandom{rng: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Intn returns a pseudo-random int in [0, n)
func (r *SeededRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.IntN(n)
}

// ID returns a UUID built from the seeded stream
func (r *SeededRandom) ID() string {
	var b [16]byte
	for i := range b {
		b[i] = byte(r.rng.IntN(256))
	}
	id, err := uuid.FromBytes(b[:])
	if err != nil {
		return uuid.Nil.String()
	}
	return id.String()
}
