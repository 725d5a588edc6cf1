package random

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand"

	"github.com/google/uuid"
)

// NewSeed returns a fresh collision-resistant seed string.
// Seeds guard fairness, not secrecy: they are stored alongside the
// round they shuffled so the round can be reconstructed later.
func NewSeed() string {
	return uuid.NewString()
}

// New derives a deterministic generator from an opaque seed string.
// The same seed always yields the same sequence.
func New(seed string) *rand.Rand {
	sum := sha256.Sum256([]byte(seed))
	source := int64(binary.BigEndian.Uint64(sum[:8]))
	return rand.New(rand.NewSource(source))
}
