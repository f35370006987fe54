package simon

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

type pcgRandom struct {
	rng *rand.Rand
}

// NewRandom returns a Random backed by a PCG generator. The same seed yields
// the same draws.
func NewRandom(seed uint64) Random {
	return &pcgRandom{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *pcgRandom) UniformInt(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.rng.IntN(hi-lo+1)
}

// NewSeed reads a random seed from crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}
