// Package dice draws the randomized sale quantities used by the revenue
// calculator. The source is injectable so tests can substitute a
// deterministic generator without changing the sampling contract.
package dice

import (
	"math/rand"
	"time"
)

// Source yields uniform draws for quantity rolls.
type Source interface {
	// Roll returns an integer in [1, faces], inclusive on both ends.
	Roll(faces int) int
}

type randSource struct {
	rnd *rand.Rand
}

func (r randSource) Roll(faces int) int {
	if faces < 1 {
		return 1
	}
	return r.rnd.Intn(faces) + 1
}

// NewSource returns a Source seeded deterministically.
func NewSource(seed int64) Source {
	return randSource{rnd: rand.New(rand.NewSource(seed))}
}

// Default returns a time-seeded Source for production use.
func Default() Source {
	return NewSource(time.Now().UnixNano())
}
