package game

import (
	"math/rand"
	"time"
)

// Picker draws uniform random indices.
type Picker interface {
	// IntN returns a uniform random integer in [0, n).
	IntN(n int) int
}

type randPicker struct {
	rng *rand.Rand
}

// NewPicker returns a Picker seeded once with seed.
// A zero seed uses the current time.
func NewPicker(seed int64) Picker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randPicker{rng: rand.New(rand.NewSource(seed))}
}

func (p *randPicker) IntN(n int) int {
	return p.rng.Intn(n)
}
