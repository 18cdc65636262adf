package walksat

import (
	"math/rand"
	"time"
)

// rng is the solver's private pseudo-random source. Each Solver owns
// one rng instance rather than drawing from a process-global
// generator, so that two solvers seeded identically produce identical
// flip sequences regardless of what else is running concurrently.
type rng struct {
	r *rand.Rand
}

// newRNG seeds a new rng. A seed of 0 seeds from wall-clock time.
func newRNG(seed int64) *rng {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &rng{r: rand.New(rand.NewSource(seed))}
}

// flip returns true with probability p, false otherwise.
func (g *rng) flip(p float64) bool {
	return g.r.Float64() <= p
}

// uniform returns a uniformly distributed integer in [0, n). n must
// be positive. math/rand's Int63n rejects and redraws internally to
// avoid the modulo bias a naive r%n would introduce.
func (g *rng) uniform(n int) int {
	return int(g.r.Int63n(int64(n)))
}
