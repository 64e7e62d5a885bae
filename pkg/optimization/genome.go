package optimization

import "math/rand"

// normEpsilon is the threshold below which a raw weight sum is treated as
// zero and replaced with a uniform allocation instead of divided through.
const normEpsilon = 1e-9

// Genome is a candidate allocation: one non-negative weight per asset,
// normalized so the weights sum to 1 before any fitness read.
type Genome []float64

// NewRandomGenome draws n uniform random weights and normalizes them.
func NewRandomGenome(n int, rng *rand.Rand) Genome {
	g := make(Genome, n)
	for i := range g {
		g[i] = rng.Float64()
	}
	g.Normalize()
	return g
}

// Normalize rescales the genome in place so its weights sum to 1.
// A degenerate genome whose raw sum is at or below normEpsilon becomes
// the uniform allocation. Applied identically after initialization,
// crossover, and mutation.
func (g Genome) Normalize() {
	var sum float64
	for _, w := range g {
		sum += w
	}

	if sum <= normEpsilon {
		uniform := 1.0 / float64(len(g))
		for i := range g {
			g[i] = uniform
		}
		return
	}

	for i := range g {
		g[i] /= sum
	}
}

// Copy returns an independent copy of the genome.
func (g Genome) Copy() Genome {
	c := make(Genome, len(g))
	copy(c, g)
	return c
}
