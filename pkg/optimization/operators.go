package optimization

import "math/rand"

// DefaultMutationStep bounds the uniform noise added to a mutated weight.
const DefaultMutationStep = 0.1

// Crossover blends two parent genomes into a child at the configured rate.
type Crossover struct {
	Rate float64
}

// Apply produces one child. With probability Rate the child is a
// random-alpha arithmetic blend of the parents; otherwise it is a copy of
// one parent chosen at random. The child is always renormalized.
func (c Crossover) Apply(parent1, parent2 Genome, rng *rand.Rand) Genome {
	if rng.Float64() >= c.Rate {
		if rng.Float64() < 0.5 {
			return parent1.Copy()
		}
		return parent2.Copy()
	}

	alpha := rng.Float64()
	child := make(Genome, len(parent1))
	for i := range child {
		child[i] = alpha*parent1[i] + (1-alpha)*parent2[i]
	}
	child.Normalize()
	return child
}

// Mutation perturbs genes independently at the configured per-gene rate.
// Every gene can be altered on its own, which is what keeps the search from
// converging prematurely to a local optimum.
type Mutation struct {
	Rate    float64
	MaxStep float64
}

// Apply mutates the genome in place and reports whether anything changed.
// A perturbed weight gets uniform noise in [-MaxStep, MaxStep] and is
// clamped to [0, 1]; the genome is renormalized after any change.
func (m Mutation) Apply(g Genome, rng *rand.Rand) bool {
	step := m.MaxStep
	if step <= 0 {
		step = DefaultMutationStep
	}

	mutated := false
	for i := range g {
		if rng.Float64() >= m.Rate {
			continue
		}
		g[i] = clamp01(g[i] + (rng.Float64()*2-1)*step)
		mutated = true
	}

	if mutated {
		g.Normalize()
	}
	return mutated
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
