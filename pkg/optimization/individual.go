package optimization

// Individual pairs a genome with its cached fitness score.
type Individual struct {
	Genome  Genome
	Fitness float64

	evaluated bool
}

// NewIndividual wraps a genome in an unevaluated individual.
func NewIndividual(g Genome) *Individual {
	return &Individual{Genome: g}
}

// SetFitness caches the score for the current genome.
func (ind *Individual) SetFitness(fitness float64) {
	ind.Fitness = fitness
	ind.evaluated = true
}

// Evaluated reports whether the cached fitness is valid for the current genome.
func (ind *Individual) Evaluated() bool {
	return ind.evaluated
}

// Reset clears the cached fitness after the genome changed.
func (ind *Individual) Reset() {
	ind.Fitness = 0
	ind.evaluated = false
}

// Copy returns a deep copy, including the cached score.
func (ind *Individual) Copy() *Individual {
	return &Individual{
		Genome:    ind.Genome.Copy(),
		Fitness:   ind.Fitness,
		evaluated: ind.evaluated,
	}
}
