package optimization

import "sort"

// Population is an ordered collection of individuals. It is owned
// exclusively by the optimizer for the duration of a run.
type Population []*Individual

// SortByFitness sorts the population by fitness in descending order (best first).
func (p Population) SortByFitness() {
	sort.Slice(p, func(i, j int) bool {
		return p[i].Fitness > p[j].Fitness
	})
}

// Best returns the individual with the highest fitness, or nil if empty.
func (p Population) Best() *Individual {
	if len(p) == 0 {
		return nil
	}

	best := p[0]
	for _, ind := range p[1:] {
		if ind.Fitness > best.Fitness {
			best = ind
		}
	}
	return best
}

// AverageFitness calculates the average fitness of all individuals.
func (p Population) AverageFitness() float64 {
	if len(p) == 0 {
		return 0
	}

	sum := 0.0
	for _, ind := range p {
		sum += ind.Fitness
	}
	return sum / float64(len(p))
}

// Elite returns deep copies of the top n individuals by fitness.
// The population is sorted as a side effect.
func (p Population) Elite(n int) []*Individual {
	if n > len(p) {
		n = len(p)
	}

	p.SortByFitness()

	elite := make([]*Individual, n)
	for i := 0; i < n; i++ {
		elite[i] = p[i].Copy()
	}
	return elite
}
