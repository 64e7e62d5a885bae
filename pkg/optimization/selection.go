package optimization

import "math/rand"

// rouletteOffset keeps every selection weight strictly positive after the
// min-shift, so a population with all-equal (or all-negative) fitness still
// selects uniformly instead of dividing by a zero total.
const rouletteOffset = 1e-6

// Selector picks a parent from an evaluated population for breeding.
// New selection strategies are added by implementing this interface.
type Selector interface {
	Select(pop Population, rng *rand.Rand) *Individual
}

// TournamentSelector samples Size distinct individuals uniformly without
// replacement and returns the fittest of them. With Size equal to the
// population size it always returns the best individual.
type TournamentSelector struct {
	Size int
}

// Select runs one tournament and returns the winner.
func (s TournamentSelector) Select(pop Population, rng *rand.Rand) *Individual {
	k := s.Size
	if k > len(pop) {
		k = len(pop)
	}

	var best *Individual
	for _, idx := range rng.Perm(len(pop))[:k] {
		if best == nil || pop[idx].Fitness > best.Fitness {
			best = pop[idx]
		}
	}
	return best
}

// RouletteSelector implements fitness-proportionate selection. Scores are
// shifted by the population minimum before computing proportions, so
// negative fitness values cannot produce negative selection weights.
type RouletteSelector struct{}

// Select spins the wheel once and returns the landed-on individual.
func (RouletteSelector) Select(pop Population, rng *rand.Rand) *Individual {
	minFitness := pop[0].Fitness
	for _, ind := range pop[1:] {
		if ind.Fitness < minFitness {
			minFitness = ind.Fitness
		}
	}

	total := 0.0
	for _, ind := range pop {
		total += ind.Fitness - minFitness + rouletteOffset
	}

	spin := rng.Float64() * total
	for _, ind := range pop {
		spin -= ind.Fitness - minFitness + rouletteOffset
		if spin <= 0 {
			return ind
		}
	}
	return pop[len(pop)-1]
}
