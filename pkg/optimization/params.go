package optimization

import "fmt"

// SelectionMethod names a built-in parent selection strategy.
type SelectionMethod string

const (
	SelectionTournament SelectionMethod = "tournament"
	SelectionRoulette   SelectionMethod = "roulette"
)

// Params configures one genetic optimization run.
type Params struct {
	PopulationSize int
	Generations    int
	CrossoverRate  float64
	MutationRate   float64
	EliteCount     int
	Selection      SelectionMethod
	TournamentSize int
	MaxWorkers     int
}

// DefaultParams returns the stock GA parameters.
func DefaultParams() Params {
	return Params{
		PopulationSize: 50,
		Generations:    200,
		CrossoverRate:  0.7,
		MutationRate:   0.1,
		EliteCount:     2,
		Selection:      SelectionRoulette,
		TournamentSize: 3,
		MaxWorkers:     4,
	}
}

// Validate rejects misconfigured parameters before a run starts.
// assetCount is the size of the universe the genomes will span.
func (p Params) Validate(assetCount int) error {
	if assetCount < 2 {
		return fmt.Errorf("asset universe must contain at least 2 assets, got: %d", assetCount)
	}

	if p.PopulationSize < 2 {
		return fmt.Errorf("population size must be at least 2, got: %d", p.PopulationSize)
	}

	if p.Generations < 1 {
		return fmt.Errorf("generation count must be at least 1, got: %d", p.Generations)
	}

	if p.CrossoverRate < 0 || p.CrossoverRate > 1 {
		return fmt.Errorf("crossover rate must be between 0 and 1, got: %.4f", p.CrossoverRate)
	}

	if p.MutationRate < 0 || p.MutationRate > 1 {
		return fmt.Errorf("mutation rate must be between 0 and 1, got: %.4f", p.MutationRate)
	}

	if p.EliteCount < 0 || p.EliteCount >= p.PopulationSize {
		return fmt.Errorf("elitism count must be in [0, population size), got: %d with population %d",
			p.EliteCount, p.PopulationSize)
	}

	switch p.Selection {
	case SelectionTournament:
		if p.TournamentSize < 2 || p.TournamentSize > p.PopulationSize {
			return fmt.Errorf("tournament size must be in [2, population size], got: %d with population %d",
				p.TournamentSize, p.PopulationSize)
		}
	case SelectionRoulette:
	default:
		return fmt.Errorf("unknown selection method: %q (expected %q or %q)",
			p.Selection, SelectionTournament, SelectionRoulette)
	}

	if p.MaxWorkers < 0 {
		return fmt.Errorf("max workers must be non-negative, got: %d", p.MaxWorkers)
	}

	return nil
}
