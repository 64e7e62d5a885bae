package optimization

import (
	"log"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/ducminhle1904/portfolio-optimizer/internal/portfolio"
)

// RunResult captures the best allocation seen up to and including a generation.
type RunResult struct {
	Generation  int
	BestFitness float64
	BestGenome  Genome
}

// ProgressSink receives one RunResult per completed generation.
// Publishing is fire-and-forget: a sink error is logged and the run
// continues, it never aborts the search.
type ProgressSink interface {
	Publish(RunResult) error
}

// Optimizer drives the genetic search over a fixed number of generations.
// It owns the population, the random source, and the best-seen individual;
// nothing else aliases them during a run.
type Optimizer struct {
	universe  portfolio.Universe
	params    Params
	selector  Selector
	crossover Crossover
	mutation  Mutation
	rng       *rand.Rand
	sink      ProgressSink
	history   []RunResult
	best      *Individual
}

// NewOptimizer validates params against the universe and builds an optimizer.
// The random source defaults to a time-based seed; call SetSeed for
// reproducible runs.
func NewOptimizer(universe portfolio.Universe, params Params) (*Optimizer, error) {
	if err := params.Validate(universe.Size()); err != nil {
		return nil, err
	}

	var selector Selector
	switch params.Selection {
	case SelectionRoulette:
		selector = RouletteSelector{}
	default:
		selector = TournamentSelector{Size: params.TournamentSize}
	}

	return &Optimizer{
		universe:  universe,
		params:    params,
		selector:  selector,
		crossover: Crossover{Rate: params.CrossoverRate},
		mutation:  Mutation{Rate: params.MutationRate},
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// SetSeed replaces the random source with one derived from seed, making the
// run reproducible: the same seed and parameters produce identical results.
func (o *Optimizer) SetSeed(seed int64) {
	o.rng = rand.New(rand.NewSource(seed))
}

// SetSink installs the per-generation progress sink.
func (o *Optimizer) SetSink(sink ProgressSink) {
	o.sink = sink
}

// SetSelector overrides the selection strategy chosen from params.
func (o *Optimizer) SetSelector(selector Selector) {
	o.selector = selector
}

// Run executes the full generation loop and returns the final best result.
// Each generation evaluates and sorts the population, tracks the best
// individual seen, publishes progress, and breeds the next population from
// elites plus selected, crossed, and mutated offspring.
func (o *Optimizer) Run() RunResult {
	pop := o.initialPopulation()

	for gen := 0; gen < o.params.Generations; gen++ {
		o.evaluate(pop)
		pop.SortByFitness()

		if o.best == nil || pop[0].Fitness > o.best.Fitness {
			o.best = pop[0].Copy()
		}

		result := RunResult{
			Generation:  gen,
			BestFitness: o.best.Fitness,
			BestGenome:  o.best.Genome.Copy(),
		}
		o.history = append(o.history, result)
		o.publish(result)

		if gen < o.params.Generations-1 {
			pop = o.nextGeneration(pop)
		}
	}

	return o.history[len(o.history)-1]
}

// History returns the per-generation results of the last run, one entry per
// completed generation.
func (o *Optimizer) History() []RunResult {
	return o.history
}

func (o *Optimizer) initialPopulation() Population {
	pop := make(Population, o.params.PopulationSize)
	for i := range pop {
		pop[i] = NewIndividual(NewRandomGenome(o.universe.Size(), o.rng))
	}
	return pop
}

// evaluate scores every individual lacking a cached fitness. Scoring is
// pure, so evaluating in parallel cannot change the outcome; each result
// lands on its own individual before the population is sorted.
func (o *Optimizer) evaluate(pop Population) {
	workers := o.params.MaxWorkers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	var wg sync.WaitGroup
	slots := make(chan struct{}, workers)

	for _, ind := range pop {
		if ind.Evaluated() {
			continue
		}

		wg.Add(1)
		go func(ind *Individual) {
			defer wg.Done()

			slots <- struct{}{}
			defer func() { <-slots }()

			ind.SetFitness(o.universe.Score(ind.Genome))
		}(ind)
	}

	wg.Wait()
}

// nextGeneration carries the elite forward unchanged and fills the rest of
// the population with bred offspring.
func (o *Optimizer) nextGeneration(pop Population) Population {
	next := make(Population, 0, len(pop))
	next = append(next, pop.Elite(o.params.EliteCount)...)

	for len(next) < len(pop) {
		parent1 := o.selector.Select(pop, o.rng)
		parent2 := o.selector.Select(pop, o.rng)

		child := o.crossover.Apply(parent1.Genome, parent2.Genome, o.rng)
		o.mutation.Apply(child, o.rng)

		next = append(next, NewIndividual(child))
	}

	return next
}

func (o *Optimizer) publish(result RunResult) {
	if o.sink == nil {
		return
	}
	if err := o.sink.Publish(result); err != nil {
		log.Printf("progress publish failed for generation %d: %v", result.Generation, err)
	}
}
