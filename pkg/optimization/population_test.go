package optimization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopulation_SortByFitness(t *testing.T) {
	pop := scoredPopulation(0.2, 0.9, 0.5)

	pop.SortByFitness()

	assert.Equal(t, 0.9, pop[0].Fitness)
	assert.Equal(t, 0.5, pop[1].Fitness)
	assert.Equal(t, 0.2, pop[2].Fitness)
}

func TestPopulation_Best(t *testing.T) {
	pop := scoredPopulation(0.2, 0.9, 0.5)

	best := pop.Best()

	require.NotNil(t, best)
	assert.Equal(t, 0.9, best.Fitness)
	assert.Nil(t, Population{}.Best())
}

func TestPopulation_AverageFitness(t *testing.T) {
	pop := scoredPopulation(0.2, 0.4, 0.6)

	assert.InDelta(t, 0.4, pop.AverageFitness(), 1e-12)
	assert.Equal(t, 0.0, Population{}.AverageFitness())
}

// TestPopulation_Elite verifies elites are deep copies of the top
// individuals, insulated from later mutation of the originals.
func TestPopulation_Elite(t *testing.T) {
	pop := scoredPopulation(0.2, 0.9, 0.5, 0.7)
	pop[1].Genome = Genome{0.4, 0.6}

	elite := pop.Elite(2)

	require.Len(t, elite, 2)
	assert.Equal(t, 0.9, elite[0].Fitness)
	assert.Equal(t, 0.7, elite[1].Fitness)

	elite[0].Genome[0] = 0.99
	assert.Equal(t, 0.4, pop[0].Genome[0], "elite must not alias the population")
}

func TestPopulation_EliteClampsCount(t *testing.T) {
	pop := scoredPopulation(0.1, 0.2)

	assert.Len(t, pop.Elite(5), 2)
	assert.Len(t, pop.Elite(0), 0)
}

// TestIndividual_FitnessCache verifies the evaluated flag tracks genome
// changes through Reset.
func TestIndividual_FitnessCache(t *testing.T) {
	ind := NewIndividual(Genome{0.5, 0.5})
	assert.False(t, ind.Evaluated())

	ind.SetFitness(0.42)
	assert.True(t, ind.Evaluated())
	assert.Equal(t, 0.42, ind.Fitness)

	ind.Reset()
	assert.False(t, ind.Evaluated())
	assert.Equal(t, 0.0, ind.Fitness)
}
