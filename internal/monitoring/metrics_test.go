package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducminhle1904/portfolio-optimizer/pkg/optimization"
)

func TestPrometheusSink_Publish(t *testing.T) {
	sink := NewPrometheusSink([]string{"VUSA", "CNDX", "AIQ"})

	err := sink.Publish(optimization.RunResult{
		Generation:  7,
		BestFitness: 0.35,
		BestGenome:  optimization.Genome{0.5, 0.3, 0.2},
	})

	require.NoError(t, err)
	assert.Equal(t, 7.0, testutil.ToFloat64(generationIndex))
	assert.Equal(t, 0.35, testutil.ToFloat64(bestFitness))
	assert.Equal(t, 0.5, testutil.ToFloat64(bestWeight.WithLabelValues("VUSA")))
	assert.Equal(t, 0.2, testutil.ToFloat64(bestWeight.WithLabelValues("AIQ")))
}

func TestPrometheusSink_WeightCountMismatch(t *testing.T) {
	sink := NewPrometheusSink([]string{"VUSA", "CNDX"})
	before := testutil.ToFloat64(publishErrorsTotal)

	err := sink.Publish(optimization.RunResult{
		Generation:  0,
		BestFitness: 0.1,
		BestGenome:  optimization.Genome{1.0},
	})

	require.Error(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(publishErrorsTotal))
}

func TestMetricsHandler_ServesMetrics(t *testing.T) {
	sink := NewPrometheusSink([]string{"VUSA", "CNDX"})
	require.NoError(t, sink.Publish(optimization.RunResult{
		Generation:  1,
		BestFitness: 0.25,
		BestGenome:  optimization.Genome{0.6, 0.4},
	}))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	NewMetricsHandler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "portfolio_ga_best_fitness")
	assert.Contains(t, body, "portfolio_ga_generation")
	assert.Contains(t, body, `portfolio_ga_best_weight{asset="VUSA"}`)
}
