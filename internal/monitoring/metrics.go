package monitoring

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ducminhle1904/portfolio-optimizer/pkg/optimization"
)

var (
	// Search progress metrics
	generationIndex = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "portfolio_ga_generation",
			Help: "Index of the last completed generation",
		},
	)

	bestFitness = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "portfolio_ga_best_fitness",
			Help: "Best fitness score seen so far",
		},
	)

	bestWeight = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "portfolio_ga_best_weight",
			Help: "Weight of each asset in the best allocation seen so far",
		},
		[]string{"asset"},
	)

	// Error metrics
	publishErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "portfolio_ga_publish_errors_total",
			Help: "Total number of failed progress publications",
		},
	)
)

func init() {
	// Register metrics
	prometheus.MustRegister(generationIndex)
	prometheus.MustRegister(bestFitness)
	prometheus.MustRegister(bestWeight)
	prometheus.MustRegister(publishErrorsTotal)
}

// PrometheusSink publishes per-generation optimizer progress as Prometheus
// metrics. It satisfies the optimizer's fire-and-forget sink contract: a
// publish error counts against publishErrorsTotal and the run continues.
type PrometheusSink struct {
	assetNames []string
}

// NewPrometheusSink creates a sink labelling weights by the given asset names.
func NewPrometheusSink(assetNames []string) *PrometheusSink {
	return &PrometheusSink{assetNames: assetNames}
}

// Publish records one generation's best score and allocation.
func (s *PrometheusSink) Publish(result optimization.RunResult) error {
	if len(result.BestGenome) != len(s.assetNames) {
		publishErrorsTotal.Inc()
		return fmt.Errorf("allocation has %d weights for %d assets",
			len(result.BestGenome), len(s.assetNames))
	}

	generationIndex.Set(float64(result.Generation))
	bestFitness.Set(result.BestFitness)
	for i, name := range s.assetNames {
		bestWeight.WithLabelValues(name).Set(result.BestGenome[i])
	}
	return nil
}

// MetricsHandler handles the Prometheus scrape endpoint
type MetricsHandler struct{}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{}
}

// ServeHTTP serves the Prometheus metrics endpoint
func (m *MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}
