package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ducminhle1904/portfolio-optimizer/internal/monitoring"
	"github.com/ducminhle1904/portfolio-optimizer/pkg/config"
	"github.com/ducminhle1904/portfolio-optimizer/pkg/optimization"
	"github.com/ducminhle1904/portfolio-optimizer/pkg/reporting"
)

var (
	configFile     = flag.String("config", "", "Path to JSON configuration file")
	envFile        = flag.String("env", ".env", "Environment file path")
	assetList      = flag.String("assets", "", "Inline asset list as NAME:expected_return:risk, comma separated")
	population     = flag.Int("population", 0, "Population size")
	generations    = flag.Int("generations", 0, "Number of generations")
	crossoverRate  = flag.Float64("crossover", -1, "Crossover rate [0,1]")
	mutationRate   = flag.Float64("mutation", -1, "Mutation rate [0,1]")
	elitism        = flag.Int("elitism", -1, "Number of elite individuals carried into the next generation")
	selection      = flag.String("selection", "", "Selection method: tournament or roulette")
	tournamentSize = flag.Int("tournament-size", 0, "Tournament size for tournament selection")
	seed           = flag.Int64("seed", 0, "Random seed (0 uses a time-based seed)")
	metricsAddr    = flag.String("metrics-addr", "", "Listen address for the Prometheus /metrics endpoint (empty disables)")
	outputFile     = flag.String("output", "", "Path for the Excel report (empty disables)")
)

func main() {
	flag.Parse()

	// Load environment variables (best effort, a missing .env is fine)
	if err := godotenv.Load(*envFile); err == nil {
		log.Printf("Loaded environment from %s", *envFile)
	}

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	if err := applyFlagOverrides(cfg); err != nil {
		log.Fatalf("❌ %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ configuration validation failed: %v", err)
	}

	if addr := resolveMetricsAddr(cfg); addr != "" {
		startMetricsServer(addr)
	}

	universe := cfg.Universe()

	opt, err := optimization.NewOptimizer(universe, cfg.Params())
	if err != nil {
		log.Fatalf("❌ invalid configuration: %v", err)
	}
	opt.SetSink(monitoring.NewPrometheusSink(universe.Names()))
	if cfg.GA.Seed != 0 {
		opt.SetSeed(cfg.GA.Seed)
	}

	log.Printf("🧬 Optimizing %d-asset allocation: population=%d generations=%d selection=%s",
		universe.Size(), cfg.GA.Population, cfg.GA.Generations, cfg.GA.Selection)

	result := opt.Run()

	reporting.NewConsoleReporter().PrintAllocation(universe, result)

	if cfg.OutputFile != "" {
		if err := reporting.NewExcelReporter().WriteReport(universe, opt.History(), cfg.OutputFile); err != nil {
			log.Printf("⚠️ failed to write Excel report: %v", err)
		} else {
			log.Printf("💾 Report written to %s", cfg.OutputFile)
		}
	}

	log.Printf("✅ GA → %.6f", result.BestFitness)
}

// applyFlagOverrides copies explicitly set flags over the loaded config,
// so the precedence is flags > config file > defaults.
func applyFlagOverrides(cfg *config.Config) error {
	var parseErr error

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "assets":
			assets, err := parseAssets(*assetList)
			if err != nil {
				parseErr = err
				return
			}
			cfg.Assets = assets
		case "population":
			cfg.GA.Population = *population
		case "generations":
			cfg.GA.Generations = *generations
		case "crossover":
			cfg.GA.CrossoverRate = *crossoverRate
		case "mutation":
			cfg.GA.MutationRate = *mutationRate
		case "elitism":
			cfg.GA.Elitism = *elitism
		case "selection":
			cfg.GA.Selection = *selection
		case "tournament-size":
			cfg.GA.TournamentSize = *tournamentSize
		case "seed":
			cfg.GA.Seed = *seed
		case "metrics-addr":
			cfg.MetricsAddr = *metricsAddr
		case "output":
			cfg.OutputFile = *outputFile
		}
	})

	return parseErr
}

// parseAssets parses an inline asset list of the form
// "VUSA:0.1:0.3,CNDX:0.15:0.4".
func parseAssets(spec string) ([]config.AssetConfig, error) {
	var assets []config.AssetConfig

	for _, entry := range strings.Split(spec, ",") {
		parts := strings.Split(strings.TrimSpace(entry), ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid asset %q, expected NAME:expected_return:risk", entry)
		}

		expectedReturn, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid expected return for asset %s: %w", parts[0], err)
		}
		risk, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid risk for asset %s: %w", parts[0], err)
		}

		assets = append(assets, config.AssetConfig{
			Name:           parts[0],
			ExpectedReturn: expectedReturn,
			Risk:           risk,
		})
	}

	return assets, nil
}

// resolveMetricsAddr picks the metrics address with flag > env > config
// file precedence. The flag case is already folded into cfg.
func resolveMetricsAddr(cfg *config.Config) string {
	if cfg.MetricsAddr != "" {
		return cfg.MetricsAddr
	}
	return os.Getenv("METRICS_ADDR")
}

func startMetricsServer(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", monitoring.NewMetricsHandler())

	go func() {
		log.Printf("📊 Serving Prometheus metrics on %s/metrics", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("metrics server stopped: %v", err)
		}
	}()
}
