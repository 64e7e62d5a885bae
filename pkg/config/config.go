package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ducminhle1904/portfolio-optimizer/internal/portfolio"
	"github.com/ducminhle1904/portfolio-optimizer/pkg/optimization"
)

// Config is the full input for one optimization run: the asset universe,
// the GA parameters, and the optional output targets.
type Config struct {
	Assets      []AssetConfig `json:"assets"`
	GA          GAConfig      `json:"ga"`
	MetricsAddr string        `json:"metrics_addr,omitempty"`
	OutputFile  string        `json:"output_file,omitempty"`
}

// AssetConfig is one (expected_return, risk) pair as supplied by the user.
type AssetConfig struct {
	Name           string  `json:"name"`
	ExpectedReturn float64 `json:"expected_return"`
	Risk           float64 `json:"risk"`
}

// GAConfig holds the genetic algorithm parameters.
type GAConfig struct {
	Population     int     `json:"population"`
	Generations    int     `json:"generations"`
	CrossoverRate  float64 `json:"crossover_rate"`
	MutationRate   float64 `json:"mutation_rate"`
	Elitism        int     `json:"elitism"`
	Selection      string  `json:"selection"`
	TournamentSize int     `json:"tournament_size"`
	Seed           int64   `json:"seed,omitempty"`
	MaxWorkers     int     `json:"max_workers,omitempty"`
}

// NewDefaultConfig returns the stock configuration: the five-ETF universe
// and the default GA parameters.
func NewDefaultConfig() *Config {
	params := optimization.DefaultParams()
	return &Config{
		Assets: []AssetConfig{
			{Name: "VUSA", ExpectedReturn: 0.1, Risk: 0.3},
			{Name: "CNDX", ExpectedReturn: 0.15, Risk: 0.4},
			{Name: "AIQ", ExpectedReturn: 0.12, Risk: 0.25},
			{Name: "VanEckDefense", ExpectedReturn: 0.05, Risk: 0.5},
			{Name: "EIMI", ExpectedReturn: 0.2, Risk: 0.45},
		},
		GA: GAConfig{
			Population:     params.PopulationSize,
			Generations:    params.Generations,
			CrossoverRate:  params.CrossoverRate,
			MutationRate:   params.MutationRate,
			Elitism:        params.EliteCount,
			Selection:      string(params.Selection),
			TournamentSize: params.TournamentSize,
			MaxWorkers:     params.MaxWorkers,
		},
	}
}

// LoadConfig builds a configuration from defaults overlaid with the given
// JSON file. An empty path loads pure defaults. The result is validated.
func LoadConfig(configFile string) (*Config, error) {
	cfg := NewDefaultConfig()

	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("could not parse config file %s: %w", configFile, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Universe converts the configured assets into the domain universe.
func (c *Config) Universe() portfolio.Universe {
	universe := make(portfolio.Universe, len(c.Assets))
	for i, a := range c.Assets {
		universe[i] = portfolio.Asset{
			Name:           a.Name,
			ExpectedReturn: a.ExpectedReturn,
			Risk:           a.Risk,
		}
	}
	return universe
}

// Params converts the GA section into engine parameters.
func (c *Config) Params() optimization.Params {
	return optimization.Params{
		PopulationSize: c.GA.Population,
		Generations:    c.GA.Generations,
		CrossoverRate:  c.GA.CrossoverRate,
		MutationRate:   c.GA.MutationRate,
		EliteCount:     c.GA.Elitism,
		Selection:      optimization.SelectionMethod(c.GA.Selection),
		TournamentSize: c.GA.TournamentSize,
		MaxWorkers:     c.GA.MaxWorkers,
	}
}
