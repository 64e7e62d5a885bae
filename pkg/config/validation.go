package config

import "fmt"

// Validate rejects a misconfigured run before the optimizer is built,
// naming the failing parameter. GA parameter ranges are delegated to the
// engine's own validation so config and engine cannot disagree.
func (c *Config) Validate() error {
	if len(c.Assets) < 2 {
		return fmt.Errorf("at least 2 assets are required, got: %d", len(c.Assets))
	}

	seen := make(map[string]bool, len(c.Assets))
	for i, a := range c.Assets {
		if a.Name == "" {
			return fmt.Errorf("asset %d has an empty name", i)
		}
		if seen[a.Name] {
			return fmt.Errorf("duplicate asset name: %s", a.Name)
		}
		seen[a.Name] = true

		if a.ExpectedReturn < 0 || a.ExpectedReturn > 1 {
			return fmt.Errorf("asset %s: expected return must be between 0 and 1, got: %.4f",
				a.Name, a.ExpectedReturn)
		}
		if a.Risk < 0 || a.Risk > 1 {
			return fmt.Errorf("asset %s: risk must be between 0 and 1, got: %.4f", a.Name, a.Risk)
		}
	}

	return c.Params().Validate(len(c.Assets))
}
