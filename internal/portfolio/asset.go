package portfolio

// Asset describes a single investable instrument by its long-run
// expected return and risk, both expressed as fractions in [0, 1].
// Assets are built once from configuration and never mutated.
type Asset struct {
	Name           string  `json:"name"`
	ExpectedReturn float64 `json:"expected_return"`
	Risk           float64 `json:"risk"`
}

// Universe is the ordered set of assets an allocation is spread across.
type Universe []Asset

// Size returns the number of assets in the universe.
func (u Universe) Size() int {
	return len(u)
}

// Names returns the asset names in universe order.
func (u Universe) Names() []string {
	names := make([]string, len(u))
	for i, a := range u {
		names[i] = a.Name
	}
	return names
}
