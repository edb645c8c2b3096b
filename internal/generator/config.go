package generator

// Config drives the synthetic data generator.
type Config struct {
	NumBanks       int
	NumDonors      int
	InactiveChance float64
	EmptyChance    float64
	MaxUnits       int
	Seed           int64
}

// DefaultConfig returns baseline settings producing a usable demo dataset.
func DefaultConfig() Config {
	return Config{
		NumBanks:       200,
		NumDonors:      1000,
		InactiveChance: 0.1,
		EmptyChance:    0.2,
		MaxUnits:       40,
		Seed:           42,
	}
}
