package kdtree

import "fmt"

// Algorithm selects which Index implementation NewIndex builds.
type Algorithm string

const (
	AlgorithmAuto   Algorithm = "auto"
	AlgorithmKDTree Algorithm = "kdtree"
	AlgorithmBrute  Algorithm = "brute"
)

// Config controls tree construction.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Metric supplies the dimensionality and squared distance.
	// nil means Euclidean sized from the first point. Default: nil.
	Metric Metric

	// Logger receives construction and query diagnostics.
	// Default: text logger on stderr at info level.
	Logger *Logger

	// Algorithm selects the index built by NewIndex. "auto" uses
	// brute force below BruteForceThreshold points and a k-d tree otherwise.
	// New always builds a k-d tree. Default: "auto".
	Algorithm Algorithm

	// BruteForceThreshold is the point count below which "auto" picks a
	// linear scan. Must be >= 0. Default: 32.
	BruteForceThreshold int
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Algorithm:           AlgorithmAuto,
		BruteForceThreshold: 32,
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	switch cfg.Algorithm {
	case AlgorithmAuto, AlgorithmKDTree, AlgorithmBrute:
	default:
		return fmt.Errorf("%w: invalid Algorithm %q", ErrInvalidInput, cfg.Algorithm)
	}
	if cfg.BruteForceThreshold < 0 {
		return fmt.Errorf("%w: BruteForceThreshold must be >= 0, got %d", ErrInvalidInput, cfg.BruteForceThreshold)
	}
	if cfg.Metric != nil {
		return validateMetric(cfg.Metric)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
// The metric is resolved from points when none is configured.
func applyDefaults(cfg *Config, points []Point) {
	if cfg.Logger == nil {
		cfg.Logger = NewLogger(nil)
	}
	if cfg.Algorithm == "" {
		cfg.Algorithm = AlgorithmAuto
	}
	if cfg.Metric == nil {
		dim := 0
		if len(points) > 0 && points[0] != nil {
			dim = points[0].Dims()
		}
		cfg.Metric = Euclidean{Dim: dim}
	}
}
