package kdtree

// selectAlgorithm resolves AlgorithmAuto into a concrete choice based on the
// number of points.
func selectAlgorithm(cfg Config, n int) Algorithm {
	if cfg.Algorithm != AlgorithmAuto {
		return cfg.Algorithm
	}
	if n < cfg.BruteForceThreshold {
		return AlgorithmBrute
	}
	return AlgorithmKDTree
}

// NewIndex builds the SpatialIndex selected by cfg.Algorithm. Input is
// validated the same way for both implementations, and on error the returned
// index is empty rather than nil.
func NewIndex(points []Point, cfg Config) (SpatialIndex, error) {
	applyDefaults(&cfg, points)
	if err := validateConfig(&cfg); err != nil {
		cfg.Logger.LogBuild(len(points), 0, err)
		return newBruteForce(nil, cfg), err
	}

	if selectAlgorithm(cfg, len(points)) == AlgorithmKDTree {
		return New(points, cfg)
	}

	if err := validatePoints(points, cfg.Metric.Dims()); err != nil {
		cfg.Logger.LogBuild(len(points), 0, err)
		return newBruteForce(nil, cfg), err
	}
	return newBruteForce(points, cfg), nil
}
