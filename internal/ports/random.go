package ports

// RandomSource draws the outcome of simulated test and build runs
type RandomSource interface {
	// Float64 returns a value in [0.0, 1.0)
	Float64() float64
}
