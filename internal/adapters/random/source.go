package random

import (
	"math/rand/v2"
	"sync"

	"github.com/renato0307/appdeck/internal/ports"
)

// Source implements ports.RandomSource on math/rand/v2
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var _ ports.RandomSource = (*Source)(nil)

// NewSource returns a source seeded from the runtime
func NewSource() *Source {
	return &Source{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededSource returns a deterministic source, used by --seed
func NewSeededSource(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Float64 returns a value in [0, 1)
func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// Fixed always returns the same draws in order, cycling when exhausted.
// Handy to force simulation outcomes.
type Fixed struct {
	mu    sync.Mutex
	draws []float64
	next  int
}

var _ ports.RandomSource = (*Fixed)(nil)

// NewFixed creates a Fixed source; with no draws it always returns 0.5
func NewFixed(draws ...float64) *Fixed {
	if len(draws) == 0 {
		draws = []float64{0.5}
	}
	return &Fixed{draws: draws}
}

// Float64 returns the next configured draw
func (f *Fixed) Float64() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	v := f.draws[f.next%len(f.draws)]
	f.next++
	return v
}
