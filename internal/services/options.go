package services

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/renato0307/appdeck/internal/domain"
	"github.com/renato0307/appdeck/internal/ports"
)

// IDGenerator returns a fresh identifier carrying the given prefix
type IDGenerator func(prefix string) string

// Option configures the services created by this package
type Option func(*options)

type options struct {
	defaultTestCommand string
	newID              IDGenerator
	now                func() time.Time
	random             ports.RandomSource
	seed               bool
}

func defaultOptions() options {
	return options{
		defaultTestCommand: domain.DefaultTestCommand,
		newID:              UUIDGenerator,
		now:                func() time.Time { return time.Now().UTC() },
		random:             globalRandom{},
		seed:               true,
	}
}

// globalRandom draws from the math/rand/v2 top-level source
type globalRandom struct{}

func (globalRandom) Float64() float64 { return rand.Float64() }

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// UUIDGenerator builds ids like "t-3f0c..." from a random uuid
func UUIDGenerator(prefix string) string {
	id := uuid.New().String()
	if prefix == "" {
		return id
	}
	return prefix + id
}

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator overrides id generation
func WithIDGenerator(gen IDGenerator) Option {
	return func(o *options) { o.newID = gen }
}

// WithRandomSource overrides the source used by the test and build simulations
func WithRandomSource(r ports.RandomSource) Option {
	return func(o *options) { o.random = r }
}

// WithDefaultTestCommand sets the test command given to new apps
func WithDefaultTestCommand(cmd string) Option {
	return func(o *options) {
		if cmd = strings.TrimSpace(cmd); cmd != "" {
			o.defaultTestCommand = cmd
		}
	}
}

// WithSeedData controls whether missing collections fall back to demo data
func WithSeedData(enabled bool) Option {
	return func(o *options) { o.seed = enabled }
}
