package genetic

import "github.com/sirupsen/logrus"

// Config is the Engine's tunable state: population size, stop conditions,
// elitism, mutation chance, the RNG seed and concurrency fan-out.
type Config struct {
	PopulationSize  int
	MaxEvolutions   int
	AcceptableScore float64
	EliteFraction   float64
	MutationChance  float64
	Seed            int64
	Logger          *logrus.Logger
	Parallelism     int
}

// Option mutates a Config. It mirrors the functional-options idiom the
// scheduler library used for its own Config type.
type Option func(*Config)

// WithPopulationSize sets how many individuals live in each generation.
func WithPopulationSize(n int) Option {
	return func(c *Config) { c.PopulationSize = n }
}

// WithMaxEvolutions caps the number of generations the engine will produce
// before returning its best individual regardless of fitness.
func WithMaxEvolutions(n int) Option {
	return func(c *Config) { c.MaxEvolutions = n }
}

// WithAcceptableScore sets the fitness (0-100, higher is better) at which
// the engine stops early.
func WithAcceptableScore(score float64) Option {
	return func(c *Config) { c.AcceptableScore = score }
}

// WithEliteFraction sets the fraction of each generation copied forward
// unchanged; at least one individual is always elite regardless of this
// setting.
func WithEliteFraction(frac float64) Option {
	return func(c *Config) { c.EliteFraction = frac }
}

// WithMutationChance sets the fixed per-child chance of mutation applied
// once per evolution, not per gene.
func WithMutationChance(p float64) Option {
	return func(c *Config) { c.MutationChance = p }
}

// WithSeed seeds the run's RNG master. A zero seed (the default) seeds from
// the wall clock.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Seed = seed }
}

// WithLogger overrides the logger used for per-generation progress.
func WithLogger(l *logrus.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithParallelism caps how many population-init or crossover goroutines run
// concurrently. Zero (the default) uses runtime.GOMAXPROCS(0).
func WithParallelism(n int) Option {
	return func(c *Config) { c.Parallelism = n }
}

func defaultConfig() Config {
	return Config{
		PopulationSize:  50,
		MaxEvolutions:   100,
		AcceptableScore: 95,
		EliteFraction:   0.10,
		MutationChance:  0.01,
		Logger:          logrus.StandardLogger(),
	}
}

// NewConfig builds a Config from defaults plus opts, applied in order.
func NewConfig(opts ...Option) Config {
	c := defaultConfig()
	for _, o := range opts {
		o(&c)
	}
	return c
}
