package genetic

import (
	"context"
	"math"
	"math/rand"
	"runtime"
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/kiwicayne/studentscheduling/xrand"
	"github.com/kiwicayne/studentscheduling/xstat"
)

// individual pairs a genome with its cached cost (lower is better, per
// eaopt's Evaluate convention).
type individual[G Genome] struct {
	genome G
	cost   float64
}

func (i individual[G]) fitness() float64 { return 100 - i.cost }

// Stats is a snapshot of a completed run, for callers that want to log
// convergence behavior.
type Stats struct {
	Generations   int
	BestFitness   float64
	MeanFitness   float64
	StdDevFitness float64
}

// Engine drives the genetic search state machine: elitism, parent selection
// uniformly from the fitter half of the population, parallel crossover
// fanned out across goroutines, a fixed per-child mutation chance, and a
// generation-count-or-acceptable-score stop condition.
type Engine[G Genome] struct {
	cfg       Config
	newGenome func(rng *rand.Rand) G
}

// NewEngine builds an Engine that evolves genomes produced by newGenome.
func NewEngine[G Genome](newGenome func(rng *rand.Rand) G, cfg Config) *Engine[G] {
	return &Engine[G]{cfg: cfg, newGenome: newGenome}
}

// Run evolves a population until ctx is done, the generation count hits
// MaxEvolutions, or the best individual's fitness reaches AcceptableScore,
// then returns the best genome found.
func (e *Engine[G]) Run(ctx context.Context) (G, Stats, error) {
	master := xrand.NewMaster(e.cfg.Seed)

	pop, err := e.initPopulation(master)
	if err != nil {
		var zero G
		return zero, Stats{}, err
	}
	sortDescending(pop)

	elite := e.eliteSize()
	gen := 0
	for gen < e.cfg.MaxEvolutions && pop[0].fitness() < e.cfg.AcceptableScore && ctx.Err() == nil {
		next, err := e.nextGeneration(master, pop, elite)
		if err != nil {
			var zero G
			return zero, Stats{}, err
		}
		pop = next
		sortDescending(pop)
		gen++

		e.cfg.Logger.WithFields(logrus.Fields{
			"generation":   gen,
			"best_fitness": pop[0].fitness(),
		}).Debug("genetic engine completed generation")
	}

	stats := e.computeStats(gen, pop)
	return pop[0].genome, stats, nil
}

func (e *Engine[G]) initPopulation(master *xrand.Master) ([]individual[G], error) {
	n := e.cfg.PopulationSize
	pop := make([]individual[G], n)

	g, _ := errgroup.WithContext(context.Background())
	sem := make(chan struct{}, e.parallelism())
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			sem <- struct{}{}
			defer func() { <-sem }()

			rng := master.Worker()
			genome := e.newGenome(rng)
			cost, err := genome.Evaluate()
			if err != nil {
				return err
			}
			pop[i] = individual[G]{genome: genome, cost: cost}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pop, nil
}

func (e *Engine[G]) nextGeneration(master *xrand.Master, pop []individual[G], eliteSize int) ([]individual[G], error) {
	next := make([]individual[G], 0, len(pop))
	next = append(next, pop[:eliteSize]...)

	remaining := len(pop) - eliteSize
	numCrossovers := (remaining + 1) / 2
	topHalf := topHalfSize(len(pop))

	type pairResult struct {
		a, b individual[G]
	}
	results := make([]pairResult, numCrossovers)

	g, _ := errgroup.WithContext(context.Background())
	sem := make(chan struct{}, e.parallelism())
	for i := 0; i < numCrossovers; i++ {
		i := i
		g.Go(func() error {
			sem <- struct{}{}
			defer func() { <-sem }()

			rng := master.Worker()
			p1, p2 := selectParents(rng, pop, topHalf)

			childA := p1.genome.Clone().(G)
			childB := p2.genome.Clone().(G)
			childA.Crossover(p2.genome, rng)
			childB.Crossover(p1.genome, rng)

			if rng.Float64() < e.cfg.MutationChance {
				childA.Mutate(rng)
			}
			if rng.Float64() < e.cfg.MutationChance {
				childB.Mutate(rng)
			}

			costA, err := childA.Evaluate()
			if err != nil {
				return err
			}
			costB, err := childB.Evaluate()
			if err != nil {
				return err
			}
			results[i] = pairResult{
				a: individual[G]{genome: childA, cost: costA},
				b: individual[G]{genome: childB, cost: costB},
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, r := range results {
		next = append(next, r.a, r.b)
	}
	if len(next) > len(pop) {
		next = next[:len(pop)]
	}
	return next, nil
}

func selectParents[G Genome](rng *rand.Rand, pop []individual[G], topHalf int) (individual[G], individual[G]) {
	if topHalf < 1 {
		topHalf = 1
	}
	i := xrand.Intn(rng, 0, topHalf-1)
	j := xrand.Intn(rng, 0, topHalf-1)
	for j == i && topHalf > 1 {
		j = xrand.Intn(rng, 0, topHalf-1)
	}
	return pop[i], pop[j]
}

func topHalfSize(n int) int {
	half := (n + 1) / 2
	if half < 2 {
		if n < 2 {
			return n
		}
		return 2
	}
	return half
}

func (e *Engine[G]) eliteSize() int {
	n := int(math.Ceil(float64(e.cfg.PopulationSize) * e.cfg.EliteFraction))
	if n < 1 {
		n = 1
	}
	if n > e.cfg.PopulationSize {
		n = e.cfg.PopulationSize
	}
	return n
}

func (e *Engine[G]) parallelism() int {
	if e.cfg.Parallelism > 0 {
		return e.cfg.Parallelism
	}
	return runtime.GOMAXPROCS(0)
}

func (e *Engine[G]) computeStats(gen int, pop []individual[G]) Stats {
	fits := make([]float64, len(pop))
	for i, ind := range pop {
		fits[i] = ind.fitness()
	}
	return Stats{
		Generations:   gen,
		BestFitness:   pop[0].fitness(),
		MeanFitness:   xstat.Mean(fits),
		StdDevFitness: xstat.PopStdDev(fits),
	}
}

func sortDescending[G Genome](pop []individual[G]) {
	sort.SliceStable(pop, func(i, j int) bool { return pop[i].fitness() > pop[j].fitness() })
}
