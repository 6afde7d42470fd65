// Package genetic runs the genetic-algorithm search the scheduling and
// grouping problems share: elitism, parent selection from the fitter half
// of the population, parallel crossover, and a fixed per-evolution mutation
// chance, backed by github.com/MaxHalford/eaopt's Genome contract the way
// the original meeting-scheduler library used it.
//
// Both problems (schedule search and grouping search) plug into the same
// Engine by implementing Genome; only the genome's own Clone/Crossover/
// Mutate/Evaluate differ between ScheduleGenome and GroupingGenome.
package genetic

import "github.com/MaxHalford/eaopt"

// Genome is the chromosome contract an Engine evolves. It is exactly
// eaopt.Genome: Evaluate returns a cost where lower is better, matching
// eaopt's convention, so Engine turns it into a 0-100 fitness internally as
// 100 minus the cost.
type Genome = eaopt.Genome
