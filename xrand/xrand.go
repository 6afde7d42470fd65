// Package xrand provides the thread-local random-number utilities the
// genetic engine and constructive enrollers build on: a master source that
// hands out independent per-worker generators, inclusive-bound integers, and
// a Fisher-Yates shuffle.
package xrand

import (
	"math/rand"
	"sync"
	"time"
)

// Master seeds independent *rand.Rand generators for concurrent workers.
// Sharing a single *rand.Rand across goroutines both serializes callers and
// corrupts reproducibility, so every worker (population member, crossover
// task) must draw its own generator from here instead of touching a shared
// instance directly.
type Master struct {
	mu  sync.Mutex
	src *rand.Rand
}

// NewMaster creates a Master seeded with seed. A seed of 0 seeds from the
// wall clock, matching the teacher's non-deterministic default while still
// letting callers inject a seed for reproducible tests.
func NewMaster(seed int64) *Master {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Master{src: rand.New(rand.NewSource(seed))}
}

// Worker returns a new *rand.Rand seeded independently from m. The returned
// generator is safe to use from a single goroutine without further locking.
func (m *Master) Worker() *rand.Rand {
	m.mu.Lock()
	seed := m.src.Int63()
	m.mu.Unlock()
	return rand.New(rand.NewSource(seed))
}

// Intn returns a uniform random integer in [lo, hi], inclusive on both ends.
func Intn(rng *rand.Rand, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// Shuffle randomizes the order of s in place.
func Shuffle[T any](rng *rand.Rand, s []T) {
	rng.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}
