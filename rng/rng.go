// Package rng builds the random generators handed to randomized transforms.
//
// Every stream is a PCG generator from math/rand/v2. Streams derived from the
// same seed and key are identical across runs and goroutines, so an instance
// is augmented the same way no matter which worker fetches it.
package rng

import (
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// workerSalt separates worker streams from instance streams.
const workerSalt = 0x9e3779b97f4a7c15

// New returns a generator for seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

// ForInstance returns the stream for the instance with the given ID.
func ForInstance(seed uint64, id string) *rand.Rand {
	return rand.New(rand.NewPCG(seed, xxhash.Sum64String(id)))
}

// ForWorker returns an independent stream for a loader worker.
func ForWorker(seed uint64, worker int) *rand.Rand {
	return rand.New(rand.NewPCG(seed, uint64(worker)^workerSalt))
}
