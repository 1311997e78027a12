package rng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/deep1010/rng"
)

func draws(n int, f func() uint64) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = f()
	}

	return out
}

func TestNewDeterministic(t *testing.T) {
	a, b := rng.New(7), rng.New(7)
	assert.Equal(t, draws(8, a.Uint64), draws(8, b.Uint64))
	assert.NotEqual(t, draws(8, rng.New(7).Uint64), draws(8, rng.New(8).Uint64))
}

func TestForInstance(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		same bool
	}{
		{"same id", "trial-001", "trial-001", true},
		{"different id", "trial-001", "trial-002", false},
		{"empty id", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := draws(4, rng.ForInstance(1, tt.a).Uint64)
			y := draws(4, rng.ForInstance(1, tt.b).Uint64)
			if tt.same {
				assert.Equal(t, x, y)
			} else {
				assert.NotEqual(t, x, y)
			}
		})
	}
	assert.NotEqual(t,
		draws(4, rng.ForInstance(1, "trial-001").Uint64),
		draws(4, rng.ForInstance(2, "trial-001").Uint64))
}

func TestForWorker(t *testing.T) {
	assert.Equal(t, draws(4, rng.ForWorker(3, 1).Uint64), draws(4, rng.ForWorker(3, 1).Uint64))
	assert.NotEqual(t, draws(4, rng.ForWorker(3, 0).Uint64), draws(4, rng.ForWorker(3, 1).Uint64))
}

func BenchmarkForInstance(b *testing.B) {
	for i := 0; i < b.N; i++ {
		rng.ForInstance(42, "sub-01/run-03/epoch-0117").Float64()
	}
}
