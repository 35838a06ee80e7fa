// Copyright 2025 froog Authors. SPDX-License-Identifier: Apache-2.0

package mat

import "math/rand/v2"

// NewRandom returns a rows×cols matrix with elements drawn uniformly from
// [lo, hi) using rng. The fill order is row-major, so a fixed seed always
// produces the same matrix.
func NewRandom(rows, cols int, lo, hi float64, rng *rand.Rand) *Dense {
	m := New(rows, cols)
	span := hi - lo
	for i := range m.data {
		m.data[i] = lo + span*rng.Float64()
	}
	return m
}

// NewSeededRand returns a deterministic PCG source for seed.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
