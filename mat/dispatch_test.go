// Copyright 2025 froog Authors. SPDX-License-Identifier: Apache-2.0

package mat

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParallelism(t *testing.T) {
	cases := []struct {
		name       string
		noParallel string
		workers    string
		want       int
	}{
		{"defaults", "", "", runtime.GOMAXPROCS(0)},
		{"workers override", "", "3", 3},
		{"bad workers ignored", "", "zero", runtime.GOMAXPROCS(0)},
		{"negative workers ignored", "", "-2", runtime.GOMAXPROCS(0)},
		{"no parallel wins", "1", "8", 1},
		{"no parallel any value", "yes", "", 1},
		{"no parallel false", "false", "5", 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(EnvNoParallel, tc.noParallel)
			t.Setenv(EnvWorkers, tc.workers)
			assert.Equal(t, tc.want, Parallelism())
		})
	}
}

func TestFeatureString(t *testing.T) {
	s := FeatureString()
	assert.NotEmpty(t, s)
	if len(Features()) == 0 {
		assert.Equal(t, "scalar", s)
	} else {
		assert.Equal(t, strings.Join(Features(), ","), s)
	}
}
