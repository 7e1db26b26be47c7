// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package swapper

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/pt/replica"
)

func TestDefaultSwapperDecisionIsSymmetric(t *testing.T) {
	s := NewDefaultSwapper(func(chain int, state replica.State) float64 { return 0 })
	stat1 := SwapStat{LogRatio: 0.3, Uniform: 0.4}
	stat2 := SwapStat{LogRatio: -0.1, Uniform: 0.9}
	require.Equal(t,
		s.SwapDecision(1, stat1, 2, stat2),
		s.SwapDecision(2, stat2, 1, stat1),
	)
}

func TestDefaultSwapperTreatsNaNAsRejection(t *testing.T) {
	s := NewDefaultSwapper(func(chain int, state replica.State) float64 { return 0 })
	stat1 := SwapStat{LogRatio: math.NaN(), Uniform: 0}
	stat2 := SwapStat{LogRatio: 0, Uniform: 0}
	require.False(t, s.SwapDecision(1, stat1, 2, stat2))
}

func TestTestSwapperAlwaysRejectsAtZero(t *testing.T) {
	s := NewTestSwapper(0)
	r := replica.New(1, nil, 1, nil)
	for i := 0; i < 20; i++ {
		stat1 := s.SwapStat(r, 2)
		stat2 := SwapStat{Uniform: r.RNG.Float64()}
		require.False(t, s.SwapDecision(1, stat1, 2, stat2))
	}
}

func TestTestSwapperAlwaysAcceptsAtOne(t *testing.T) {
	s := NewTestSwapper(1)
	r := replica.New(1, nil, 1, nil)
	for i := 0; i < 20; i++ {
		stat1 := s.SwapStat(r, 2)
		stat2 := SwapStat{Uniform: r.RNG.Float64()}
		require.True(t, s.SwapDecision(1, stat1, 2, stat2))
	}
}

func TestSwapStatWireRoundTrips(t *testing.T) {
	s := SwapStat{LogRatio: 1.25, Uniform: 0.75}
	require.Equal(t, s, DecodeSwapStat(EncodeSwapStat(s)))
}
