// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/pt/ptmetrics"
	"github.com/luxfi/pt/replica"
	"github.com/luxfi/pt/replicas"
	"github.com/luxfi/pt/swapgraph"
	"github.com/luxfi/pt/swapper"
)

func TestDriverRunRoundCountsRoundsAndDegeneracies(t *testing.T) {
	metrics, err := ptmetrics.NewSwapMetrics(nil)
	require.NoError(t, err)
	d := NewDriver(nil, metrics)

	// A log-potential that always returns NaN forces every decision into
	// the NumericDegeneracy path (spec §7): rejected, but counted.
	sw := d.NewDefaultSwapper(func(chain int, state replica.State) float64 { return math.NaN() })

	store, err := replicas.NewStore(newIdentityReplicas(4))
	require.NoError(t, err)

	require.NoError(t, d.RunRound(1, store, sw, swapgraph.DEO(1, 4)))
	require.Equal(t, []int{1, 2, 3, 4}, chainsMap(store), "NaN log-ratio must be rejected, never accepted")
	require.Equal(t, int64(1), metrics.Rounds.Read())
	require.Equal(t, int64(2), metrics.NumericDegeneracies.Read(), "both pairs (1,2) and (3,4) hit the NaN path")
}

// brokenGraph pairs every chain with chain+1 without the reciprocal
// assignment, violating the involution property on purpose.
type brokenGraph struct{ n int }

func (g brokenGraph) PartnerChain(chain int) int {
	if chain < g.n {
		return chain + 1
	}
	return chain
}

func TestDriverRunRoundLogsAndPropagatesInvolutionViolation(t *testing.T) {
	d := NewDriver(nil, nil)
	store, err := replicas.NewStore(newIdentityReplicas(4))
	require.NoError(t, err)

	err = d.RunRound(1, store, swapper.NewTestSwapper(1), brokenGraph{n: 4})
	require.ErrorIs(t, err, ErrInvolutionViolation)
}
