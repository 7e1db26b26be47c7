// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tempering

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/pt/replica"
)

func gaussianPath(refMean, targetMean float64) Path {
	return FuncPath(func(beta float64, state replica.State) float64 {
		x := state.(float64)
		mean := (1-beta)*refMean + beta*targetMean
		d := x - mean
		return -0.5 * d * d
	})
}

func TestEquallySpacedScheduleEndsAtReferenceAndTarget(t *testing.T) {
	s := EquallySpacedSchedule(5)
	require.Equal(t, 0.0, s[0])
	require.Equal(t, 1.0, s[len(s)-1])
	require.Len(t, s, 5)
}

func TestIndexerMatchesScenario(t *testing.T) {
	idx := NewIndexer(5, 5)
	leg, local := idx.Resolve(6)
	require.Equal(t, VariationalLeg, leg)
	require.Equal(t, 5, local)

	leg, local = idx.Resolve(10)
	require.Equal(t, VariationalLeg, leg)
	require.Equal(t, 1, local)

	leg, local = idx.Resolve(1)
	require.Equal(t, FixedLeg, leg)
	require.Equal(t, 1, local)
}

func TestIndexerGlobalIsResolveInverse(t *testing.T) {
	idx := NewIndexer(5, 5)
	for chain := 1; chain <= 10; chain++ {
		leg, local := idx.Resolve(chain)
		require.Equal(t, chain, idx.Global(leg, local))
	}
}

func TestConcatenatedLogPotentialsHasFoldSymmetry(t *testing.T) {
	fixed := NewNonReversiblePT(gaussianPath(0, 3), 5)
	variational := NewNonReversiblePT(gaussianPath(0, 3), 5)
	vpt := NewVariationalPT(fixed, variational)
	lp := vpt.ConcatenatedLogPotentials()
	require.Len(t, lp, 10)
	// Chain 5 (last fixed) and chain 6 (variational leg's last chain, by
	// construction of the fold) should both sit at beta closest to 1.
	require.InDelta(t, lp[4](1.5), lp[5](1.5), 1e-9)
}

func TestGlobalBarrierSumsRejectionRates(t *testing.T) {
	rates := AdjacentRejectionRates{0.1, 0.2, 0.3}
	require.InDelta(t, 0.6, GlobalBarrier(rates), 1e-9)
}

func TestGlobalBarrierVariationalIncludesFold(t *testing.T) {
	fixed := AdjacentRejectionRates{0.1, 0.2}
	variational := AdjacentRejectionRates{0.3}
	require.InDelta(t, 0.1+0.2+0.4+0.3, GlobalBarrierVariational(fixed, variational, 0.4), 1e-9)
}

func TestAdaptScheduleRedistributesTowardHighRejectionIntervals(t *testing.T) {
	previous := EquallySpacedSchedule(4)
	// Middle interval has most of the rejection mass: both interior points
	// should move into it, narrowing it, and widen the two cheap intervals
	// either side.
	rates := AdjacentRejectionRates{0.1, 0.8, 0.1}
	next := AdaptSchedule(previous, rates)
	require.Equal(t, previous[0], next[0])
	require.Equal(t, previous[len(previous)-1], next[len(next)-1])
	require.Greater(t, next[1], previous[1])
	require.Less(t, next[2], previous[2])
	require.Less(t, next[2]-next[1], previous[2]-previous[1])
}

func TestAdaptTemperingFirstRoundIsEquallySpaced(t *testing.T) {
	leg := NewNonReversiblePT(gaussianPath(0, 3), 6)
	adapted := AdaptTempering(leg, nil)
	require.Equal(t, EquallySpacedSchedule(6), adapted.Schedule)
}
