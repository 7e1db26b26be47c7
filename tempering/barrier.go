// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tempering

import "gonum.org/v1/gonum/floats"

// AdjacentRejectionRates holds one estimated rejection rate per adjacent
// chain pair (i, i+1), i = 1..N-1, as accumulated by a run's recorders. It
// is the sufficient statistic both GlobalBarrier and schedule adaptation are
// built from.
type AdjacentRejectionRates []float64

// GlobalBarrier returns the estimated global communication barrier Λ: the
// sum of local rejection rates across every adjacent pair in a single leg
// (spec §6, "global_barrier(tempering) -> f64"). Λ is the expected number of
// full round-trips a replica needs to cross the whole schedule; it grows
// with how poorly the path covers the reference-target gap.
func GlobalBarrier(rates AdjacentRejectionRates) float64 {
	return floats.Sum(rates)
}

// GlobalBarrierVariational combines both legs' adjacent rates with the fold
// rate connecting them (spec §6, "global_barrier_variational(tempering) ->
// f64"), matching the concatenated [fixed; reverse(variational)] topology:
// the fold pair is the last entry of fixedRates-adjacent-to-variational,
// i.e. foldRate is the rejection rate between the fixed leg's last chain and
// the variational leg's last chain.
func GlobalBarrierVariational(fixedRates, variationalRates AdjacentRejectionRates, foldRate float64) float64 {
	return floats.Sum(fixedRates) + foldRate + floats.Sum(variationalRates)
}

// cumulativeBarrier returns the running sum of rates, prefixed with 0, so
// that cumulativeBarrier(rates)[i] is the barrier mass covered by the first
// i adjacent pairs.
func cumulativeBarrier(rates AdjacentRejectionRates) []float64 {
	cum := make([]float64, len(rates)+1)
	for i, r := range rates {
		cum[i+1] = cum[i] + r
	}
	return cum
}
