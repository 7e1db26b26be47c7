// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pt

import "github.com/luxfi/pt/tempering"

// AdjacentRejectionRates is tempering.AdjacentRejectionRates, re-exported so
// callers of RateRecorder.Rates never need to import tempering directly.
type AdjacentRejectionRates = tempering.AdjacentRejectionRates

// GlobalBarrier returns the estimated global communication barrier for a
// single, non-variational tempering of n chains, from rec's accumulated
// swap statistics (spec §6, "global_barrier(tempering) -> f64").
func GlobalBarrier(rec *RateRecorder, n int) float64 {
	return tempering.GlobalBarrier(rec.Rates(n))
}

// GlobalBarrierVariational returns the estimated global communication
// barrier for a variational tempering with nFixed fixed chains and nVar
// variational chains (global chain indices 1..nFixed+nVar, per the
// [fixed; reverse(variational)] concatenation), from rec's accumulated swap
// statistics (spec §6, "global_barrier_variational(tempering) -> f64"). The
// fold rate is the adjacent pair straddling the two legs, chain nFixed to
// chain nFixed+1.
func GlobalBarrierVariational(rec *RateRecorder, nFixed, nVar int) float64 {
	rates := rec.Rates(nFixed + nVar)
	fixed := rates[:nFixed-1]
	fold := rates[nFixed-1]
	variational := rates[nFixed:]
	return tempering.GlobalBarrierVariational(fixed, variational, fold)
}
