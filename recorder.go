// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pt

import "sync"

// RateRecorder is a replica.Recorder that accumulates accept/reject counts
// per adjacent chain pair across a run, the sufficient statistic
// AdjacentRejectionRates (and therefore GlobalBarrier/AdaptTempering) are
// built from. One RateRecorder is shared by every replica.Replica in a run;
// RecordSwapStat is only ever called from the lower-chain side of a pair, so
// there is exactly one observation per round for each adjacent pair that
// round's swap graph proposes.
type RateRecorder struct {
	mu       sync.Mutex
	rejected map[int]int64
	total    map[int]int64
}

// NewRateRecorder builds an empty RateRecorder.
func NewRateRecorder() *RateRecorder {
	return &RateRecorder{rejected: make(map[int]int64), total: make(map[int]int64)}
}

// RecordSwapStat implements replica.Recorder. It only accumulates counts for
// adjacent pairs (partnerChain == chain+1 or chain-1); chain graphs that
// never propose a non-adjacent pair (DEO, VariationalDEO) always satisfy
// this, but a custom Graph that did would simply have its count silently
// skipped here rather than corrupting an unrelated pair's rate.
func (r *RateRecorder) RecordSwapStat(round int, chain, partnerChain int, logRatio float64, accepted bool) {
	lo := chain
	if partnerChain < lo {
		lo = partnerChain
	}
	hi := chain + partnerChain - lo
	if hi != lo+1 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.total[lo]++
	if !accepted {
		r.rejected[lo]++
	}
}

// Rates returns the estimated rejection rate for every adjacent pair (i,
// i+1), i = 1..n-1, as observed so far. Pairs with no observations yet
// report a rate of 0.
func (r *RateRecorder) Rates(n int) AdjacentRejectionRates {
	r.mu.Lock()
	defer r.mu.Unlock()

	rates := make(AdjacentRejectionRates, n-1)
	for i := range rates {
		lo := i + 1
		total := r.total[lo]
		if total == 0 {
			continue
		}
		rates[i] = float64(r.rejected[lo]) / float64(total)
	}
	return rates
}
