// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package swapper implements the pairwise swap decision (spec §4.5): a
// sufficient statistic computed locally per replica, and a deterministic,
// symmetric accept/reject rule two processes can both evaluate without a
// further round of communication.
package swapper

import (
	"math"

	"github.com/luxfi/pt/replica"
)

// SwapStat is the wire record exchanged between two processes proposing a
// swap: a replica's local log-ratio contribution and one uniform variate
// drawn from its own RNG. It is always exactly two float64s on the wire.
type SwapStat struct {
	LogRatio float64
	Uniform  float64
}

// PairSwapper is the capability set the driver needs to run one round (spec
// §4.5): compute a replica's sufficient statistic, decide accept/reject from
// two such statistics, and record the outcome.
type PairSwapper interface {
	// SwapStat computes replica's contribution toward a proposed swap with
	// partnerChain, drawing exactly one uniform variate from replica's RNG.
	SwapStat(r *replica.Replica, partnerChain int) SwapStat

	// SwapDecision is a deterministic, symmetric pure function: it must
	// return the same result for (chain1, stat1, chain2, stat2) as for
	// (chain2, stat2, chain1, stat1).
	SwapDecision(chain1 int, stat1 SwapStat, chain2 int, stat2 SwapStat) bool

	// RecordSwapStats records the outcome of one pair, called at most once
	// per unordered pair per round (the driver only calls it on the side
	// where chain1 < chain2).
	RecordSwapStats(r *replica.Replica, chain1 int, stat1 SwapStat, chain2 int, stat2 SwapStat, accepted bool)
}

// DefaultSwapper is the log-potential-driven swapper: swap_stat uses the
// tempering's per-chain log-potential evaluated at the replica's own state,
// swap_decision is the standard Metropolis acceptance for an exchange move.
type DefaultSwapper struct {
	// LogPotential returns logπ_chain(state) for the given chain and state.
	LogPotential func(chain int, state replica.State) float64
	// NumericDegeneracies counts NaN log-ratios treated as rejections
	// (spec §7); nil is fine, in which case degeneracies are silently
	// treated as rejections without being counted.
	NumericDegeneracies interface{ Inc() }
}

// NewDefaultSwapper builds a DefaultSwapper over logPotential, with no
// degeneracy counter.
func NewDefaultSwapper(logPotential func(chain int, state replica.State) float64) *DefaultSwapper {
	return &DefaultSwapper{LogPotential: logPotential}
}

func (s *DefaultSwapper) SwapStat(r *replica.Replica, partnerChain int) SwapStat {
	logRatio := s.LogPotential(partnerChain, r.State) - s.LogPotential(r.Chain, r.State)
	return SwapStat{LogRatio: logRatio, Uniform: r.RNG.Float64()}
}

func (s *DefaultSwapper) SwapDecision(chain1 int, stat1 SwapStat, chain2 int, stat2 SwapStat) bool {
	sum := stat1.LogRatio + stat2.LogRatio
	if math.IsNaN(sum) {
		if s.NumericDegeneracies != nil {
			s.NumericDegeneracies.Inc()
		}
		return false
	}
	acceptance := math.Min(1, math.Exp(sum))
	if chain1 < chain2 {
		return stat1.Uniform < acceptance
	}
	return stat2.Uniform < acceptance
}

func (s *DefaultSwapper) RecordSwapStats(r *replica.Replica, chain1 int, stat1 SwapStat, chain2 int, stat2 SwapStat, accepted bool) {
	if r.Recorder == nil {
		return
	}
	r.Recorder.RecordSwapStat(0, chain1, chain2, stat1.LogRatio+stat2.LogRatio, accepted)
}

// TestSwapper is a constant-probability test double (spec §4.5, "test
// constant-probability"): every proposed swap is accepted with probability
// pr, decided the same tie-break way as DefaultSwapper so bit-identity
// across process counts still holds.
type TestSwapper struct {
	Pr float64
}

// NewTestSwapper builds a TestSwapper that accepts every proposal with
// probability pr.
func NewTestSwapper(pr float64) *TestSwapper {
	return &TestSwapper{Pr: pr}
}

func (s *TestSwapper) SwapStat(r *replica.Replica, partnerChain int) SwapStat {
	return SwapStat{LogRatio: 0, Uniform: r.RNG.Float64()}
}

func (s *TestSwapper) SwapDecision(chain1 int, stat1 SwapStat, chain2 int, stat2 SwapStat) bool {
	if chain1 < chain2 {
		return stat1.Uniform < s.Pr
	}
	return stat2.Uniform < s.Pr
}

func (s *TestSwapper) RecordSwapStats(r *replica.Replica, chain1 int, stat1 SwapStat, chain2 int, stat2 SwapStat, accepted bool) {
	if r.Recorder == nil {
		return
	}
	r.Recorder.RecordSwapStat(0, chain1, chain2, 0, accepted)
}
