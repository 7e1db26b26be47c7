// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pt

import (
	"context"
	"fmt"

	"github.com/luxfi/pt/config"
	"github.com/luxfi/pt/entangle"
	"github.com/luxfi/pt/replica"
	"github.com/luxfi/pt/replicas"
	"github.com/luxfi/pt/swapgraph"
	"github.com/luxfi/pt/swapper"
	"github.com/luxfi/pt/utils/rng"
)

// StatEntangler is the dedicated Entangler the distributed round's step 4
// uses to exchange SwapStats by global storage index (spec §4.7).
type StatEntangler = entangle.Entangler[swapper.SwapStat]

// NewStatEntangler builds the SwapStat entangler for n chains over comm.
func NewStatEntangler(comm entangle.Communicator, n int) *StatEntangler {
	return entangle.New[swapper.SwapStat](comm, n, swapper.RecordSize, swapper.EncodeSwapStat, swapper.DecodeSwapStat)
}

// referenceSwapStat recomputes the SwapStat a correct single-process run
// would have produced for r at round, as the primary correctness check
// (spec §7) the checked round performs. A replica's RNG is seeded solely
// from (masterSeed, r.ID) and advanced exactly once per round regardless of
// which chain the replica carries (spec §3), so replaying that trajectory
// from scratch needs nothing beyond the replica's own id and the round
// number: fresh-seed, discard round-1 draws, then draw once. r.State and the
// swapper's log-potential are pure and untouched by process placement, so
// only the RNG needs reconstructing, not the rest of r.
func referenceSwapStat(sw swapper.PairSwapper, r *replica.Replica, masterSeed int64, round int, partnerChain int) swapper.SwapStat {
	src := rng.NewReplicaSource(masterSeed, r.ID)
	for i := 1; i < round; i++ {
		src.Float64()
	}
	shadow := &replica.Replica{ID: r.ID, Chain: r.Chain, State: r.State, RNG: src}
	return sw.SwapStat(shadow, partnerChain)
}

// SwapRoundDistributed runs one round of the swap core across P processes
// (spec §4.7): resolve each local replica's partner's physical location
// (permuted_get on the chain map), exchange sufficient statistics by that
// physical index, decide and apply to each local replica's Chain field, then
// publish the new chain map (permuted_set!).
//
// er.Local() is indexed by fixed physical storage offset; each replica's
// current Chain is read and, on an accepted swap, reassigned in place, the
// same single-atomic-field mutation the single-process driver performs.
// checked is consulted for its CheckedRound and Seed fields — pass nil to
// skip the agreement check entirely. When round == checked.CheckedRound,
// each local pair's decision is recomputed against a from-scratch reference
// replay of its own replica's RNG (referenceSwapStat) and compared to the
// decision actually reached; a mismatch means this replica's RNG trajectory
// diverged from what a correct run would have produced (RNG drift, or a
// non-deterministic log-density), exactly the causes spec §7 names. The
// ErrDecisionDisagreement is returned only after the round's final
// collective (the chain-map publish), so the peer processes are never left
// blocked in a collective this process skipped.
func SwapRoundDistributed(ctx context.Context, round int, er *replicas.EntangledReplicas, sw swapper.PairSwapper, graph swapgraph.Graph, stats *StatEntangler, checked *config.Config) error {
	local := er.Local()

	partnerChain := make([]int, len(local))
	for i, r := range local {
		partnerChain[i] = graph.PartnerChain(r.Chain)
	}

	// Step 2: resolve every local chain's partner to the global storage
	// index of whichever replica currently holds it.
	partnerGlobalIdx, err := er.PartnerGlobalIndices(ctx, partnerChain)
	if err != nil {
		return err
	}

	// Step 3: compute this process's half of each pair's sufficient
	// statistic, one per locally-owned chain, before any stat is exchanged.
	myStat := make([]swapper.SwapStat, len(local))
	for i, r := range local {
		myStat[i] = sw.SwapStat(r, partnerChain[i])
	}

	// Step 4: exchange stats by physical storage index, so each side
	// receives exactly the stat its partner computed for this pair.
	partnerStat, err := stats.Transmit(ctx, myStat, partnerGlobalIdx)
	if err != nil {
		return err
	}

	var disagreement error
	for i, r := range local {
		chain := r.Chain
		partner := partnerChain[i]
		if partner == chain {
			continue
		}
		if graph.PartnerChain(partner) != chain {
			return fmt.Errorf("%w: chain %d -> %d -> %d", ErrInvolutionViolation, chain, partner, graph.PartnerChain(partner))
		}

		accepted := sw.SwapDecision(chain, myStat[i], partner, partnerStat[i])
		if chain < partner {
			sw.RecordSwapStats(r, chain, myStat[i], partner, partnerStat[i], accepted)
		}
		if checked != nil && round == checked.CheckedRound && disagreement == nil {
			ref := referenceSwapStat(sw, r, checked.Seed, round, partner)
			if sw.SwapDecision(chain, ref, partner, partnerStat[i]) != accepted {
				disagreement = fmt.Errorf("%w: chain %d<->%d", ErrDecisionDisagreement, chain, partner)
			}
		}
		if accepted {
			r.Chain = partner
		}
	}

	// Step 6: publish each local replica's new chain so the distributed
	// chain map reflects this round's swaps.
	newChains := make([]int, len(local))
	for i, r := range local {
		newChains[i] = r.Chain
	}
	if err := er.RebuildMapping(ctx, newChains); err != nil {
		return err
	}
	return disagreement
}
