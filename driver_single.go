// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pt

import (
	"fmt"

	"github.com/luxfi/pt/replicas"
	"github.com/luxfi/pt/swapgraph"
	"github.com/luxfi/pt/swapper"
)

// SwapRound runs one round of the swap core against a single-process Store
// (spec §4.7), collapsing the three collective calls a distributed run needs
// into direct slice access: every replica and its partner's replica are
// already co-located in memory, so permuted_get/permuted_set degenerate to
// ByChain lookups.
func SwapRound(round int, store *replicas.Store, sw swapper.PairSwapper, graph swapgraph.Graph) error {
	n := store.N()

	partnerChain := make([]int, n+1)
	stat := make([]swapper.SwapStat, n+1)
	for chain := 1; chain <= n; chain++ {
		partner := graph.PartnerChain(chain)
		partnerChain[chain] = partner
		stat[chain] = sw.SwapStat(store.ByChain(chain), partner)
	}

	for chain := 1; chain <= n; chain++ {
		partner := partnerChain[chain]
		if partner == chain {
			continue
		}
		if graph.PartnerChain(partner) != chain {
			return fmt.Errorf("%w: chain %d -> %d -> %d", ErrInvolutionViolation, chain, partner, graph.PartnerChain(partner))
		}
		if chain > partner {
			continue // the pair is applied and recorded once, from its lower chain
		}

		accepted := sw.SwapDecision(chain, stat[chain], partner, stat[partner])
		sw.RecordSwapStats(store.ByChain(chain), chain, stat[chain], partner, stat[partner], accepted)
		if accepted {
			store.ByChain(chain).Chain = partner
			store.ByChain(partner).Chain = chain
		}
	}

	return store.Resort()
}
