// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package swapgraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDEOIsInvolution(t *testing.T) {
	for n := 1; n <= 9; n++ {
		for round := 1; round <= 4; round++ {
			g := DEO(round, n)
			for c := 1; c <= n; c++ {
				partner := g.PartnerChain(c)
				require.GreaterOrEqual(t, partner, 1)
				require.LessOrEqual(t, partner, n)
				require.Equal(t, c, g.PartnerChain(partner), "round %d chain %d", round, c)
			}
		}
	}
}

func TestDEORound1PairsOddBlocks(t *testing.T) {
	g := DEO(1, 4)
	require.Equal(t, 2, g.PartnerChain(1))
	require.Equal(t, 1, g.PartnerChain(2))
	require.Equal(t, 4, g.PartnerChain(3))
	require.Equal(t, 3, g.PartnerChain(4))
}

func TestDEORound2LeavesEndsSelfPaired(t *testing.T) {
	g := DEO(2, 4)
	require.Equal(t, 1, g.PartnerChain(1))
	require.Equal(t, 3, g.PartnerChain(2))
	require.Equal(t, 2, g.PartnerChain(3))
	require.Equal(t, 4, g.PartnerChain(4))
}

func TestVariationalDEOFoldsLegsTogether(t *testing.T) {
	g := VariationalDEO(1, 5, 5)
	// Round 1 over the concatenated 10-chain space pairs (1,2)(3,4)(5,6)
	// (7,8)(9,10); (5,6) is exactly the fixed/variational fold.
	require.Equal(t, 2, g.PartnerChain(1))
	require.Equal(t, 4, g.PartnerChain(3))
	require.Equal(t, 6, g.PartnerChain(5))
	require.Equal(t, 5, g.PartnerChain(6))
	require.Equal(t, 9, g.PartnerChain(10))
}
