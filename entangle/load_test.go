// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package entangle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadPartitionsCoverEveryIndexExactlyOnce(t *testing.T) {
	for _, tc := range []struct{ n, p int }{
		{10, 1}, {10, 3}, {10, 4}, {10, 10}, {1, 1}, {17, 5},
	} {
		load := NewLoad(tc.n, tc.p)
		seen := make(map[int]int, tc.n)
		for rank := 0; rank < tc.p; rank++ {
			lo, hi := load.RangeOf(rank)
			require.Equal(t, hi-lo+1, load.LocalCount(rank))
			if hi < lo {
				continue
			}
			for idx := lo; idx <= hi; idx++ {
				require.Equal(t, rank, load.OwnerOf(idx))
				seen[idx]++
				require.Equal(t, idx, load.GlobalIndex(rank, load.LocalOffset(idx)))
			}
		}
		require.Len(t, seen, tc.n)
		for idx := 1; idx <= tc.n; idx++ {
			require.Equal(t, 1, seen[idx])
		}
	}
}
