// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package replicas

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/pt/replica"
)

func newStore(t *testing.T, n int) *Store {
	t.Helper()
	rs := make([]*replica.Replica, n)
	for i := 0; i < n; i++ {
		rs[i] = replica.New(i+1, nil, 1, nil)
	}
	s, err := NewStore(rs)
	require.NoError(t, err)
	return s
}

func TestStoreByChainMatchesInitialAssignment(t *testing.T) {
	s := newStore(t, 4)
	for c := 1; c <= 4; c++ {
		require.Equal(t, c, s.ByChain(c).Chain)
		require.Equal(t, c, s.ByChain(c).ID)
	}
}

func TestStoreResortRestoresInvariant(t *testing.T) {
	s := newStore(t, 4)
	// Simulate an accepted (1,2) swap and a self-pair at (3,3).
	s.ByChain(1).Chain = 2
	s.ByChain(2).Chain = 1
	require.NoError(t, s.Resort())
	require.Equal(t, 2, s.ByChain(1).ID)
	require.Equal(t, 1, s.ByChain(1).Chain)
	require.Equal(t, 1, s.ByChain(2).ID)
	require.Equal(t, 2, s.ByChain(2).Chain)
}

func TestStoreResortRejectsNonPermutation(t *testing.T) {
	s := newStore(t, 4)
	s.ByChain(1).Chain = 2
	// Chain 2's replica did not reciprocate: not a permutation.
	require.ErrorIs(t, s.Resort(), ErrPermutationViolation)
}

func TestNewStoreRejectsDuplicateChain(t *testing.T) {
	rs := []*replica.Replica{
		replica.New(1, nil, 1, nil),
		replica.New(1, nil, 1, nil),
	}
	rs[1].Chain = 1
	_, err := NewStore(rs)
	require.ErrorIs(t, err, ErrPermutationViolation)
}
