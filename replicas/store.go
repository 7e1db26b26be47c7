// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package replicas holds the two replica-store shapes the driver runs
// against (spec §4.3): a single-process Store kept sorted by chain for O(1)
// partner lookup, and a distributed EntangledReplicas that tracks the same
// information through a PermutedDistributedArray instead of by physical
// co-location.
package replicas

import (
	"fmt"

	"github.com/luxfi/pt/replica"
)

// Store holds all N replicas of a single-process run, sorted so that
// Store.replicas[c-1].Chain == c at all times except mid-round, between the
// mutation phase and Resort.
type Store struct {
	replicas []*replica.Replica
}

// NewStore builds a Store from replicas, which must carry chains 1..N with
// no repeats; it is sorted into chain order.
func NewStore(rs []*replica.Replica) (*Store, error) {
	n := len(rs)
	byChain := make([]*replica.Replica, n+1)
	for _, r := range rs {
		if r.Chain < 1 || r.Chain > n {
			return nil, fmt.Errorf("%w: chain %d out of range [1,%d]", ErrPermutationViolation, r.Chain, n)
		}
		if byChain[r.Chain] != nil {
			return nil, fmt.Errorf("%w: chain %d assigned twice", ErrPermutationViolation, r.Chain)
		}
		byChain[r.Chain] = r
	}
	return &Store{replicas: byChain[1:]}, nil
}

// N returns the number of replicas (and chains) in the store.
func (s *Store) N() int { return len(s.replicas) }

// ByChain returns the replica currently holding chain (1-based).
func (s *Store) ByChain(chain int) *replica.Replica { return s.replicas[chain-1] }

// All returns every replica, indexed by chain (All()[c-1].Chain == c).
func (s *Store) All() []*replica.Replica { return s.replicas }

// Resort restores the sorted invariant after a round has mutated Chain
// fields in place, and verifies the result is still a permutation of 1..N.
func (s *Store) Resort() error {
	n := len(s.replicas)
	sorted := make([]*replica.Replica, n)
	seen := make([]bool, n+1)
	for _, r := range s.replicas {
		if r.Chain < 1 || r.Chain > n {
			return fmt.Errorf("%w: chain %d out of range [1,%d]", ErrPermutationViolation, r.Chain, n)
		}
		if seen[r.Chain] {
			return fmt.Errorf("%w: chain %d assigned twice", ErrPermutationViolation, r.Chain)
		}
		seen[r.Chain] = true
		sorted[r.Chain-1] = r
	}
	s.replicas = sorted
	return nil
}
