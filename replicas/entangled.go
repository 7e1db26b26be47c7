// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package replicas

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/luxfi/pt/entangle"
	"github.com/luxfi/pt/parray"
	"github.com/luxfi/pt/replica"
)

func encodeGlobalIndex(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

func decodeGlobalIndex(b []byte) uint64 { return binary.BigEndian.Uint64(b) }

// EntangledReplicas is the distributed replica store (spec §4.3): each
// process permanently owns a block of physical replica storage (Load
// partition over replica.ID, never relocated across the run) and
// collectively maintains mapping, a PermutedDistributedArray mapping
// each chain id to the global storage index of whichever replica currently
// carries it.
type EntangledReplicas struct {
	load    entangle.Load
	local   []*replica.Replica
	mapping *parray.PermutedDistributedArray[uint64]
}

// NewEntangledReplicas builds the distributed store for this process's
// slice of replicas, local, whose IDs must be exactly the global storage
// range load.RangeOf(comm.Rank()) and whose initial Chain values must equal
// their ID (every chain starts on the replica created for it).
func NewEntangledReplicas(comm entangle.Communicator, n int, local []*replica.Replica) (*EntangledReplicas, error) {
	load := entangle.NewLoad(n, comm.Size())
	lo, hi := load.RangeOf(comm.Rank())
	if len(local) != hi-lo+1 {
		return nil, fmt.Errorf("%w: expected %d local replicas, got %d", ErrPermutationViolation, hi-lo+1, len(local))
	}
	initialMapping := make([]uint64, len(local))
	for i, r := range local {
		wantID := lo + i
		if r.ID != wantID || r.Chain != wantID {
			return nil, fmt.Errorf("%w: local replica %d must have ID and Chain %d, got ID %d chain %d", ErrPermutationViolation, i, wantID, r.ID, r.Chain)
		}
		initialMapping[i] = uint64(wantID)
	}
	mapping := parray.New[uint64](comm, n, 8, encodeGlobalIndex, decodeGlobalIndex, initialMapping)
	return &EntangledReplicas{load: load, local: local, mapping: mapping}, nil
}

// Load returns the fixed block partition over replica storage (and,
// identically, over chain ids).
func (e *EntangledReplicas) Load() entangle.Load { return e.load }

// Local returns this process's replicas, in fixed storage order. Only their
// Chain and RNG/state fields may change; their order and identity never do.
func (e *EntangledReplicas) Local() []*replica.Replica { return e.local }

// PartnerGlobalIndices resolves each entry of partnerChains to the global
// storage index of whichever replica currently holds that chain
// (permuted_get on chain_to_replica_global_indices).
func (e *EntangledReplicas) PartnerGlobalIndices(ctx context.Context, partnerChains []int) ([]int, error) {
	values, err := e.mapping.Get(ctx, partnerChains)
	if err != nil {
		return nil, err
	}
	result := make([]int, len(values))
	for i, v := range values {
		result[i] = int(v)
	}
	return result, nil
}

// RebuildMapping writes, for each local replica, the replica's own fixed
// storage index (its ID) into the mapping at the replica's new chain
// (permuted_set! on chain_to_replica_global_indices). newChains[i]
// corresponds to Local()[i].
func (e *EntangledReplicas) RebuildMapping(ctx context.Context, newChains []int) error {
	values := make([]uint64, len(e.local))
	for i, r := range e.local {
		values[i] = uint64(r.ID)
	}
	return e.mapping.Set(ctx, newChains, values)
}
