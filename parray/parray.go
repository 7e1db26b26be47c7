// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package parray implements PermutedDistributedArray: a logical vector of
// length N, physically partitioned across P processes in rank order, with
// two collective primitives layered on top of entangle.Entangler (spec
// §4.2). Get is a request/reply round-trip that tolerates many local slots
// naming the same global index; Set requires the supplied keys to form a
// permutation of 1..N and is implemented directly as one Entangler.Transmit.
package parray

import (
	"context"
	"fmt"

	"github.com/luxfi/pt/entangle"
	"github.com/luxfi/pt/utils/wrappers"
)

// PermutedDistributedArray wraps an Entangler plus this process's local
// payload slice. The logical array is the concatenation of every process's
// local slice in rank order.
type PermutedDistributedArray[T any] struct {
	comm       entangle.Communicator
	load       entangle.Load
	entangler  *entangle.Entangler[T]
	recordSize int
	encode     func(T) []byte
	decode     func([]byte) T
	local      []T
}

// New builds a PermutedDistributedArray of n global slots over comm, with
// this process's local slice seeded from initial (len(initial) must equal
// load.LocalCount(comm.Rank())).
func New[T any](comm entangle.Communicator, n, recordSize int, encode func(T) []byte, decode func([]byte) T, initial []T) *PermutedDistributedArray[T] {
	local := make([]T, len(initial))
	copy(local, initial)
	return &PermutedDistributedArray[T]{
		comm:       comm,
		load:       entangle.NewLoad(n, comm.Size()),
		entangler:  entangle.New[T](comm, n, recordSize, encode, decode),
		recordSize: recordSize,
		encode:     encode,
		decode:     decode,
		local:      local,
	}
}

// Load returns the fixed block partition backing this array.
func (a *PermutedDistributedArray[T]) Load() entangle.Load { return a.load }

// Local returns this process's local slice, in local-offset order. The
// caller must not mutate it outside of Set.
func (a *PermutedDistributedArray[T]) Local() []T { return a.local }

// Get is permuted_get: indices[i] names the global index whose current
// value should fill result[i]. Unlike Set, indices need not be a
// permutation — any number of local slots, on any process, may name the
// same global index.
func (a *PermutedDistributedArray[T]) Get(ctx context.Context, indices []int) ([]T, error) {
	rank := a.comm.Rank()
	size := a.comm.Size()

	requestPackers := make([]*wrappers.Packer, size)
	for r := range requestPackers {
		requestPackers[r] = wrappers.NewPacker(0)
	}
	for slot, idx := range indices {
		if idx < 1 || idx > a.load.N {
			return nil, fmt.Errorf("%w: index %d out of range [1,%d]", ErrIndexOutOfRange, idx, a.load.N)
		}
		owner := a.load.OwnerOf(idx)
		p := requestPackers[owner]
		p.PackLong(uint64(slot))
		p.PackLong(uint64(idx))
	}
	requests := make([][]byte, size)
	for r := range requestPackers {
		requests[r] = requestPackers[r].Bytes
	}

	incomingRequests, err := a.comm.AllToAll(ctx, requests)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entangle.ErrCommunicationFailure, err)
	}

	replyPackers := make([]*wrappers.Packer, size)
	for r := range replyPackers {
		replyPackers[r] = wrappers.NewPacker(0)
	}
	const requestStride = 16
	for sender, payload := range incomingRequests {
		if len(payload)%requestStride != 0 {
			return nil, fmt.Errorf("%w: malformed request stream of length %d", entangle.ErrCommunicationFailure, len(payload))
		}
		u := wrappers.NewUnpacker(payload)
		p := replyPackers[sender]
		for u.Offset < len(payload) {
			slot := u.UnpackLong()
			idx := int(u.UnpackLong())
			if a.load.OwnerOf(idx) != rank {
				return nil, fmt.Errorf("%w: request for index %d routed to non-owner rank %d", entangle.ErrCommunicationFailure, idx, rank)
			}
			offset := a.load.LocalOffset(idx)
			p.PackLong(slot)
			p.PackBytes(a.encode(a.local[offset]))
		}
	}
	replies := make([][]byte, size)
	for r := range replyPackers {
		replies[r] = replyPackers[r].Bytes
	}

	incomingReplies, err := a.comm.AllToAll(ctx, replies)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entangle.ErrCommunicationFailure, err)
	}

	result := make([]T, len(indices))
	filled := make([]bool, len(indices))
	replyStride := 8 + a.recordSize
	for _, payload := range incomingReplies {
		if len(payload)%replyStride != 0 {
			return nil, fmt.Errorf("%w: malformed reply stream of length %d", entangle.ErrCommunicationFailure, len(payload))
		}
		u := wrappers.NewUnpacker(payload)
		for u.Offset < len(payload) {
			slot := int(u.UnpackLong())
			record := payload[u.Offset : u.Offset+a.recordSize]
			u.Offset += a.recordSize
			if slot < 0 || slot >= len(indices) {
				return nil, fmt.Errorf("%w: reply slot %d out of range", entangle.ErrCommunicationFailure, slot)
			}
			if filled[slot] {
				return nil, fmt.Errorf("%w: reply slot %d filled twice", entangle.ErrCommunicationFailure, slot)
			}
			filled[slot] = true
			result[slot] = a.decode(record)
		}
	}
	for slot, ok := range filled {
		if !ok {
			return nil, fmt.Errorf("%w: no reply for requested slot %d", entangle.ErrCommunicationFailure, slot)
		}
	}
	return result, nil
}

// Set is permuted_set!: keys[i] names the global index that values[i]
// should be written to. The union of keys across all processes must be a
// permutation of 1..N, enforced by the underlying Entangler.
func (a *PermutedDistributedArray[T]) Set(ctx context.Context, keys []int, values []T) error {
	received, err := a.entangler.Transmit(ctx, values, keys)
	if err != nil {
		return err
	}
	a.local = received
	return nil
}
