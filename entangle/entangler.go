// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package entangle

import (
	"context"
	"fmt"

	"github.com/luxfi/pt/utils/set"
	"github.com/luxfi/pt/utils/wrappers"
)

// Entangler is the peer-to-peer collective that permutes fixed-size
// records of type T across processes by global index (spec §4.1). Encode
// must always produce exactly RecordSize bytes; Decode is its inverse. This
// is a generic, wire-format-agnostic implementation of Transmit — callers
// pin the wire shape (two float64s for a SwapStat, one uint64 for a global
// index, per spec §6) by supplying Encode/Decode.
type Entangler[T any] struct {
	comm       Communicator
	load       Load
	recordSize int
	encode     func(T) []byte
	decode     func([]byte) T
}

// New builds an Entangler for n global slots distributed by load over comm,
// transmitting values encoded/decoded by encode/decode into exactly
// recordSize bytes each.
func New[T any](comm Communicator, n int, recordSize int, encode func(T) []byte, decode func([]byte) T) *Entangler[T] {
	return &Entangler[T]{
		comm:       comm,
		load:       NewLoad(n, comm.Size()),
		recordSize: recordSize,
		encode:     encode,
		decode:     decode,
	}
}

// Load returns the fixed block partition this Entangler was built with.
func (e *Entangler[T]) Load() Load { return e.load }

// Transmit sends values[i], which is owned by this process's local slot i,
// to the global index destinations[i]. It returns, for each local slot i of
// this process, the payload some process designated for this process's
// global index owning slot i.
//
// Transmit is a pure function of its inputs plus the communicator: if, across
// all processes, the union of destinations is not a permutation of 1..N, it
// returns ErrPermutationViolation and the round must be treated as aborted
// per spec §7.
func (e *Entangler[T]) Transmit(ctx context.Context, values []T, destinations []int) ([]T, error) {
	rank := e.comm.Rank()
	size := e.comm.Size()
	if len(values) != len(destinations) {
		return nil, fmt.Errorf("entangle: values and destinations length mismatch: %d != %d", len(values), len(destinations))
	}

	// Bucket local sends by destination process. Each bucketed record is
	// [8-byte local offset at destination][recordSize-byte payload].
	outgoing := make([][]byte, size)
	packers := make([]*wrappers.Packer, size)
	for r := range packers {
		packers[r] = wrappers.NewPacker(0)
	}

	localDestinations := set.NewSet[int](len(destinations))
	for i, dest := range destinations {
		if dest < 1 || dest > e.load.N {
			return nil, fmt.Errorf("%w: destination %d out of range [1,%d]", ErrPermutationViolation, dest, e.load.N)
		}
		localDestinations.Add(dest)
		owner := e.load.OwnerOf(dest)
		offset := e.load.LocalOffset(dest)
		p := packers[owner]
		p.PackLong(uint64(offset))
		p.PackBytes(e.encode(values[i]))
	}
	if localDestinations.Len() != len(destinations) {
		return nil, fmt.Errorf("%w: duplicate destination among this process's sends", ErrPermutationViolation)
	}
	for r := range packers {
		outgoing[r] = packers[r].Bytes
	}

	incoming, err := e.comm.AllToAll(ctx, outgoing)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCommunicationFailure, err)
	}

	localCount := e.load.LocalCount(rank)
	received := make([]T, localCount)
	filled := make([]bool, localCount)
	stride := 8 + e.recordSize
	for _, payload := range incoming {
		if len(payload)%stride != 0 {
			return nil, fmt.Errorf("%w: malformed record stream of length %d", ErrCommunicationFailure, len(payload))
		}
		u := wrappers.NewUnpacker(payload)
		for u.Offset < len(payload) {
			offset := int(u.UnpackLong())
			record := payload[u.Offset : u.Offset+e.recordSize]
			u.Offset += e.recordSize
			if offset < 0 || offset >= localCount {
				return nil, fmt.Errorf("%w: local offset %d out of range", ErrPermutationViolation, offset)
			}
			if filled[offset] {
				return nil, fmt.Errorf("%w: local slot %d received more than one payload", ErrPermutationViolation, offset)
			}
			filled[offset] = true
			received[offset] = e.decode(record)
		}
	}
	for i, ok := range filled {
		if !ok {
			return nil, fmt.Errorf("%w: local slot %d received no payload", ErrPermutationViolation, i)
		}
	}
	return received, nil
}
