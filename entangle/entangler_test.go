// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package entangle

import (
	"context"
	"encoding/binary"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/pt/entangle/entanglemock"
)

func encodeUint64(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

func decodeUint64(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}

// runReverseTransmit has every rank send its local slot's global index to
// the slot that currently holds the mirrored index (N+1-idx), a fixed
// involution so the test needs no extra bookkeeping of "who owns what".
func runReverseTransmit(t *testing.T, n, p int) [][]uint64 {
	t.Helper()
	hub := NewHub(p)
	results := make([][]uint64, p)

	var wg sync.WaitGroup
	for rank := 0; rank < p; rank++ {
		rank := rank
		wg.Add(1)
		go func() {
			defer wg.Done()
			comm := hub.Rank(rank)
			e := New[uint64](comm, n, 8, func(v uint64) []byte { return encodeUint64(v) }, decodeUint64)
			load := e.Load()
			lo, hi := load.RangeOf(rank)

			values := make([]uint64, 0, hi-lo+1)
			destinations := make([]int, 0, hi-lo+1)
			for idx := lo; idx <= hi; idx++ {
				values = append(values, uint64(idx))
				destinations = append(destinations, n+1-idx)
			}
			received, err := e.Transmit(context.Background(), values, destinations)
			require.NoError(t, err)
			results[rank] = received
		}()
	}
	wg.Wait()
	return results
}

func TestEntanglerReverseIsInvolution(t *testing.T) {
	for _, p := range []int{1, 2, 3, 5} {
		n := 17
		results := runReverseTransmit(t, n, p)
		load := NewLoad(n, p)
		for rank := 0; rank < p; rank++ {
			for off, got := range results[rank] {
				globalIdx := load.GlobalIndex(rank, off)
				want := uint64(n + 1 - globalIdx)
				require.Equal(t, want, got, "rank %d offset %d", rank, off)
			}
		}
	}
}

func TestEntanglerRejectsOutOfRangeDestination(t *testing.T) {
	comm := entanglemock.New(t, 0, 1)
	e := New[uint64](comm, 4, 8, encodeUint64, decodeUint64)
	_, err := e.Transmit(context.Background(), []uint64{1}, []int{0})
	require.ErrorIs(t, err, ErrPermutationViolation)
}

func TestEntanglerRejectsDuplicateDestination(t *testing.T) {
	comm := entanglemock.New(t, 0, 1)
	e := New[uint64](comm, 4, 8, encodeUint64, decodeUint64)
	_, err := e.Transmit(context.Background(), []uint64{1, 2}, []int{3, 3})
	require.ErrorIs(t, err, ErrPermutationViolation)
}

func TestEntanglerWrapsCommunicationFailure(t *testing.T) {
	comm := entanglemock.New(t, 0, 1)
	boom := errors.New("boom")
	comm.CantAllToAll = false
	comm.AllToAllF = func(ctx context.Context, outgoing [][]byte) ([][]byte, error) {
		return nil, boom
	}
	e := New[uint64](comm, 4, 8, encodeUint64, decodeUint64)
	_, err := e.Transmit(context.Background(), []uint64{1}, []int{1})
	require.ErrorIs(t, err, ErrCommunicationFailure)
}

func TestEntanglerRejectsMissingLocalSlot(t *testing.T) {
	comm := entanglemock.New(t, 0, 1)
	comm.AllToAllF = func(ctx context.Context, outgoing [][]byte) ([][]byte, error) {
		// Never deliver anything: every local slot goes unfilled.
		return make([][]byte, comm.Size()), nil
	}
	e := New[uint64](comm, 2, 8, encodeUint64, decodeUint64)
	_, err := e.Transmit(context.Background(), []uint64{1, 2}, []int{1, 2})
	require.ErrorIs(t, err, ErrPermutationViolation)
}
