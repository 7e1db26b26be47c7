// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package entangle

import (
	"context"
	"sync"
)

// cyclicBarrier is a reusable rendezvous point for exactly n goroutines, the
// same pattern used anywhere a bulk-synchronous round needs every
// participant present before anyone proceeds (spec §5: "All processes
// execute the same sequence of collectives in lockstep").
type cyclicBarrier struct {
	mu    sync.Mutex
	cond  *sync.Cond
	n     int
	count int
	gen   int
}

func newCyclicBarrier(n int) *cyclicBarrier {
	b := &cyclicBarrier{n: n}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// wait blocks until n goroutines have called wait for the current
// generation, then releases all of them together.
func (b *cyclicBarrier) wait() {
	b.mu.Lock()
	defer b.mu.Unlock()
	gen := b.gen
	b.count++
	if b.count == b.n {
		b.count = 0
		b.gen++
		b.cond.Broadcast()
		return
	}
	for gen == b.gen {
		b.cond.Wait()
	}
}

// Hub is a single-process simulation of P communicating processes, used to
// run and test the exact same swap core across different process counts
// (spec §8 invariant 3) without any real network or OS process boundary.
// Each simulated rank gets its own Communicator view via Hub.Rank.
type Hub struct {
	size int

	mu   sync.Mutex
	data [][][]byte

	submitBarrier *cyclicBarrier
	consumeBarrier *cyclicBarrier
}

// NewHub builds a Hub simulating size processes.
func NewHub(size int) *Hub {
	return &Hub{
		size:           size,
		data:           make([][][]byte, size),
		submitBarrier:  newCyclicBarrier(size),
		consumeBarrier: newCyclicBarrier(size),
	}
}

// Rank returns the Communicator for simulated process rank.
func (h *Hub) Rank(rank int) Communicator {
	return &localCommunicator{hub: h, rank: rank}
}

type localCommunicator struct {
	hub  *Hub
	rank int
}

func (c *localCommunicator) Rank() int { return c.rank }
func (c *localCommunicator) Size() int { return c.hub.size }

func (c *localCommunicator) AllToAll(ctx context.Context, outgoing [][]byte) ([][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	h := c.hub
	h.mu.Lock()
	h.data[c.rank] = outgoing
	h.mu.Unlock()

	h.submitBarrier.wait()

	incoming := make([][]byte, h.size)
	for r := 0; r < h.size; r++ {
		if c.rank < len(h.data[r]) {
			incoming[r] = h.data[r][c.rank]
		}
	}

	h.consumeBarrier.wait()
	return incoming, nil
}
