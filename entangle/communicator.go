// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package entangle

import "context"

// Communicator is the transport the Entangler is built on: one all-to-all
// exchange of byte payloads per process. It is the single collaborator the
// spec asks to be "injected into the Entangler at construction and never
// read from ambient scope" (spec §9) — no process rank or communicator is
// ever read from a global.
//
// A real deployment backs this with whatever transport the surrounding
// system already uses (gRPC, ZeroMQ, raw TCP); only the shape below is
// pinned. Hub provides an in-process implementation used for single-process
// runs and for driving the same run across a simulated process count in
// tests: Hub.Rank returns one Communicator per simulated process.
type Communicator interface {
	// Rank returns this process's 0-based rank.
	Rank() int
	// Size returns the total number of processes, P.
	Size() int
	// AllToAll exchanges one byte-slice payload per destination rank.
	// outgoing[r] is the payload this process sends to rank r (outgoing[Rank()]
	// is a same-process loopback). The returned incoming[r] is the payload
	// rank r sent back. AllToAll is collective: every process must call it,
	// in the same relative order as every other collective, every round.
	AllToAll(ctx context.Context, outgoing [][]byte) (incoming [][]byte, err error)
}
