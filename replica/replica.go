// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package replica defines the unit of mutable state the swap core moves
// between chains: a replica's state, its private RNG, and the one field
// (Chain) the swap driver is allowed to reassign (spec §9: "Mutable struct
// with in-place chain reassignment becomes a single atomic field").
package replica

import "github.com/luxfi/pt/utils/rng"

// State is the opaque payload an Explorer mutates and a log-potential reads.
// The swap core never inspects it.
type State interface{}

// Replica pairs one chain's worth of exploration state with the RNG and
// recorder that travel with it for the replica's whole lifetime. Chain is
// the only field the swap driver reassigns, and only inside a swap round.
//
// ID is the chain this replica was created on and never changes again; it is
// the replica's permanent storage position (the distributed variant never
// relocates a replica's state across processes, only its Chain label moves)
// and the input to its RNG seed, per the requirement that seeding depend
// only on (master seed, chain id at creation) and never on process rank.
type Replica struct {
	ID    int
	Chain int
	State State
	RNG   rng.Source

	Recorder Recorder
}

// New builds a replica created on chain id, with its RNG seeded
// deterministically from (masterSeed, id) per the replay-across-process-counts
// requirement — never from process rank or local storage position.
func New(id int, state State, masterSeed int64, recorder Recorder) *Replica {
	return &Replica{
		ID:       id,
		Chain:    id,
		State:    state,
		RNG:      rng.NewReplicaSource(masterSeed, id),
		Recorder: recorder,
	}
}

// Recorder accumulates per-replica statistics across a run. Implementations
// are merged at round boundaries outside the swap core; the core only ever
// calls RecordSwapStat.
type Recorder interface {
	RecordSwapStat(round int, chain, partnerChain int, logRatio float64, accepted bool)
}

// NoOpRecorder discards everything recorded. Useful for tests and for
// explorers that do not need swap statistics.
type NoOpRecorder struct{}

func (NoOpRecorder) RecordSwapStat(int, int, int, float64, bool) {}

// Explorer mutates a replica's state in place given the log-potential it
// should explore under. It never touches Chain.
type Explorer interface {
	Explore(replica *Replica, logPotential func(State) float64) error
}
