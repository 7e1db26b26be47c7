// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tempering

import (
	"github.com/luxfi/pt/replica"
	"github.com/luxfi/pt/swapgraph"
)

// NonReversiblePT is one tempering leg: a path, its schedule, and the
// log-potentials derived from them. It is rebuilt, never mutated, at each
// round boundary (spec §9: "tempering an immutable per-round snapshot").
type NonReversiblePT struct {
	Path          Path
	Schedule      Schedule
	LogPotentials []func(replica.State) float64
}

// NewNonReversiblePT builds a leg with an equally spaced schedule over n
// chains.
func NewNonReversiblePT(path Path, n int) *NonReversiblePT {
	schedule := EquallySpacedSchedule(n)
	return &NonReversiblePT{
		Path:          path,
		Schedule:      schedule,
		LogPotentials: LogPotentials(path, schedule),
	}
}

// N returns the number of chains in this leg.
func (t *NonReversiblePT) N() int { return len(t.Schedule) }

// SwapGraph returns the DEO graph for round over this leg's chains.
func (t *NonReversiblePT) SwapGraph(round int) swapgraph.Graph {
	return swapgraph.DEO(round, t.N())
}

// LogPotential returns logπ_chain(state) for this leg.
func (t *NonReversiblePT) LogPotential(chain int, state replica.State) float64 {
	return t.LogPotentials[chain-1](state)
}

// VariationalPT concatenates a fixed leg and a variational leg into one
// chain space of length Fixed.N()+Variational.N(), per spec §3: global index
// i <= N_f maps to (fixed, i); i > N_f maps to the variational leg's chain
// N_v-(i-N_f)+1, i.e. the variational leg's log-potentials appear reversed.
type VariationalPT struct {
	Fixed       *NonReversiblePT
	Variational *NonReversiblePT
}

// NewVariationalPT builds a VariationalPT from two already-built legs.
func NewVariationalPT(fixed, variational *NonReversiblePT) *VariationalPT {
	return &VariationalPT{Fixed: fixed, Variational: variational}
}

// N returns the total chain count across both legs.
func (t *VariationalPT) N() int { return t.Fixed.N() + t.Variational.N() }

// ConcatenatedLogPotentials returns [fixed...; reverse(variational)...],
// length Fixed.N()+Variational.N() (spec §4.6).
func (t *VariationalPT) ConcatenatedLogPotentials() []func(replica.State) float64 {
	nf := t.Fixed.N()
	nv := t.Variational.N()
	out := make([]func(replica.State) float64, nf+nv)
	copy(out, t.Fixed.LogPotentials)
	for i := 0; i < nv; i++ {
		out[nf+i] = t.Variational.LogPotentials[nv-1-i]
	}
	return out
}

// LogPotential resolves a global chain index (1..N_f+N_v) to a log-density
// value via the Indexer.
func (t *VariationalPT) LogPotential(chain int, state replica.State) float64 {
	leg, local := NewIndexer(t.Fixed.N(), t.Variational.N()).Resolve(chain)
	if leg == FixedLeg {
		return t.Fixed.LogPotential(local, state)
	}
	return t.Variational.LogPotential(local, state)
}

// SwapGraph returns the variational DEO graph for round over the
// concatenated chain space.
func (t *VariationalPT) SwapGraph(round int) swapgraph.Graph {
	return swapgraph.VariationalDEO(round, t.Fixed.N(), t.Variational.N())
}
