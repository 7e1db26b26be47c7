// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package entangle implements the Entangler: the peer-to-peer collective
// that permutes small fixed-size payloads across processes by global index
// (spec §4.1). It is the lowest layer of the swap core — everything else
// (PermutedDistributedArray, EntangledReplicas, the swap driver) is built on
// top of a single primitive, Transmit, plus the Load partition below it.
package entangle

// Load is the fixed block partition of 1..N global indices across P
// processes, computed once from (N, P) and never recomputed mid-run. Process
// p owns indices [p*K+1, min((p+1)*K, N)] where K = ceil(N/P).
type Load struct {
	N, P int
	K    int
}

// NewLoad computes the block partition for n global indices over p
// processes.
func NewLoad(n, p int) Load {
	k := (n + p - 1) / p
	return Load{N: n, P: p, K: k}
}

// OwnerOf returns the process rank owning global index idx (1-based).
func (l Load) OwnerOf(idx int) int {
	return (idx - 1) / l.K
}

// LocalOffset returns the zero-based local offset of global index idx
// within its owning process's slice.
func (l Load) LocalOffset(idx int) int {
	return (idx - 1) % l.K
}

// RangeOf returns the inclusive 1-based [lo, hi] global-index range owned by
// rank. hi may be less than lo+K-1 if N does not divide evenly into P.
func (l Load) RangeOf(rank int) (lo, hi int) {
	lo = rank*l.K + 1
	hi = (rank + 1) * l.K
	if hi > l.N {
		hi = l.N
	}
	if lo > hi {
		return lo, lo - 1
	}
	return lo, hi
}

// LocalCount returns the number of global indices owned by rank.
func (l Load) LocalCount(rank int) int {
	lo, hi := l.RangeOf(rank)
	if hi < lo {
		return 0
	}
	return hi - lo + 1
}

// GlobalIndex returns the global index (1-based) of the localOffset-th slot
// owned by rank.
func (l Load) GlobalIndex(rank, localOffset int) int {
	return rank*l.K + localOffset + 1
}
