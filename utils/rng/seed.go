// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package rng provides the deterministic per-replica random source used
// throughout the swap core. A replica's generator must be a pure function
// of the master seed and the chain it was created with, never of process
// rank or local slot, so that a run's outcome is independent of how replicas
// are partitioned across processes.
package rng

import "math/rand"

// Source is a source of randomness, mirroring the teacher's sampler.Source
// but trimmed to the one primitive the swap core actually draws: a uniform
// float64 in [0, 1) per replica per round.
type Source interface {
	Uint64() uint64
	Float64() float64
}

// source wraps math/rand.Rand to implement Source.
type source struct {
	*rand.Rand
}

// NewSource returns a new deterministic Source seeded with seed.
func NewSource(seed int64) Source {
	return &source{Rand: rand.New(rand.NewSource(seed))}
}

// splitMix64 is used to turn (masterSeed, chainID) into a single well-mixed
// int64 seed. It is a fixed, documented mixing function so that the mapping
// is identical across languages and process counts, per the spec's
// "deterministic replay across process counts" design note.
func splitMix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// ReplicaSeed derives the deterministic seed for the replica created with
// chainID, from masterSeed. Two runs with the same (masterSeed, chainID)
// pair produce bit-identical replica RNG streams regardless of which
// process the replica is later entangled onto.
func ReplicaSeed(masterSeed int64, chainID int) int64 {
	mixed := splitMix64(uint64(masterSeed)) ^ splitMix64(uint64(chainID)*0x2545F4914F6CDD1D+1)
	mixed = splitMix64(mixed)
	// Keep the result in the positive int64 range: math/rand's NewSource
	// takes an int64 seed but the sign carries no entropy we care about.
	return int64(mixed >> 1)
}

// NewReplicaSource returns the deterministic Source for the replica created
// with chainID under masterSeed.
func NewReplicaSource(masterSeed int64, chainID int) Source {
	return NewSource(ReplicaSeed(masterSeed, chainID))
}
