// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pt implements the swap driver (C7): the per-round orchestration
// that asks a SwapGraph for partner chains, resolves them to physical
// replica locations, exchanges sufficient statistics, and applies the
// resulting accept/reject decisions to each replica's chain field.
//
// Two entry points are exposed: SwapRound for a single process (collapsing
// the three collective calls into direct array access, per spec §4.7) and
// SwapRoundDistributed for P>1, built on parray.PermutedDistributedArray and
// entangle.Entangler.
package pt
