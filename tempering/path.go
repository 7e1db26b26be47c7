// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package tempering implements the tempering container (spec §4.6): the
// path between reference and target, the annealing schedule, the derived
// log-potentials, and (for the variational case) the concatenation of two
// legs into one chain space.
package tempering

import "github.com/luxfi/pt/replica"

// Path is the interpolating family between a reference and a target
// log-density, indexed by an annealing parameter in [0,1]. LogDensity(0, .)
// must be the reference, LogDensity(1, .) the target.
type Path interface {
	LogDensity(beta float64, state replica.State) float64
}

// FuncPath adapts a plain function into a Path.
type FuncPath func(beta float64, state replica.State) float64

func (f FuncPath) LogDensity(beta float64, state replica.State) float64 { return f(beta, state) }

// Schedule is N ordered annealing parameters in [0,1], schedule[0] == 0
// (reference) and schedule[N-1] == 1 (target).
type Schedule []float64

// EquallySpacedSchedule returns the n-point schedule 0, 1/(n-1), ..., 1. For
// n == 1 it returns {1} (a single chain is always at the target).
func EquallySpacedSchedule(n int) Schedule {
	if n <= 1 {
		return Schedule{1}
	}
	s := make(Schedule, n)
	for i := 0; i < n; i++ {
		s[i] = float64(i) / float64(n-1)
	}
	return s
}

// LogPotentials derives one log-density closure per chain from path and
// schedule, in chain order (chain i uses schedule[i-1]).
func LogPotentials(path Path, schedule Schedule) []func(replica.State) float64 {
	lp := make([]func(replica.State) float64, len(schedule))
	for i, beta := range schedule {
		beta := beta
		lp[i] = func(state replica.State) float64 { return path.LogDensity(beta, state) }
	}
	return lp
}
