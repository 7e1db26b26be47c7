// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tempering

// AdaptSchedule implements adapt_tempering's schedule update (spec §4.6):
// given the previous round's schedule and its estimated adjacent rejection
// rates, redistribute the same number of schedule points so each adjacent
// interval carries an equal share of the estimated communication barrier
// (the standard "equi-rejection" tuning). The first round has no recorded
// rates yet and should call EquallySpacedSchedule directly instead.
func AdaptSchedule(previous Schedule, rates AdjacentRejectionRates) Schedule {
	n := len(previous)
	if n <= 1 || len(rates) == 0 {
		return previous
	}
	cum := cumulativeBarrier(rates)
	total := cum[len(cum)-1]
	next := make(Schedule, n)
	next[0] = previous[0]
	next[n-1] = previous[n-1]
	if total == 0 {
		copy(next, previous)
		return next
	}
	for j := 1; j < n-1; j++ {
		target := total * float64(j) / float64(n-1)
		next[j] = interpolateScheduleAt(previous, cum, target)
	}
	return next
}

// interpolateScheduleAt finds the schedule value whose cumulative barrier
// equals target, linearly interpolating between the two bracketing knots.
func interpolateScheduleAt(schedule Schedule, cum []float64, target float64) float64 {
	for i := 1; i < len(cum); i++ {
		if cum[i] >= target {
			lo, hi := cum[i-1], cum[i]
			if hi == lo {
				return schedule[i]
			}
			frac := (target - lo) / (hi - lo)
			return schedule[i-1] + frac*(schedule[i]-schedule[i-1])
		}
	}
	return schedule[len(schedule)-1]
}

// AdaptTempering rebuilds leg with a new schedule adapted from rates (or an
// equally spaced schedule if rates is empty, for the first round), deriving
// fresh log-potentials along the same path. Pure: leg itself is untouched.
func AdaptTempering(leg *NonReversiblePT, rates AdjacentRejectionRates) *NonReversiblePT {
	var schedule Schedule
	if len(rates) == 0 {
		schedule = EquallySpacedSchedule(leg.N())
	} else {
		schedule = AdaptSchedule(leg.Schedule, rates)
	}
	return &NonReversiblePT{
		Path:          leg.Path,
		Schedule:      schedule,
		LogPotentials: LogPotentials(leg.Path, schedule),
	}
}
