// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ptmetrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/luxfi/pt/utils/wrappers"
)

// SwapMetrics is the fixed set of swap diagnostics: how many rounds have
// executed, the swap accept rate, how often a numeric degeneracy forced a
// rejection (spec §7, NumericDegeneracy is non-fatal and counted rather than
// raised), and the latest communication-barrier estimates for both legs.
// The pt.Driver increments Rounds and wires NumericDegeneracies into the
// DefaultSwapper it builds; nothing in this module observes AcceptRate or
// sets Barrier/BarrierVariational.
type SwapMetrics struct {
	Rounds              Counter
	AcceptRate          Averager
	NumericDegeneracies Counter
	Barrier             Gauge
	BarrierVariational  Gauge
}

// NewSwapMetrics registers the swap core's metrics under reg. Passing nil
// returns a fully functional but unregistered metrics set, which is what
// single-process test runs use.
func NewSwapMetrics(reg prometheus.Registerer) (*SwapMetrics, error) {
	if reg == nil {
		reg = noopRegisterer{}
	}

	var errs wrappers.Errs
	m := &SwapMetrics{}

	errs.Add(registerCounter(&m.Rounds, "pt_swap_rounds_total", "rounds executed", reg))
	errs.Add(registerCounter(&m.NumericDegeneracies, "pt_swap_numeric_degeneracies_total", "NaN log-ratio swaps treated as rejection", reg))
	m.AcceptRate = NewAveragerWithErrs("pt_swap_accept_rate", "swap acceptance", reg, &errs)
	errs.Add(registerGauge(&m.Barrier, "pt_swap_barrier", "fixed-leg communication barrier estimate", reg))
	errs.Add(registerGauge(&m.BarrierVariational, "pt_swap_barrier_variational", "variational-leg communication barrier estimate", reg))

	if errs.Errored() {
		return nil, errs.Err()
	}
	return m, nil
}

func registerCounter(dst *Counter, name, help string, reg prometheus.Registerer) error {
	c, err := NewCounter(name, help, reg)
	if err != nil {
		return err
	}
	*dst = c
	return nil
}

func registerGauge(dst *Gauge, name, help string, reg prometheus.Registerer) error {
	g, err := NewGauge(name, help, reg)
	if err != nil {
		return err
	}
	*dst = g
	return nil
}

// noopRegisterer satisfies prometheus.Registerer without ever publishing a
// collector, used to build an in-process-only SwapMetrics.
type noopRegisterer struct{}

func (noopRegisterer) Register(prometheus.Collector) error { return nil }
func (noopRegisterer) MustRegister(...prometheus.Collector) {}
func (noopRegisterer) Unregister(prometheus.Collector) bool { return true }
