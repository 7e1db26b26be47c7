// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ptmetrics provides the swap core's Prometheus-backed metrics,
// trimmed from the teacher's metrics package to three observation shapes: a
// running average (accept rate), a monotonic counter (rounds run, numeric
// degeneracies hit), and a point-in-time gauge (the communication barrier
// estimate).
package ptmetrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/luxfi/pt/utils/wrappers"
)

// Averager tracks a running average of observed values.
type Averager interface {
	Observe(value float64)
	Read() float64
}

type averager struct {
	mu    sync.RWMutex
	sum   float64
	count float64

	promCount prometheus.Counter
	promSum   prometheus.Gauge
}

// NewAverager returns a new Averager registered under reg.
func NewAverager(name, help string, reg prometheus.Registerer) (Averager, error) {
	count := prometheus.NewCounter(prometheus.CounterOpts{
		Name: name + "_count",
		Help: "Total # of observations of " + help,
	})
	sum := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: name + "_sum",
		Help: "Sum of " + help,
	})

	if err := reg.Register(count); err != nil {
		return nil, err
	}
	if err := reg.Register(sum); err != nil {
		return nil, err
	}

	return &averager{promCount: count, promSum: sum}, nil
}

// NewAveragerWithErrs is like NewAverager but appends any registration error
// to errs and falls back to an unregistered (in-process-only) averager
// instead of failing the caller.
func NewAveragerWithErrs(name, help string, reg prometheus.Registerer, errs *wrappers.Errs) Averager {
	a, err := NewAverager(name, help, reg)
	if err != nil {
		errs.Add(err)
		return &averager{}
	}
	return a
}

func (a *averager) Observe(value float64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.sum += value
	a.count++

	if a.promCount != nil {
		a.promCount.Inc()
	}
	if a.promSum != nil {
		a.promSum.Add(value)
	}
}

func (a *averager) Read() float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.count == 0 {
		return 0
	}
	return a.sum / a.count
}

// Counter tracks a monotonically increasing count.
type Counter interface {
	Inc()
	Add(delta int64)
	Read() int64
}

type counter struct {
	mu    sync.RWMutex
	value int64
	prom  prometheus.Counter
}

// NewCounter returns a Counter registered under reg, or an unregistered
// in-process counter if reg is nil.
func NewCounter(name, help string, reg prometheus.Registerer) (Counter, error) {
	c := &counter{}
	if reg == nil {
		return c, nil
	}
	pc := prometheus.NewCounter(prometheus.CounterOpts{Name: name, Help: help})
	if err := reg.Register(pc); err != nil {
		return nil, err
	}
	c.prom = pc
	return c, nil
}

func (c *counter) Inc() { c.Add(1) }

func (c *counter) Add(delta int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value += delta
	if c.prom != nil && delta > 0 {
		c.prom.Add(float64(delta))
	}
}

func (c *counter) Read() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Gauge tracks a value that can move up or down.
type Gauge interface {
	Set(value float64)
	Read() float64
}

type gauge struct {
	mu    sync.RWMutex
	value float64
	prom  prometheus.Gauge
}

// NewGauge returns a Gauge registered under reg, or an unregistered
// in-process gauge if reg is nil.
func NewGauge(name, help string, reg prometheus.Registerer) (Gauge, error) {
	g := &gauge{}
	if reg == nil {
		return g, nil
	}
	pg := prometheus.NewGauge(prometheus.GaugeOpts{Name: name, Help: help})
	if err := reg.Register(pg); err != nil {
		return nil, err
	}
	g.prom = pg
	return g, nil
}

func (g *gauge) Set(value float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.value = value
	if g.prom != nil {
		g.prom.Set(value)
	}
}

func (g *gauge) Read() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.value
}
