// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pt

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/luxfi/pt/config"
	"github.com/luxfi/pt/entangle"
	"github.com/luxfi/pt/ptlog"
	"github.com/luxfi/pt/ptmetrics"
	"github.com/luxfi/pt/replica"
	"github.com/luxfi/pt/replicas"
	"github.com/luxfi/pt/swapgraph"
	"github.com/luxfi/pt/swapper"
)

// Driver wraps the stateless SwapRound/SwapRoundDistributed entry points
// with the logging and metrics every round-level caller wants: round
// boundaries and failures logged, rounds and numeric degeneracies counted.
// It does not observe SwapMetrics.AcceptRate or set the barrier gauges.
// The swap core itself (SwapRound, SwapRoundDistributed) takes neither, so
// it stays trivially testable; Driver is the thin orchestration layer a
// real run is built from.
type Driver struct {
	Logger  ptlog.Logger
	Metrics *ptmetrics.SwapMetrics
}

// NewDriver builds a Driver. A nil logger defaults to a no-op logger; a nil
// metrics set means rounds are run without recording any metric.
func NewDriver(logger ptlog.Logger, metrics *ptmetrics.SwapMetrics) *Driver {
	if logger == nil {
		logger = ptlog.NewNoOpLogger()
	}
	return &Driver{Logger: logger, Metrics: metrics}
}

// NewDefaultSwapper builds a swapper.DefaultSwapper whose NumericDegeneracies
// counter is wired to d.Metrics, if present.
func (d *Driver) NewDefaultSwapper(logPotential func(chain int, state replica.State) float64) *swapper.DefaultSwapper {
	sw := swapper.NewDefaultSwapper(logPotential)
	if d.Metrics != nil {
		sw.NumericDegeneracies = d.Metrics.NumericDegeneracies
	}
	return sw
}

func (d *Driver) logRoundError(round int, err error) {
	switch {
	case errors.Is(err, ErrInvolutionViolation), errors.Is(err, ErrDecisionDisagreement), errors.Is(err, entangle.ErrPermutationViolation), errors.Is(err, replicas.ErrPermutationViolation):
		d.Logger.Error("swap round failed", zap.Int("round", round), zap.Error(err))
	default:
		d.Logger.Warn("swap round failed", zap.Int("round", round), zap.Error(err))
	}
}

// RunRound runs SwapRound against a single-process Store, logging the
// outcome and incrementing Metrics.Rounds on success.
func (d *Driver) RunRound(round int, store *replicas.Store, sw swapper.PairSwapper, graph swapgraph.Graph) error {
	if err := SwapRound(round, store, sw, graph); err != nil {
		d.logRoundError(round, err)
		return err
	}
	d.Logger.Debug("swap round complete", zap.Int("round", round), zap.Int("n", store.N()))
	if d.Metrics != nil {
		d.Metrics.Rounds.Inc()
	}
	return nil
}

// RunRoundDistributed runs SwapRoundDistributed, logging the outcome and
// incrementing Metrics.Rounds on success.
func (d *Driver) RunRoundDistributed(ctx context.Context, round int, er *replicas.EntangledReplicas, sw swapper.PairSwapper, graph swapgraph.Graph, stats *StatEntangler, checked *config.Config) error {
	if err := SwapRoundDistributed(ctx, round, er, sw, graph, stats, checked); err != nil {
		d.logRoundError(round, err)
		return err
	}
	d.Logger.Debug("swap round complete", zap.Int("round", round))
	if d.Metrics != nil {
		d.Metrics.Rounds.Inc()
	}
	return nil
}
