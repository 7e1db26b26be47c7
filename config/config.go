// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config holds the swap core's run configuration (spec §6).
package config

import "errors"

var (
	ErrInvalidConfig       = errors.New("config: invalid configuration")
	ErrInvalidNChains      = errors.New("config: n_chains must be >= 1")
	ErrInvalidNRounds      = errors.New("config: n_rounds must be >= 1")
	ErrNegativeVariational = errors.New("config: n_chains_variational must be >= 0")
)

// RecorderBuilder constructs a fresh replica.Recorder for one replica at run
// start. Kept as an opaque function value (rather than an interface) so
// callers can close over whatever aggregation state they like.
type RecorderBuilder func() any

// Config holds the recognized run options (spec §6).
type Config struct {
	Seed               int64
	NRounds            int
	NChains            int
	NChainsVariational int
	Checkpoint         bool
	RecorderBuilders   []RecorderBuilder
	CheckedRound       int
	Multithreaded      bool
}

// Default returns the spec's documented defaults: seed 1, 10 rounds, 10
// chains, no variational leg, checked_round disabled.
func Default() Config {
	return Config{
		Seed:               1,
		NRounds:            10,
		NChains:            10,
		NChainsVariational: 0,
		Checkpoint:         false,
		CheckedRound:       0,
		Multithreaded:      false,
	}
}

// WithSeed returns a copy of c with Seed set.
func (c Config) WithSeed(seed int64) Config { c.Seed = seed; return c }

// WithNRounds returns a copy of c with NRounds set.
func (c Config) WithNRounds(n int) Config { c.NRounds = n; return c }

// WithNChains returns a copy of c with NChains set.
func (c Config) WithNChains(n int) Config { c.NChains = n; return c }

// WithNChainsVariational returns a copy of c with NChainsVariational set.
func (c Config) WithNChainsVariational(n int) Config { c.NChainsVariational = n; return c }

// WithCheckpoint returns a copy of c with Checkpoint set.
func (c Config) WithCheckpoint(on bool) Config { c.Checkpoint = on; return c }

// WithCheckedRound returns a copy of c with CheckedRound set.
func (c Config) WithCheckedRound(round int) Config { c.CheckedRound = round; return c }

// WithMultithreaded returns a copy of c with Multithreaded set.
func (c Config) WithMultithreaded(on bool) Config { c.Multithreaded = on; return c }

// WithRecorderBuilders returns a copy of c with RecorderBuilders set.
func (c Config) WithRecorderBuilders(builders ...RecorderBuilder) Config {
	c.RecorderBuilders = builders
	return c
}

// IsVariational reports whether this run uses a variational leg.
func (c Config) IsVariational() bool { return c.NChainsVariational > 0 }

// TotalChains returns the total chain count across both legs.
func (c Config) TotalChains() int { return c.NChains + c.NChainsVariational }

// Validate checks the recognized options are internally consistent.
func (c Config) Validate() error {
	if c.NChains < 1 {
		return ErrInvalidNChains
	}
	if c.NRounds < 1 {
		return ErrInvalidNRounds
	}
	if c.NChainsVariational < 0 {
		return ErrNegativeVariational
	}
	if c.CheckedRound < 0 || c.CheckedRound > c.NRounds {
		return ErrInvalidConfig
	}
	return nil
}
