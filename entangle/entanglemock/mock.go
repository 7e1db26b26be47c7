// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package entanglemock provides a hand-rolled Communicator test double, used
// by the entangle package's unit tests that need to control or inspect
// individual AllToAll rounds without standing up a Hub.
package entanglemock

import (
	"context"
	"testing"
)

// Communicator is a mock implementation of entangle.Communicator.
type Communicator struct {
	T *testing.T

	RankV int
	SizeV int

	CantAllToAll bool
	AllToAllF    func(ctx context.Context, outgoing [][]byte) ([][]byte, error)
}

// New returns a Communicator mock reporting the given rank and size, and
// failing the test if AllToAll is called without AllToAllF set.
func New(t *testing.T, rank, size int) *Communicator {
	return &Communicator{T: t, RankV: rank, SizeV: size, CantAllToAll: true}
}

func (c *Communicator) Rank() int { return c.RankV }
func (c *Communicator) Size() int { return c.SizeV }

func (c *Communicator) AllToAll(ctx context.Context, outgoing [][]byte) ([][]byte, error) {
	if c.AllToAllF != nil {
		return c.AllToAllF(ctx, outgoing)
	}
	if c.CantAllToAll && c.T != nil {
		c.T.Fatal("unexpected AllToAll")
	}
	return nil, nil
}
