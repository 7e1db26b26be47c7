// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDefaultMatchesSpecDefaults(t *testing.T) {
	c := Default()
	require.Equal(t, int64(1), c.Seed)
	require.Equal(t, 10, c.NRounds)
	require.Equal(t, 10, c.NChains)
	require.Equal(t, 0, c.NChainsVariational)
	require.Equal(t, 0, c.CheckedRound)
	require.False(t, c.IsVariational())
}

func TestWithVariationalSetsTotalChains(t *testing.T) {
	c := Default().WithNChains(5).WithNChainsVariational(5)
	require.True(t, c.IsVariational())
	require.Equal(t, 10, c.TotalChains())
}

func TestValidateRejectsBadValues(t *testing.T) {
	require.ErrorIs(t, Default().WithNChains(0).Validate(), ErrInvalidNChains)
	require.ErrorIs(t, Default().WithNRounds(0).Validate(), ErrInvalidNRounds)
	require.ErrorIs(t, Default().WithNChainsVariational(-1).Validate(), ErrNegativeVariational)
	require.ErrorIs(t, Default().WithCheckedRound(99).Validate(), ErrInvalidConfig)
}
