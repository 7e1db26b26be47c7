// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package entangle

import "errors"

// ErrPermutationViolation is returned when a Transmit/permuted-get/set call
// receives a destinations/keys set that is not, across all processes, a
// permutation of 1..N. Fatal per spec §7: the round is aborted and the
// error surfaces to the caller.
var ErrPermutationViolation = errors.New("entangle: destinations do not form a permutation of 1..N")

// ErrCommunicationFailure wraps a failure reported by the underlying
// Communicator. Per spec §7 this is surfaced, the round is lost, and it is
// not retried automatically by anything in this package.
var ErrCommunicationFailure = errors.New("entangle: communication failure")
