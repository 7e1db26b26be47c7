// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pt

import "errors"

// ErrInvolutionViolation is returned when a round's SwapGraph is not its own
// inverse for some pair the driver actually touched: PartnerChain(partner)
// != chain. This can only happen if a custom Graph implementation is wrong,
// since swapgraph.DEO and swapgraph.VariationalDEO are involutions by
// construction.
var ErrInvolutionViolation = errors.New("pt: swap graph is not an involution for this pair")

// ErrDecisionDisagreement is returned by the checked-round comparison (spec
// §7): the same round replayed through a second, independent code path
// produced a different accept/reject outcome for some pair. It always
// indicates either divergent RNG state or a non-deterministic SwapDecision,
// never a legitimate run outcome.
var ErrDecisionDisagreement = errors.New("pt: checked round disagreed with the reference decision")
