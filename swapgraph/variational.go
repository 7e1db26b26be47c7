// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package swapgraph

// VariationalDEO builds the swap graph for a variational tempering's
// concatenated chain space: nFixed fixed-leg chains followed by nVar
// variational-leg chains, global index nFixed+1 being the variational leg's
// own last chain (spec §4.6's "reverse(variational)" concatenation already
// places both legs' target ends, beta == 1, next to each other in the middle
// of the global index space).
//
// This resolves the open question the reference implementation leaves
// unspecified (spec §9, "the variational topology's exact between-leg swap
// cadence"): since the reversed concatenation already folds the two legs'
// target ends together, plain DEO over the full nFixed+nVar global index
// space gives every adjacent pair, including the fixed/variational fold, a
// swap opportunity on the same even/odd cadence as a single-leg run. No
// separate "fold round" is needed.
func VariationalDEO(round, nFixed, nVar int) Graph {
	return DEO(round, nFixed+nVar)
}
