// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package replicas

import "errors"

// ErrPermutationViolation is returned when a store's chain fields do not
// form a permutation of 1..N.
var ErrPermutationViolation = errors.New("replicas: chains do not form a permutation of 1..N")
