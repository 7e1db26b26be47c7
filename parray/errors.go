// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package parray

import "errors"

// ErrIndexOutOfRange is returned when Get is asked for a global index
// outside [1, N].
var ErrIndexOutOfRange = errors.New("parray: index out of range")
