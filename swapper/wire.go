// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package swapper

import "github.com/luxfi/pt/utils/wrappers"

// RecordSize is the wire size of a SwapStat: two float64s (spec §6).
const RecordSize = 16

// EncodeSwapStat packs a SwapStat into its fixed 16-byte wire record.
func EncodeSwapStat(s SwapStat) []byte {
	p := wrappers.NewPacker(RecordSize)
	p.PackDouble(s.LogRatio)
	p.PackDouble(s.Uniform)
	return p.Bytes
}

// DecodeSwapStat unpacks a SwapStat from its fixed 16-byte wire record.
func DecodeSwapStat(b []byte) SwapStat {
	u := wrappers.NewUnpacker(b)
	return SwapStat{LogRatio: u.UnpackDouble(), Uniform: u.UnpackDouble()}
}
