package simd

// This file provides the IR's mask-reduction menu: the boolean folds the
// codec validators use to turn a per-byte invalid-mask vector into a
// single ok/err verdict without ever materializing a Go bool slice.

// Mask8x16All reports whether every byte in v has its high bit set.
func Mask8x16All(v V128) bool {
	for _, b := range v.b {
		if b&0x80 == 0 {
			return false
		}
	}
	return true
}

// Mask8x32All is the 256-bit analogue of Mask8x16All.
func Mask8x32All(v V256) bool {
	for _, b := range v.b {
		if b&0x80 == 0 {
			return false
		}
	}
	return true
}

// U8x16HighBitAny reports whether any byte in v has its high bit set —
// Base64/Base32/hex decode's "did any symbol fail to classify" check.
func U8x16HighBitAny(v V128) bool {
	for _, b := range v.b {
		if b&0x80 != 0 {
			return true
		}
	}
	return false
}

// U8x32HighBitAny is the 256-bit analogue of U8x16HighBitAny.
func U8x32HighBitAny(v V256) bool {
	for _, b := range v.b {
		if b&0x80 != 0 {
			return true
		}
	}
	return false
}

// U8x16AnyZero reports whether any byte in v is exactly zero.
func U8x16AnyZero(v V128) bool {
	for _, b := range v.b {
		if b == 0 {
			return true
		}
	}
	return false
}
