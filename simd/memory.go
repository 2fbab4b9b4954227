package simd

// This file provides the IR's memory operations: load/store (aligned and
// unaligned — the distinction is purely a documentation contract here,
// since Go slices carry no alignment guarantees the compiler can violate
// the way a misaligned native SIMD load could) and lane broadcast.

// LoadV128Unaligned reads the first 16 bytes of src into a vector. Panics
// if src has fewer than 16 bytes, the same out-of-bounds contract a slice
// index would give.
func LoadV128Unaligned(src []byte) V128 {
	var v V128
	copy(v.b[:], src[:16])
	return v
}

// LoadV128Aligned is semantically identical to LoadV128Unaligned; the
// split exists so callers can document which call sites assume alignment
// for a future hardware-backed lowering, mirroring the IR's "aligned and
// unaligned load/store" contract even though the pure-Go backend has no
// alignment fault to avoid.
func LoadV128Aligned(src []byte) V128 { return LoadV128Unaligned(src) }

// LoadV256Unaligned reads the first 32 bytes of src into a vector.
func LoadV256Unaligned(src []byte) V256 {
	var v V256
	copy(v.b[:], src[:32])
	return v
}

// LoadV256Aligned is semantically identical to LoadV256Unaligned (see LoadV128Aligned).
func LoadV256Aligned(src []byte) V256 { return LoadV256Unaligned(src) }

// StoreV128Unaligned writes all 16 bytes of v to dst. Panics if dst has
// fewer than 16 bytes.
func StoreV128Unaligned(v V128, dst []byte) { copy(dst[:16], v.b[:]) }

// StoreV128Aligned is semantically identical to StoreV128Unaligned.
func StoreV128Aligned(v V128, dst []byte) { StoreV128Unaligned(v, dst) }

// StoreV256Unaligned writes all 32 bytes of v to dst.
func StoreV256Unaligned(v V256, dst []byte) { copy(dst[:32], v.b[:]) }

// StoreV256Aligned is semantically identical to StoreV256Unaligned.
func StoreV256Aligned(v V256, dst []byte) { StoreV256Unaligned(v, dst) }

// BroadcastV128 returns a vector with every lane set to x.
func BroadcastV128(x byte) V128 {
	var v V128
	for i := range v.b {
		v.b[i] = x
	}
	return v
}

// BroadcastV256 returns a vector with every lane set to x.
func BroadcastV256(x byte) V256 {
	var v V256
	for i := range v.b {
		v.b[i] = x
	}
	return v
}

// BroadcastU16x8 returns a V128 with every 16-bit lane set to x.
func BroadcastU16x8(x uint16) V128 {
	var lanes [8]uint16
	for i := range lanes {
		lanes[i] = x
	}
	return U16x8FromLanes(lanes)
}

// BroadcastU32x4 returns a V128 with every 32-bit lane set to x.
func BroadcastU32x4(x uint32) V128 {
	var lanes [4]uint32
	for i := range lanes {
		lanes[i] = x
	}
	return U32x4FromLanes(lanes)
}
