package simd

// This file provides the IR's lane-wise compare menu. Every comparison
// follows the SIMD convention: a true lane reads as all-ones (0xFF at
// 8-bit width, 0xFFFF at 16-bit, 0xFFFFFFFF at 32-bit), a false lane as
// all-zeros — the shape the ALSW classifier's invalid-mask reduction
// (mask.go) expects.

// U8x16Eq compares two vectors lane-wise at 8-bit width for equality.
func U8x16Eq(a, b V128) V128 {
	var out V128
	for i := range out.b {
		if a.b[i] == b.b[i] {
			out.b[i] = 0xFF
		}
	}
	return out
}

// U8x16LessThan compares two vectors lane-wise at 8-bit width, unsigned.
func U8x16LessThan(a, b V128) V128 {
	var out V128
	for i := range out.b {
		if a.b[i] < b.b[i] {
			out.b[i] = 0xFF
		}
	}
	return out
}

// I8x16LessThan compares two vectors lane-wise at 8-bit width, signed.
func I8x16LessThan(a, b V128) V128 {
	var out V128
	for i := range out.b {
		if int8(a.b[i]) < int8(b.b[i]) {
			out.b[i] = 0xFF
		}
	}
	return out
}

// U16x8Eq compares two vectors lane-wise at 16-bit width for equality.
func U16x8Eq(a, b V128) V128 {
	la, lb := a.AsU16(), b.AsU16()
	var out [8]uint16
	for i := range out {
		if la[i] == lb[i] {
			out[i] = 0xFFFF
		}
	}
	return U16x8FromLanes(out)
}

// U16x8LessThan compares two vectors lane-wise at 16-bit width, unsigned.
func U16x8LessThan(a, b V128) V128 {
	la, lb := a.AsU16(), b.AsU16()
	var out [8]uint16
	for i := range out {
		if la[i] < lb[i] {
			out[i] = 0xFFFF
		}
	}
	return U16x8FromLanes(out)
}

// I16x8LessThan compares two vectors lane-wise at 16-bit width, signed.
func I16x8LessThan(a, b V128) V128 {
	la, lb := a.AsU16(), b.AsU16()
	var out [8]uint16
	for i := range out {
		if int16(la[i]) < int16(lb[i]) {
			out[i] = 0xFFFF
		}
	}
	return U16x8FromLanes(out)
}

// U32x4Eq compares two vectors lane-wise at 32-bit width for equality.
func U32x4Eq(a, b V128) V128 {
	la, lb := a.AsU32(), b.AsU32()
	var out [4]uint32
	for i := range out {
		if la[i] == lb[i] {
			out[i] = 0xFFFFFFFF
		}
	}
	return U32x4FromLanes(out)
}

// U32x4LessThan compares two vectors lane-wise at 32-bit width, unsigned.
func U32x4LessThan(a, b V128) V128 {
	la, lb := a.AsU32(), b.AsU32()
	var out [4]uint32
	for i := range out {
		if la[i] < lb[i] {
			out[i] = 0xFFFFFFFF
		}
	}
	return U32x4FromLanes(out)
}

// I32x4LessThan compares two vectors lane-wise at 32-bit width, signed.
func I32x4LessThan(a, b V128) V128 {
	la, lb := a.AsU32(), b.AsU32()
	var out [4]uint32
	for i := range out {
		if int32(la[i]) < int32(lb[i]) {
			out[i] = 0xFFFFFFFF
		}
	}
	return U32x4FromLanes(out)
}
