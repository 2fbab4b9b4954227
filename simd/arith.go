package simd

// This file provides the IR's lane-arithmetic operation menu: wrapping
// add/sub, saturating sub, signed 16/32-bit mul_lo, and compile-time-
// constant logical shifts on 16/32-bit lanes — the set the ALSW
// classify/decode primitive and the codec bit-twiddles are built from.

// U8x16Add adds two vectors lane-wise at 8-bit width, wrapping on overflow.
func U8x16Add(a, b V128) V128 {
	var out V128
	for i := range out.b {
		out.b[i] = a.b[i] + b.b[i]
	}
	return out
}

// U8x16Sub subtracts two vectors lane-wise at 8-bit width, wrapping on overflow.
func U8x16Sub(a, b V128) V128 {
	var out V128
	for i := range out.b {
		out.b[i] = a.b[i] - b.b[i]
	}
	return out
}

// U8x16SubSaturate subtracts two vectors lane-wise at 8-bit width, clamping
// to 0 instead of wrapping (unsigned saturation).
func U8x16SubSaturate(a, b V128) V128 {
	var out V128
	for i := range out.b {
		if a.b[i] < b.b[i] {
			out.b[i] = 0
		} else {
			out.b[i] = a.b[i] - b.b[i]
		}
	}
	return out
}

// I8x16SubSaturate subtracts two vectors lane-wise at 8-bit width, treating
// lanes as signed and clamping to [-128, 127].
func I8x16SubSaturate(a, b V128) V128 {
	var out V128
	for i := range out.b {
		r := int16(int8(a.b[i])) - int16(int8(b.b[i]))
		out.b[i] = byte(int8(clampI16(r, -128, 127)))
	}
	return out
}

// U16x8SubSaturate subtracts two vectors lane-wise at 16-bit width, clamping to 0.
func U16x8SubSaturate(a, b V128) V128 {
	la, lb := a.AsU16(), b.AsU16()
	var out [8]uint16
	for i := range out {
		if la[i] < lb[i] {
			out[i] = 0
		} else {
			out[i] = la[i] - lb[i]
		}
	}
	return U16x8FromLanes(out)
}

// U16x8MulLo multiplies two vectors lane-wise at 16-bit width, keeping the
// low 16 bits of each product (PMULLW semantics).
func U16x8MulLo(a, b V128) V128 {
	la, lb := a.AsU16(), b.AsU16()
	var out [8]uint16
	for i := range out {
		out[i] = la[i] * lb[i]
	}
	return U16x8FromLanes(out)
}

// U32x4MulLo multiplies two vectors lane-wise at 32-bit width, keeping the
// low 32 bits of each product.
func U32x4MulLo(a, b V128) V128 {
	la, lb := a.AsU32(), b.AsU32()
	var out [4]uint32
	for i := range out {
		out[i] = la[i] * lb[i]
	}
	return U32x4FromLanes(out)
}

// U16x8ShiftLeft shifts each 16-bit lane left by a compile-time-constant
// count.
func U16x8ShiftLeft(v V128, count uint) V128 {
	lanes := v.AsU16()
	for i := range lanes {
		lanes[i] <<= count
	}
	return U16x8FromLanes(lanes)
}

// U16x8ShiftRight logically shifts each 16-bit lane right by a compile-time
// constant count.
func U16x8ShiftRight(v V128, count uint) V128 {
	lanes := v.AsU16()
	for i := range lanes {
		lanes[i] >>= count
	}
	return U16x8FromLanes(lanes)
}

// U32x4ShiftRight logically shifts each 32-bit lane right by a compile-time
// constant count.
func U32x4ShiftRight(v V128, count uint) V128 {
	lanes := v.AsU32()
	for i := range lanes {
		lanes[i] >>= count
	}
	return U32x4FromLanes(lanes)
}

// U16x16ShiftLeft is the 256-bit analogue of U16x8ShiftLeft.
func U16x16ShiftLeft(v V256, count uint) V256 {
	lanes := v.AsU16()
	for i := range lanes {
		lanes[i] <<= count
	}
	return U16x16FromLanes(lanes)
}

// U16x16ShiftRight is the 256-bit analogue of U16x8ShiftRight.
func U16x16ShiftRight(v V256, count uint) V256 {
	lanes := v.AsU16()
	for i := range lanes {
		lanes[i] >>= count
	}
	return U16x16FromLanes(lanes)
}

func clampI16(v, lo, hi int16) int16 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
