package simd

// This file provides the IR's min/max menu: unsigned and signed, at
// 8/16/32-bit lane widths.

// U8x16Min returns the lane-wise unsigned minimum.
func U8x16Min(a, b V128) V128 {
	var out V128
	for i := range out.b {
		out.b[i] = minByte(a.b[i], b.b[i])
	}
	return out
}

// U8x16Max returns the lane-wise unsigned maximum.
func U8x16Max(a, b V128) V128 {
	var out V128
	for i := range out.b {
		out.b[i] = maxByte(a.b[i], b.b[i])
	}
	return out
}

// I8x16Min returns the lane-wise signed minimum.
func I8x16Min(a, b V128) V128 {
	var out V128
	for i := range out.b {
		if int8(a.b[i]) < int8(b.b[i]) {
			out.b[i] = a.b[i]
		} else {
			out.b[i] = b.b[i]
		}
	}
	return out
}

// I8x16Max returns the lane-wise signed maximum.
func I8x16Max(a, b V128) V128 {
	var out V128
	for i := range out.b {
		if int8(a.b[i]) > int8(b.b[i]) {
			out.b[i] = a.b[i]
		} else {
			out.b[i] = b.b[i]
		}
	}
	return out
}

// U16x8Min returns the lane-wise unsigned minimum at 16-bit width.
func U16x8Min(a, b V128) V128 {
	la, lb := a.AsU16(), b.AsU16()
	var out [8]uint16
	for i := range out {
		if la[i] < lb[i] {
			out[i] = la[i]
		} else {
			out[i] = lb[i]
		}
	}
	return U16x8FromLanes(out)
}

// U32x4Min returns the lane-wise unsigned minimum at 32-bit width.
func U32x4Min(a, b V128) V128 {
	la, lb := a.AsU32(), b.AsU32()
	var out [4]uint32
	for i := range out {
		if la[i] < lb[i] {
			out[i] = la[i]
		} else {
			out[i] = lb[i]
		}
	}
	return U32x4FromLanes(out)
}

func minByte(a, b byte) byte {
	if a < b {
		return a
	}
	return b
}

func maxByte(a, b byte) byte {
	if a > b {
		return a
	}
	return b
}
