package simd

// This file provides the IR's byte-permutation menu: PSHUFB-style table
// swizzles, lane zip/unzip, block concatenation, and byteswaps — the
// primitives the ALSW classifier and the Base64/hex SIMD kernels are built
// from. Adapted from the teacher's generic TableLookupBytes/ZipLower/
// ZipUpper/ConcatLower* family, specialized to fixed-width byte vectors
// instead of runtime-scalable lanes.

// Swizzle128 performs a PSHUFB-style byte permutation: each output lane i
// is table[idx[i]&0xF] unless idx[i]'s high bit is set, in which case the
// output lane is zero. This is the operation the ALSW primitive uses to
// classify and decode 16 ASCII bytes in parallel.
func Swizzle128(table, idx V128) V128 {
	var out V128
	for i, ix := range idx.b {
		if ix&0x80 != 0 {
			out.b[i] = 0
			continue
		}
		out.b[i] = table.b[ix&0x0F]
	}
	return out
}

// Swizzle256x2 extends Swizzle128 to a 32-entry table, the AVX2/NEON
// (vqtbl2q_u8) form: each output lane i is looked up in whichever 16-byte
// half of table idx[i]'s low 5 bits select, with the same high-bit-means-
// zero rule. On backends without a native 32-entry table instruction this
// is emulated as two 16-entry lookups, which is exactly what this function
// does regardless of token.
func Swizzle256x2(table V256, idx V256) V256 {
	lo, hi := table.Lo(), table.Hi()
	var out V256
	for i, ix := range idx.b {
		if ix&0x80 != 0 {
			out.b[i] = 0
			continue
		}
		sel := ix & 0x1F
		if sel < 16 {
			out.b[i] = lo.b[sel]
		} else {
			out.b[i] = hi.b[sel-16]
		}
	}
	return out
}

// U8x16x2ZipLo interleaves the low bytes of each 16-bit lane pair from a
// and b: out[2i] = a[i], out[2i+1] = b[i] for i in [0,8).
func U8x16x2ZipLo(a, b V128) V128 {
	var out V128
	for i := 0; i < 8; i++ {
		out.b[2*i] = a.b[i]
		out.b[2*i+1] = b.b[i]
	}
	return out
}

// U8x16x2ZipHi interleaves the high bytes of each 16-bit lane pair from a
// and b: out[2i] = a[8+i], out[2i+1] = b[8+i].
func U8x16x2ZipHi(a, b V128) V128 {
	var out V128
	for i := 0; i < 8; i++ {
		out.b[2*i] = a.b[8+i]
		out.b[2*i+1] = b.b[8+i]
	}
	return out
}

// V128x2ZipLo interleaves whole V128 lanes of a 256-bit-as-pair value: it
// treats a and b as single "lanes" and places a's low half then b's low
// half.
func V128x2ZipLo(a, b V256) V256 { return V256FromHalves(a.Lo(), b.Lo()) }

// V128x2ZipHi is the upper-half counterpart of V128x2ZipLo.
func V128x2ZipHi(a, b V256) V256 { return V256FromHalves(a.Hi(), b.Hi()) }

// U64x2ZipLo interleaves the low 64-bit lanes of a and b: out = [a0, b0].
func U64x2ZipLo(a, b V128) V128 {
	la, lb := a.AsU64(), b.AsU64()
	return U64x2FromLanes([2]uint64{la[0], lb[0]})
}

// U64x4Permute reorders the four 64-bit lanes of v according to a 2-bit-
// per-lane immediate (the VPERMQ convention): out[i] = v[(imm>>(2*i))&3].
func U64x4Permute(v V256, imm uint8) V256 {
	lanes := v.AsU64()
	var out [4]uint64
	for i := range out {
		sel := (imm >> uint(2*i)) & 0x3
		out[i] = lanes[sel]
	}
	return U64x4FromLanes(out)
}

// U8x8UnzipEven takes the even-indexed bytes of a followed by the
// even-indexed bytes of b, each truncated to their low 8 bytes.
func U8x8UnzipEven(a, b V128) [8]byte {
	var out [8]byte
	for i := 0; i < 4; i++ {
		out[i] = a.b[2*i]
		out[4+i] = b.b[2*i]
	}
	return out
}

// U8x16UnzipEven takes the even-indexed bytes of a followed by the
// even-indexed bytes of b.
func U8x16UnzipEven(a, b V128) V128 {
	var out V128
	for i := 0; i < 8; i++ {
		out.b[i] = a.b[2*i]
		out.b[8+i] = b.b[2*i]
	}
	return out
}

// U8x32UnzipEven takes the even-indexed bytes of a followed by the
// even-indexed bytes of b, at 256-bit width.
func U8x32UnzipEven(a, b V256) V256 {
	var out V256
	for i := 0; i < 16; i++ {
		out.b[i] = a.b[2*i]
		out.b[16+i] = b.b[2*i]
	}
	return out
}

// U64x4UnzipEven takes the even-indexed 64-bit lanes of a followed by the
// even-indexed 64-bit lanes of b.
func U64x4UnzipEven(a, b V256) V256 {
	la, lb := a.AsU64(), b.AsU64()
	return U64x4FromLanes([4]uint64{la[0], la[2], lb[0], lb[2]})
}

// ConcatLowerLower concatenates the lower halves of two V256 vectors.
func ConcatLowerLower(a, b V256) V256 { return V256FromHalves(a.Lo(), b.Lo()) }

// ConcatUpperUpper concatenates the upper halves of two V256 vectors.
func ConcatUpperUpper(a, b V256) V256 { return V256FromHalves(a.Hi(), b.Hi()) }

// ByteswapU16x8 reverses the byte order within each 16-bit lane.
func ByteswapU16x8(v V128) V128 {
	lanes := v.AsU16()
	for i, x := range lanes {
		lanes[i] = x>>8 | x<<8
	}
	return U16x8FromLanes(lanes)
}

// ByteswapU32x4 reverses the byte order within each 32-bit lane.
func ByteswapU32x4(v V128) V128 {
	lanes := v.AsU32()
	for i, x := range lanes {
		lanes[i] = x>>24 | (x>>8)&0xFF00 | (x<<8)&0xFF0000 | x<<24
	}
	return U32x4FromLanes(lanes)
}

// ByteswapU64x2 reverses the byte order within each 64-bit lane.
func ByteswapU64x2(v V128) V128 {
	lanes := v.AsU64()
	for i, x := range lanes {
		var r uint64
		for j := 0; j < 8; j++ {
			r = r<<8 | (x & 0xFF)
			x >>= 8
		}
		lanes[i] = r
	}
	return U64x2FromLanes(lanes)
}
