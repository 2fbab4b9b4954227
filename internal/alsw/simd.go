package alsw

import "github.com/vecbyte/simdcodec/simd"

// checkLUTVec and decodeLUTVec pack a Table's 16-byte LUTs into the V128
// shuffle-table operand Swizzle128 expects.
func (t Table) checkLUTVec() simd.V128  { return simd.V128FromBytes(t.CheckLUT) }
func (t Table) decodeLUTVec() simd.V128 { return simd.V128FromBytes(t.DecodeLUT) }

// highNibbles extracts x>>4 for every byte lane, the index vector both
// Swizzle128 calls below address their LUT with.
func highNibbles(x simd.V128) simd.V128 {
	b := x.Bytes()
	var out [16]byte
	for i, v := range b {
		out[i] = v >> 4
	}
	return simd.V128FromBytes(out)
}

// ClassifyVec16 runs Table.Classify over 16 bytes in parallel, ALSW-style:
// one shuffle to fetch each byte's check offset and one vector add. Returns
// the invalid-mask vector (high bit set per invalid lane) rather than a
// bool, leaving the mask reduction to the caller per the IR's "reduce last"
// convention.
func (t Table) ClassifyVec16(x simd.V128) simd.V128 {
	h := highNibbles(x)
	offsets := simd.Swizzle128(t.checkLUTVec(), h)
	return simd.U8x16Add(offsets, x)
}

// DecodeVec16 is ClassifyVec16's decode-side counterpart: it returns the raw
// decode-offset-plus-x vector, whose low decodedBits bits are the decoded
// value wherever the corresponding ClassifyVec16 lane is valid.
func (t Table) DecodeVec16(x simd.V128) simd.V128 {
	h := highNibbles(x)
	offsets := simd.Swizzle128(t.decodeLUTVec(), h)
	return simd.U8x16Add(offsets, x)
}

// DecodeASCII16 classifies and decodes 16 ASCII bytes at once. It reports
// ok=false, leaving the returned vector's contents unspecified, if any byte
// failed to classify — the decode_ascii16 contract from the ALSW primitive.
func (t Table) DecodeASCII16(x simd.V128) (decoded simd.V128, ok bool) {
	invalid := t.ClassifyVec16(x)
	decoded = t.DecodeVec16(x)
	return decoded, !simd.U8x16HighBitAny(invalid)
}

// DecodeASCII32 is DecodeASCII16 widened to 32 bytes: it runs DecodeASCII16
// on each 16-byte half with the same 16-entry tables.
func (t Table) DecodeASCII32(x simd.V256) (decoded simd.V256, ok bool) {
	lo, hi := x.Lo(), x.Hi()
	loOut, loOK := t.DecodeASCII16(lo)
	hiOut, hiOK := t.DecodeASCII16(hi)
	return simd.V256FromHalves(loOut, hiOut), loOK && hiOK
}
