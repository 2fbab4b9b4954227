// Package simd provides a portable, fixed-width byte-vector IR with
// runtime ISA dispatch. It follows the same write-once-dispatch-everywhere
// philosophy as Google's Highway C++ library (and this repo's origin as a
// Go port of it), but where Highway's vectors are *scalable* — sized to
// whatever the detected CPU's native width is — the vectors here are fixed:
// V128 is always 16 bytes, V256 always 32, V512 always 64, regardless of
// which ISA is detected. Codec algorithms (hex's 16-input/32-output
// expansion, Base64/Base32's 16-character decode blocks) are written
// against these fixed shapes. Every operation has a single pure-Go body;
// the token Best reports does not select a different implementation.
//
// Basic usage:
//
//	name := simd.Best().Name() // "avx2", "sse41", "neon", "scalar", ...
//	x := simd.LoadV128Unaligned(src)
//	y := simd.Swizzle128(table, x)
//	simd.StoreV128Unaligned(y, dst)
package simd

// V128 is an opaque 128-bit (16-byte) vector: an ordered sequence of 16
// unsigned bytes. Wider-lane reinterpretations (u16/u32/u64, signed
// counterparts) read the same underlying bits, little-endian within each
// lane. V128 carries no alignment; callers needing aligned load/store use
// the dedicated functions in memory.go.
type V128 struct {
	b [16]byte
}

// V256 is an opaque 256-bit (32-byte) vector. Its operations are pure Go
// over all 32 bytes whichever token is detected; Lo, Hi and V256FromHalves
// view it as a pair of V128 halves.
type V256 struct {
	b [32]byte
}

// V512 is an opaque 512-bit (64-byte) vector, used only where a codec needs
// to treat two V256 groups as a unit. None of the codecs in this module
// require it directly today; it exists so the IR's op menu stays uniform
// across all three widths named in the vector IR's data model.
type V512 struct {
	b [64]byte
}

// Bytes returns the vector's raw bytes as a fixed array (a copy).
func (v V128) Bytes() [16]byte { return v.b }

// Bytes returns the vector's raw bytes as a fixed array (a copy).
func (v V256) Bytes() [32]byte { return v.b }

// Bytes returns the vector's raw bytes as a fixed array (a copy).
func (v V512) Bytes() [64]byte { return v.b }

// ZeroV128 returns the all-zero 128-bit vector.
func ZeroV128() V128 { return V128{} }

// ZeroV256 returns the all-zero 256-bit vector.
func ZeroV256() V256 { return V256{} }

// ZeroV512 returns the all-zero 512-bit vector.
func ZeroV512() V512 { return V512{} }

// V128FromBytes builds a vector from exactly 16 bytes.
func V128FromBytes(b [16]byte) V128 { return V128{b: b} }

// V256FromBytes builds a vector from exactly 32 bytes.
func V256FromBytes(b [32]byte) V256 { return V256{b: b} }

// V512FromBytes builds a vector from exactly 64 bytes.
func V512FromBytes(b [64]byte) V512 { return V512{b: b} }

// Lo returns the lower 128-bit half of a 256-bit vector.
func (v V256) Lo() V128 {
	var out V128
	copy(out.b[:], v.b[:16])
	return out
}

// Hi returns the upper 128-bit half of a 256-bit vector.
func (v V256) Hi() V128 {
	var out V128
	copy(out.b[:], v.b[16:])
	return out
}

// V256FromHalves assembles a 256-bit vector from two 128-bit halves.
func V256FromHalves(lo, hi V128) V256 {
	var out V256
	copy(out.b[:16], lo.b[:])
	copy(out.b[16:], hi.b[:])
	return out
}

// AsU16 reinterprets the vector's bytes as little-endian uint16 lanes.
func (v V128) AsU16() [8]uint16 {
	var out [8]uint16
	for i := range out {
		out[i] = uint16(v.b[2*i]) | uint16(v.b[2*i+1])<<8
	}
	return out
}

// AsU32 reinterprets the vector's bytes as little-endian uint32 lanes.
func (v V128) AsU32() [4]uint32 {
	var out [4]uint32
	for i := range out {
		out[i] = uint32(v.b[4*i]) | uint32(v.b[4*i+1])<<8 | uint32(v.b[4*i+2])<<16 | uint32(v.b[4*i+3])<<24
	}
	return out
}

// U16x8FromLanes builds a V128 from 8 little-endian uint16 lanes.
func U16x8FromLanes(lanes [8]uint16) V128 {
	var out V128
	for i, x := range lanes {
		out.b[2*i] = byte(x)
		out.b[2*i+1] = byte(x >> 8)
	}
	return out
}

// U32x4FromLanes builds a V128 from 4 little-endian uint32 lanes.
func U32x4FromLanes(lanes [4]uint32) V128 {
	var out V128
	for i, x := range lanes {
		out.b[4*i] = byte(x)
		out.b[4*i+1] = byte(x >> 8)
		out.b[4*i+2] = byte(x >> 16)
		out.b[4*i+3] = byte(x >> 24)
	}
	return out
}

// AsU16 reinterprets the vector's bytes as little-endian uint16 lanes.
func (v V256) AsU16() [16]uint16 {
	var out [16]uint16
	for i := range out {
		out[i] = uint16(v.b[2*i]) | uint16(v.b[2*i+1])<<8
	}
	return out
}

// AsU64 reinterprets the vector's bytes as little-endian uint64 lanes.
func (v V256) AsU64() [4]uint64 {
	var out [4]uint64
	for i := range out {
		var x uint64
		for j := 0; j < 8; j++ {
			x |= uint64(v.b[8*i+j]) << (8 * j)
		}
		out[i] = x
	}
	return out
}

// U16x16FromLanes builds a V256 from 16 little-endian uint16 lanes.
func U16x16FromLanes(lanes [16]uint16) V256 {
	var out V256
	for i, x := range lanes {
		out.b[2*i] = byte(x)
		out.b[2*i+1] = byte(x >> 8)
	}
	return out
}

// U64x4FromLanes builds a V256 from 4 little-endian uint64 lanes.
func U64x4FromLanes(lanes [4]uint64) V256 {
	var out V256
	for i, x := range lanes {
		for j := 0; j < 8; j++ {
			out.b[8*i+j] = byte(x >> (8 * j))
		}
	}
	return out
}

// AsU64 reinterprets the vector's bytes as little-endian uint64 lanes.
func (v V128) AsU64() [2]uint64 {
	var out [2]uint64
	for i := range out {
		var x uint64
		for j := 0; j < 8; j++ {
			x |= uint64(v.b[8*i+j]) << (8 * j)
		}
		out[i] = x
	}
	return out
}

// U64x2FromLanes builds a V128 from 2 little-endian uint64 lanes.
func U64x2FromLanes(lanes [2]uint64) V128 {
	var out V128
	for i, x := range lanes {
		for j := 0; j < 8; j++ {
			out.b[8*i+j] = byte(x >> (8 * j))
		}
	}
	return out
}
