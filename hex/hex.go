// Package hex implements ASCII hex encoding and decoding (upper and lower
// case alphabets, case-insensitive decode) on top of the vector IR in
// package simd and the ALSW classify/decode primitive in internal/alsw.
//
// Grounded on vsimd/src/hex.rs: encode_bytes16/32 (nibble split + zip +
// double-alphabet shuffle), unhex (scalar 256-entry table), and the
// HexAlsw check_hash/decode_hash family (SIMD decode path). The exact
// Rust LUT byte values are produced by a macro (impl_alsw!) not present
// in the retrieved source, so the table here is re-derived with
// internal/alsw.DeriveAliased rather than hand-copied; DESIGN.md records
// this substitution.
package hex

import (
	"github.com/vecbyte/simdcodec/internal/alsw"
	"github.com/vecbyte/simdcodec/simd"
)

const (
	upperAlphabet = "0123456789ABCDEF"
	lowerAlphabet = "0123456789abcdef"
)

var unhexTable = buildUnhexTable()

func buildUnhexTable() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = 0xFF
	}
	for v, c := range []byte("0123456789") {
		t[c] = byte(v)
	}
	for v, c := range []byte("abcdef") {
		t[c] = byte(10 + v)
	}
	for v, c := range []byte("ABCDEF") {
		t[c] = byte(10 + v)
	}
	return t
}

var decodeTable = func() alsw.Table {
	valueOf := make(map[byte]byte, 22)
	for x, v := range unhexTable {
		if v != 0xFF {
			valueOf[byte(x)] = v
		}
	}
	tbl, err := alsw.DeriveAliased(valueOf, 4)
	if err != nil {
		panic("hex: failed to derive ALSW table: " + err.Error())
	}
	return tbl
}()

// unhex maps a single ASCII byte to its 0..15 value, or 0xFF if x is not a
// hex digit. Mirrors vsimd's const-eval UNHEX_TABLE exactly.
func unhex(x byte) byte { return unhexTable[x] }

// EncodedLen returns the number of ASCII bytes produced by encoding n raw
// bytes: exactly 2n, per the length invariant shared by every codec here.
func EncodedLen(n int) int { return 2 * n }

// DecodedLen returns the number of raw bytes decoded from m ASCII hex
// bytes. Odd m has no valid decoded length; callers must still call Decode
// to get the precise error.
func DecodedLen(m int) int { return m / 2 }

// Encode writes the lowercase hex encoding of src into dst and returns the
// number of bytes written. dst must have length >= EncodedLen(len(src)).
func Encode(dst, src []byte) int { return encode(dst, src, lowerAlphabet) }

// EncodeUpper writes the uppercase hex encoding of src into dst.
func EncodeUpper(dst, src []byte) int { return encode(dst, src, upperAlphabet) }

func encode(dst, src []byte, alphabet string) int {
	_ = dst[:EncodedLen(len(src))] // bounds check hoisted once, teacher's slicing idiom
	n := 0
	i := 0
	for ; i+16 <= len(src); i += 16 {
		encodeBlock16(dst[n:n+32], src[i:i+16], alphabet)
		n += 32
	}
	for ; i < len(src); i++ {
		b := src[i]
		dst[n] = alphabet[b>>4]
		dst[n+1] = alphabet[b&0x0F]
		n += 2
	}
	return n
}

// encodeBlock16 expands 16 input bytes to 32 output hex characters after
// encode_bytes16's nibble-split strategy: split each byte into its high and
// low nibble, look both nibble vectors up in the 16-entry alphabet with
// Swizzle128, then interleave the two results byte by byte into dst.
func encodeBlock16(dst []byte, src []byte, alphabet string) {
	var block [16]byte
	copy(block[:], src)
	x := simd.V128FromBytes(block)

	var lut [16]byte
	copy(lut[:], alphabet)
	lutVec := simd.V128FromBytes(lut)

	raw := x.Bytes()
	var hiNibbles, loNibbles [16]byte
	for i := 0; i < 16; i++ {
		hiNibbles[i] = raw[i] >> 4
		loNibbles[i] = raw[i] & 0x0F
	}

	hiOut := simd.Swizzle128(lutVec, simd.V128FromBytes(hiNibbles))
	loOut := simd.Swizzle128(lutVec, simd.V128FromBytes(loNibbles))

	hiBytes, loBytes := hiOut.Bytes(), loOut.Bytes()
	for i := 0; i < 16; i++ {
		dst[2*i] = hiBytes[i]
		dst[2*i+1] = loBytes[i]
	}
}

// Error reports a malformed hex string: odd length, or a byte outside the
// [0-9A-Fa-f] alphabet.
type Error struct{ msg string }

func (e *Error) Error() string { return "hex: " + e.msg }

var (
	errOddLength = &Error{"odd length input"}
	errInvalid   = &Error{"invalid hex digit"}
)

// Decode writes the raw bytes decoded from src into dst and returns the
// number of bytes written, or an error if src has odd length or contains a
// non-hex-digit byte. dst must have length >= DecodedLen(len(src)).
func Decode(dst, src []byte) (int, error) {
	if len(src)%2 != 0 {
		return 0, errOddLength
	}
	_ = dst[:DecodedLen(len(src))]

	n := 0
	i := 0
	for ; i+32 <= len(src); i += 32 {
		if !decodeBlock32(dst[n:n+16], src[i:i+32]) {
			return 0, errInvalid
		}
		n += 16
	}
	for ; i < len(src); i += 2 {
		hi := unhex(src[i])
		lo := unhex(src[i+1])
		if hi == 0xFF || lo == 0xFF {
			return 0, errInvalid
		}
		dst[n] = hi<<4 | lo
		n++
	}
	return n, nil
}

// decodeBlock32 decodes 32 ASCII hex bytes into 16 raw bytes via the ALSW
// primitive's DecodeASCII32, reporting false if any byte is invalid.
func decodeBlock32(dst []byte, src []byte) bool {
	var block [32]byte
	copy(block[:], src)
	x := simd.V256FromBytes(block)
	decoded, ok := decodeTable.DecodeASCII32(x)
	if !ok {
		return false
	}
	raw := mergeNibbles32(decoded)
	copy(dst, raw[:])
	return true
}

// mergeNibbles32 combines the 32 decoded-4-bit lanes (high nibble first,
// adjacent pairs) into 16 raw bytes: merge_bits's shift-and-or, specialized
// to this package's byte-indexed layout instead of vsimd's lane-wise one.
func mergeNibbles32(decoded simd.V256) [16]byte {
	b := decoded.Bytes()
	var out [16]byte
	for i := 0; i < 16; i++ {
		out[i] = (b[2*i]&0x0F)<<4 | (b[2*i+1] & 0x0F)
	}
	return out
}

// Check reports whether src is a well-formed hex string without decoding
// it: even length and every byte in [0-9A-Fa-f].
func Check(src []byte) bool {
	if len(src)%2 != 0 {
		return false
	}
	for _, b := range src {
		if !decodeTable.Classify(b) {
			return false
		}
	}
	return true
}

// EncodeToString is the string-returning convenience wrapper around Encode.
func EncodeToString(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	Encode(dst, src)
	return string(dst)
}

// EncodeUpperToString is EncodeToString's uppercase counterpart.
func EncodeUpperToString(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	EncodeUpper(dst, src)
	return string(dst)
}

// DecodeString is the string-accepting convenience wrapper around Decode.
func DecodeString(s string) ([]byte, error) {
	dst := make([]byte, DecodedLen(len(s)))
	n, err := Decode(dst, []byte(s))
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}
