// Package base32 implements the two RFC 4648 Base32 alphabets (standard
// A-Z2-7 and extended-hex 0-9A-V), padded and unpadded, with case-
// insensitive decoding, layered on the ALSW primitive in internal/alsw.
//
// Grounded on base32-simd's codec shape (alphabet + inverse table + padding
// policy) and error type, mirrored here from base32-simd/src/error.rs; the
// 5-bit field bit-twiddling mirrors base64-simd's 6-bit scheme one width
// down, per §4.5's "decoder algorithm mirrors Base64 with 5-bit fields
// grouped 8→5."
package base32

import (
	"github.com/vecbyte/simdcodec/internal/alsw"
	"github.com/vecbyte/simdcodec/simd"
)

// Codec is an immutable Base32 variant: an alphabet and a padding policy.
type Codec struct {
	alphabet [32]byte
	inverse  alsw.Table
	padded   bool
}

func newCodec(alphabet string, padded bool) Codec {
	var a [32]byte
	copy(a[:], alphabet)
	valueOf := make(map[byte]byte, 64)
	for v, c := range []byte(alphabet) {
		lower := c
		if lower >= 'A' && lower <= 'Z' {
			lower = lower - 'A' + 'a'
		}
		upper := c
		if upper >= 'a' && upper <= 'z' {
			upper = upper - 'a' + 'A'
		}
		valueOf[lower] = byte(v)
		valueOf[upper] = byte(v)
	}
	tbl, err := alsw.DeriveAliased(valueOf, 5)
	if err != nil {
		panic("base32: failed to derive ALSW table: " + err.Error())
	}
	return Codec{alphabet: a, inverse: tbl, padded: padded}
}

const (
	standardAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	hexAlphabet      = "0123456789ABCDEFGHIJKLMNOPQRSTUV"
)

var (
	STANDARD      = newCodec(standardAlphabet, true)
	StandardNoPad = newCodec(standardAlphabet, false)
	HEX           = newCodec(hexAlphabet, true)
	HEXNoPad      = newCodec(hexAlphabet, false)
)

const padByte = '='

// padForResidue maps n mod 5 to the number of trailing '=' a padded
// encoding uses, per §4.5: 0/1/3/4/6 padding for residues 0/4/3/2/1.
var padForResidue = [5]int{0: 0, 1: 6, 2: 4, 3: 3, 4: 1}

// charsForResidue maps n mod 5 to the number of output characters the
// final partial group produces.
var charsForResidue = [5]int{0: 0, 1: 2, 2: 4, 3: 5, 4: 7}

// Error reports a malformed Base32 input.
type Error struct{ msg string }

func (e *Error) Error() string { return "base32: " + e.msg }

var (
	errBadLength  = &Error{"invalid encoded length"}
	errBadPadding = &Error{"invalid padding"}
	errInvalid    = &Error{"invalid byte in encoded data"}
)

// EncodedLen returns the number of ASCII bytes produced by encoding n raw
// bytes under this codec's padding policy.
func (c Codec) EncodedLen(n int) int {
	if c.padded {
		return 8 * ((n + 4) / 5)
	}
	full := n / 5 * 8
	return full + charsForResidue[n%5]
}

// Encode writes the Base32 encoding of src into dst and returns the number
// of bytes written.
func (c Codec) Encode(dst, src []byte) int {
	n := 0
	i := 0
	for ; i+5 <= len(src); i += 5 {
		n += c.encodeGroup(dst[n:n+8], src[i:i+5], 5)
	}
	if rem := len(src) - i; rem > 0 {
		var block [5]byte
		copy(block[:], src[i:])
		chars := charsForResidue[rem]
		n += c.encodeGroup(dst[n:n+chars], block[:], rem)
		if c.padded {
			for p := 0; p < padForResidue[rem]; p++ {
				dst[n] = padByte
				n++
			}
		}
	}
	return n
}

// encodeGroup encodes up to 5 raw bytes (padded with zeros beyond rem) into
// the alphabet characters a full or partial group produces, writing only
// the charsForResidue[rem] (or 8, for a full group) significant characters.
func (c Codec) encodeGroup(dst, block []byte, rem int) int {
	var b [5]byte
	copy(b[:], block)
	fields := [8]byte{
		b[0] >> 3,
		(b[0]&0x07)<<2 | b[1]>>6,
		(b[1] >> 1) & 0x1F,
		(b[1]&0x01)<<4 | b[2]>>4,
		(b[2]&0x0F)<<1 | b[3]>>7,
		(b[3] >> 2) & 0x1F,
		(b[3]&0x03)<<3 | b[4]>>5,
		b[4] & 0x1F,
	}
	n := 8
	if rem < 5 {
		n = charsForResidue[rem]
	}
	for i := 0; i < n; i++ {
		dst[i] = c.alphabet[fields[i]]
	}
	return n
}

// Decode writes the raw bytes decoded from src into dst and returns the
// number of bytes written, or an error.
func (c Codec) Decode(dst, src []byte) (int, error) {
	body := src
	if c.padded {
		if len(src)%8 != 0 {
			return 0, errBadLength
		}
		m := len(src)
		pad := 0
		for pad < m && src[m-1-pad] == padByte {
			pad++
		}
		if !validPadCount(pad) {
			return 0, errBadPadding
		}
		body = src[:m-pad]
	}

	n := 0
	i := 0
	for ; i+16 <= len(body); i += 16 {
		if !c.decodeBlock16(dst[n:n+10], body[i:i+16]) {
			return 0, errInvalid
		}
		n += 10
	}
	for ; i+8 <= len(body); i += 8 {
		written, err := c.decodeGroup(dst[n:n+5], body[i:i+8], 8)
		if err != nil {
			return 0, err
		}
		n += written
	}
	if rem := len(body) - i; rem > 0 {
		bytesOut, ok := bytesForChars(rem)
		if !ok {
			return 0, errBadLength
		}
		written, err := c.decodeGroup(dst[n:n+bytesOut], body[i:], rem)
		if err != nil {
			return 0, err
		}
		n += written
	}
	return n, nil
}

func validPadCount(pad int) bool {
	for _, want := range padForResidue {
		if pad == want {
			return true
		}
	}
	return false
}

// bytesForChars inverts charsForResidue: given a trailing group's character
// count, returns the number of raw bytes it decodes to.
func bytesForChars(chars int) (int, bool) {
	switch chars {
	case 2:
		return 1, true
	case 4:
		return 2, true
	case 5:
		return 3, true
	case 7:
		return 4, true
	default:
		return 0, false
	}
}

// canonicalTailMask maps a partial group's significant character count to
// the index and mask of the one decoded symbol whose low bits the encoder
// never sets: an encoding with those bits nonzero is not what Encode would
// have produced and must be rejected, per the canonical-bits invariant.
var canonicalTailMask = map[int]struct {
	idx  int
	mask byte
}{
	2: {1, 0x03},
	4: {3, 0x0F},
	5: {4, 0x01},
	7: {6, 0x07},
}

// decodeGroup decodes up to 8 alphabet characters (chars significant, the
// rest implicitly zero) into raw bytes.
func (c Codec) decodeGroup(dst, src []byte, chars int) (int, error) {
	var v [8]byte
	for i := 0; i < chars; i++ {
		val, ok := c.inverse.Decode(src[i])
		if !ok {
			return 0, errInvalid
		}
		v[i] = val
	}
	if tail, partial := canonicalTailMask[chars]; partial && v[tail.idx]&tail.mask != 0 {
		return 0, errInvalid
	}
	full := mergeBase32Bits(v)
	n, ok := bytesForChars(chars)
	if !ok {
		n = 5
	}
	copy(dst, full[:n])
	return n, nil
}

// mergeBase32Bits combines 8 decoded 5-bit values (high value first) into 5
// raw bytes, the inverse of encodeGroup's field split.
func mergeBase32Bits(v [8]byte) [5]byte {
	return [5]byte{
		v[0]<<3 | v[1]>>2,
		(v[1]&0x03)<<6 | v[2]<<1 | v[3]>>4,
		(v[3]&0x0F)<<4 | v[4]>>1,
		(v[4]&0x01)<<7 | v[5]<<2 | v[6]>>3,
		(v[6]&0x07)<<5 | v[7],
	}
}

// decodeBlock16 decodes 16 ASCII Base32 characters (two 8-char groups) into
// 10 raw bytes via the ALSW primitive's DecodeASCII16. Full groups never
// carry dropped-bit slack, so no canonical check applies here.
func (c Codec) decodeBlock16(dst, src []byte) bool {
	var block [16]byte
	copy(block[:], src)
	x := simd.V128FromBytes(block)
	decoded, ok := c.inverse.DecodeASCII16(x)
	if !ok {
		return false
	}
	raw := decoded.Bytes()
	for g := 0; g < 2; g++ {
		var v [8]byte
		copy(v[:], raw[8*g:8*g+8])
		full := mergeBase32Bits(v)
		copy(dst[5*g:5*g+5], full[:])
	}
	return true
}

// Check reports whether src is a well-formed encoding under this codec.
// It agrees with Decode exactly (including the canonical trailing-bit
// requirement) by running the same decode path into a scratch buffer.
func (c Codec) Check(src []byte) bool {
	dst := make([]byte, 5*((len(src)+7)/8))
	_, err := c.Decode(dst, src)
	return err == nil
}

// EncodeToString is the string-returning convenience wrapper around Encode.
func (c Codec) EncodeToString(src []byte) string {
	dst := make([]byte, c.EncodedLen(len(src)))
	n := c.Encode(dst, src)
	return string(dst[:n])
}

// DecodeString is the string-accepting convenience wrapper around Decode.
func (c Codec) DecodeString(s string) ([]byte, error) {
	src := []byte(s)
	dst := make([]byte, 5*((len(src)+7)/8))
	n, err := c.Decode(dst, src)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// IsCanonical reports whether s is exactly how this codec would have
// produced it: s round-trips through Decode then Encode unchanged. This
// still differs from Check, which Decode's case-insensitive matching
// makes agnostic to letter case; IsCanonical is not.
func (c Codec) IsCanonical(s string) bool {
	decoded, err := c.DecodeString(s)
	if err != nil {
		return false
	}
	return c.EncodeToString(decoded) == s
}
