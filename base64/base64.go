// Package base64 implements the four RFC 4648 Base64 variants (standard and
// URL-safe alphabets, padded and unpadded) plus the WHATWG forgiving-base64
// decode algorithm, layered on the vector IR in package simd and the ALSW
// primitive in internal/alsw.
//
// Grounded on base64-simd/src/{lib,fallback,ext}.rs: the alphabet tables,
// the encode kernel's 6-bit field extraction, and — byte-for-byte — the
// forgiving-decode padding-fixup algorithm (forgiving_fix_data,
// forgiving_discard_table).
package base64

import (
	"github.com/vecbyte/simdcodec/internal/alsw"
	"github.com/vecbyte/simdcodec/simd"
)

// Codec is an immutable Base64 variant: an alphabet and a padding policy.
type Codec struct {
	alphabet [64]byte
	inverse  alsw.Table
	padded   bool
}

func newCodec(alphabet string, padded bool) Codec {
	var a [64]byte
	copy(a[:], alphabet)
	valueOf := make(map[byte]byte, 64)
	for v, c := range []byte(alphabet) {
		valueOf[c] = byte(v)
	}
	tbl, err := alsw.DeriveAliased(valueOf, 6)
	if err != nil {
		panic("base64: failed to derive ALSW table: " + err.Error())
	}
	return Codec{alphabet: a, inverse: tbl, padded: padded}
}

const (
	standardAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	urlSafeAlphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

// The four codec variants named in the component design: alphabet indices
// 62/63 are `+`/`/` for STANDARD and `-`/`_` for URL_SAFE; the *_NO_PAD
// variants never produce or require trailing `=`.
var (
	STANDARD      = newCodec(standardAlphabet, true)
	URLSafe       = newCodec(urlSafeAlphabet, true)
	StandardNoPad = newCodec(standardAlphabet, false)
	URLSafeNoPad  = newCodec(urlSafeAlphabet, false)
)

const padByte = '='

// Error reports a malformed Base64 input: bad length, bad padding, or an
// out-of-alphabet byte.
type Error struct{ msg string }

func (e *Error) Error() string { return "base64: " + e.msg }

var (
	errBadLength  = &Error{"invalid encoded length"}
	errBadPadding = &Error{"invalid padding"}
	errInvalid    = &Error{"invalid byte in encoded data"}
)

// EncodedLen returns the number of ASCII bytes produced by encoding n raw
// bytes under this codec's padding policy.
func (c Codec) EncodedLen(n int) int {
	if c.padded {
		return 4 * ((n + 2) / 3)
	}
	return (4*n + 2) / 3
}

// DecodedLen parses the encoded length m and returns the number of raw
// bytes decoding it would produce, or an error if m itself is malformed
// (before even inspecting the byte content).
func (c Codec) DecodedLen(src []byte) (int, error) {
	m := len(src)
	if c.padded {
		if m%4 != 0 {
			return 0, errBadLength
		}
		pad := 0
		if m > 0 && src[m-1] == padByte {
			pad++
			if src[m-2] == padByte {
				pad++
			}
		}
		if pad == 3 {
			return 0, errBadPadding
		}
		return 3*(m/4) - pad, nil
	}
	if m%4 == 1 {
		return 0, errBadLength
	}
	return 3 * m / 4, nil
}

// Encode writes the Base64 encoding of src into dst and returns the number
// of bytes written. dst must have length >= c.EncodedLen(len(src)).
func (c Codec) Encode(dst, src []byte) int {
	n := 0
	i := 0
	for ; i+3 <= len(src); i += 3 {
		b0, b1, b2 := src[i], src[i+1], src[i+2]
		dst[n] = c.alphabet[b0>>2]
		dst[n+1] = c.alphabet[(b0&0x03)<<4|b1>>4]
		dst[n+2] = c.alphabet[(b1&0x0F)<<2|b2>>6]
		dst[n+3] = c.alphabet[b2&0x3F]
		n += 4
	}
	switch len(src) - i {
	case 1:
		b0 := src[i]
		dst[n] = c.alphabet[b0>>2]
		dst[n+1] = c.alphabet[(b0&0x03)<<4]
		n += 2
		if c.padded {
			dst[n] = padByte
			dst[n+1] = padByte
			n += 2
		}
	case 2:
		b0, b1 := src[i], src[i+1]
		dst[n] = c.alphabet[b0>>2]
		dst[n+1] = c.alphabet[(b0&0x03)<<4|b1>>4]
		dst[n+2] = c.alphabet[(b1&0x0F)<<2]
		n += 3
		if c.padded {
			dst[n] = padByte
			n++
		}
	}
	return n
}

// Decode writes the raw bytes decoded from src into dst and returns the
// number of bytes written, or an error. dst must have length >=
// c.DecodedLen(src)'s result (call that first to size the buffer).
func (c Codec) Decode(dst, src []byte) (int, error) {
	body := src
	padCount := 0
	if c.padded {
		if len(src)%4 != 0 {
			return 0, errBadLength
		}
		m := len(src)
		if m > 0 && src[m-1] == padByte {
			padCount++
			if m > 1 && src[m-2] == padByte {
				padCount++
			}
		}
		if padCount == 3 {
			return 0, errBadPadding
		}
		body = src[:m-padCount]
	} else if len(src)%4 == 1 {
		return 0, errBadLength
	}

	n := 0
	i := 0
	for ; i+16 <= len(body); i += 16 {
		if !c.decodeBlock16(dst[n:n+12], body[i:i+16]) {
			return 0, errInvalid
		}
		n += 12
	}
	for ; i+4 <= len(body); i += 4 {
		v0, ok0 := c.inverse.Decode(body[i])
		v1, ok1 := c.inverse.Decode(body[i+1])
		v2, ok2 := c.inverse.Decode(body[i+2])
		v3, ok3 := c.inverse.Decode(body[i+3])
		if !(ok0 && ok1 && ok2 && ok3) {
			return 0, errInvalid
		}
		dst[n] = v0<<2 | v1>>4
		dst[n+1] = v1<<4 | v2>>2
		dst[n+2] = v2<<6 | v3
		n += 3
	}
	switch len(body) - i {
	case 0:
	case 2:
		v0, ok0 := c.inverse.Decode(body[i])
		v1, ok1 := c.inverse.Decode(body[i+1])
		if !(ok0 && ok1) {
			return 0, errInvalid
		}
		if v1&0x0F != 0 {
			return 0, errInvalid
		}
		dst[n] = v0<<2 | v1>>4
		n++
	case 3:
		v0, ok0 := c.inverse.Decode(body[i])
		v1, ok1 := c.inverse.Decode(body[i+1])
		v2, ok2 := c.inverse.Decode(body[i+2])
		if !(ok0 && ok1 && ok2) {
			return 0, errInvalid
		}
		if v2&0x03 != 0 {
			return 0, errInvalid
		}
		dst[n] = v0<<2 | v1>>4
		dst[n+1] = v1<<4 | v2>>2
		n += 2
	default:
		return 0, errBadLength
	}
	return n, nil
}

// decodeBlock16 decodes 16 ASCII Base64 characters (four 4-char groups) into
// 12 raw bytes via the ALSW primitive's DecodeASCII16, reporting false if any
// byte is outside the alphabet. Full groups never carry dropped-bit slack, so
// no canonical check applies here; that is a property of partial tail groups
// only, handled scalar in Decode.
func (c Codec) decodeBlock16(dst, src []byte) bool {
	var block [16]byte
	copy(block[:], src)
	x := simd.V128FromBytes(block)
	decoded, ok := c.inverse.DecodeASCII16(x)
	if !ok {
		return false
	}
	v := decoded.Bytes()
	for g := 0; g < 4; g++ {
		b := v[4*g : 4*g+4]
		dst[3*g] = b[0]<<2 | b[1]>>4
		dst[3*g+1] = b[1]<<4 | b[2]>>2
		dst[3*g+2] = b[2]<<6 | b[3]
	}
	return true
}

// Check reports whether src is a well-formed encoding under this codec.
// It agrees with Decode exactly (including the canonical trailing-bit
// requirement) by running the same decode path into a scratch buffer.
func (c Codec) Check(src []byte) bool {
	n, err := c.DecodedLen(src)
	if err != nil {
		return false
	}
	_, err = c.Decode(make([]byte, n), src)
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
	n, err := c.DecodedLen(src)
	if err != nil {
		return nil, err
	}
	dst := make([]byte, n)
	written, err := c.Decode(dst, src)
	if err != nil {
		return nil, err
	}
	return dst[:written], nil
}

// IsCanonical reports whether s is exactly how this codec would have
// produced it: s round-trips through Decode then Encode unchanged.
func (c Codec) IsCanonical(s string) bool {
	decoded, err := c.DecodeString(s)
	if err != nil {
		return false
	}
	return c.EncodeToString(decoded) == s
}
