package base64

// Package-level free functions mirroring hex_simd::auto's call style
// (a qualified-name entry point alongside the struct-method one) — useful
// at call sites that pick the variant dynamically rather than holding a
// Codec value.

// EncodedLen is the free-function form of Codec.EncodedLen.
func EncodedLen(c Codec, n int) int { return c.EncodedLen(n) }

// DecodedLen is the free-function form of Codec.DecodedLen.
func DecodedLen(c Codec, src []byte) (int, error) { return c.DecodedLen(src) }

// Encode is the free-function form of Codec.Encode.
func Encode(c Codec, dst, src []byte) int { return c.Encode(dst, src) }

// Decode is the free-function form of Codec.Decode.
func Decode(c Codec, dst, src []byte) (int, error) { return c.Decode(dst, src) }

// Check is the free-function form of Codec.Check.
func Check(c Codec, src []byte) bool { return c.Check(src) }
