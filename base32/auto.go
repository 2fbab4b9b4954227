package base32

// Package-level free functions mirroring hex_simd::auto's call style,
// alongside the Codec methods. See base64/auto.go for the same pattern.

// EncodedLen is the free-function form of Codec.EncodedLen.
func EncodedLen(c Codec, n int) int { return c.EncodedLen(n) }

// Encode is the free-function form of Codec.Encode.
func Encode(c Codec, dst, src []byte) int { return c.Encode(dst, src) }

// Decode is the free-function form of Codec.Decode.
func Decode(c Codec, dst, src []byte) (int, error) { return c.Decode(dst, src) }

// Check is the free-function form of Codec.Check.
func Check(c Codec, src []byte) bool { return c.Check(src) }
