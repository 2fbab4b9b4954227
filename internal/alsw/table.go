// Package alsw implements the Arithmetic-Logical Sidewise lookup table: the
// primitive every codec in this module uses to classify and transcode ASCII
// bytes in parallel. Given a byte x, split into high nibble h = x>>4 and
// treated whole, a table answers two questions with one 8-bit add apiece:
//
//	ck := CheckLUT[h] + x   (mod 256)   // high bit set iff x is not in the alphabet
//	dc := DecodeLUT[h] + x  (mod 256)   // low bits hold the decoded value when valid
//
// The two 16-byte tables are addressed by the shuffle-table operand of
// simd.Swizzle128, so classifying or decoding 16 ASCII bytes costs one
// shuffle and one vector add per table plus one mask reduction, rather than
// a branch per byte; 32 bytes are handled as two 16-byte halves.
//
// Grounded on vsimd/src/hex.rs's HexAlsw (exact check_hash/decode_hash
// constants for hex) and generalized here into a brute-force Derive solver
// for the Base64/Base32 alphabets, which the Rust crate's impl_alsw! macro
// (not present in the retrieved source) would otherwise hand-derive at
// compile time via const-eval.
package alsw

import "fmt"

// Table is a pair of 16-byte lookup vectors addressed by a byte's high
// nibble, per the classify/decode contract above.
type Table struct {
	CheckLUT  [16]byte
	DecodeLUT [16]byte
}

// Classify reports whether x belongs to the alphabet this table was derived
// for, without computing its decoded value. It is the scalar reference
// implementation of the classify step that Swizzle128/256-based decoders
// perform 16/32 bytes at a time.
func (t Table) Classify(x byte) bool {
	h := x >> 4
	ck := t.CheckLUT[h] + x
	return ck&0x80 == 0
}

// Decode returns the decoded value of x and whether x was valid. The
// decoded value's meaning (4/5/6 significant low bits) is up to the caller;
// this table does not know the alphabet's bit width.
func (t Table) Decode(x byte) (value byte, ok bool) {
	if !t.Classify(x) {
		return 0, false
	}
	h := x >> 4
	dc := t.DecodeLUT[h] + x
	return dc, true
}

// Derive synthesizes a Table for an arbitrary codec alphabet by brute-forcing,
// independently per high-nibble bucket, an 8-bit check offset and an 8-bit
// decode offset that satisfy the classify/decode contract for every one of
// the 256 possible input bytes. decodedBits is the number of low bits of the
// decoded value that are significant (4 for hex, 5 for Base32, 6 for Base64);
// bits above that are unconstrained in the synthesized table, matching the
// "undefined when invalid" contract for non-alphabet bytes and the "low bits"
// contract for alphabet bytes.
//
// alphabet[i] is the ASCII byte that decodes to value i; alphabet must have
// no duplicate entries and len(alphabet) <= 1<<decodedBits. Codecs that tolerate
// more than one spelling per value (hex and Base32's case-insensitive decode)
// use DeriveAliased instead.
func Derive(alphabet []byte, decodedBits int) (Table, error) {
	if len(alphabet) > 1<<uint(decodedBits) {
		return Table{}, fmt.Errorf("alsw: alphabet of %d symbols overflows %d decoded bits", len(alphabet), decodedBits)
	}
	valueOf := make(map[byte]byte, len(alphabet))
	for value, sym := range alphabet {
		if _, dup := valueOf[sym]; dup {
			return Table{}, fmt.Errorf("alsw: duplicate alphabet symbol %q", sym)
		}
		valueOf[sym] = byte(value)
	}
	return DeriveAliased(valueOf, decodedBits)
}

// DeriveAliased is Derive generalized to alphabets where more than one ASCII
// byte decodes to the same value — case-insensitive hex digits and Base32
// letters being the motivating examples, where both 'A' and 'a' must decode
// to 10.
func DeriveAliased(valueOf map[byte]byte, decodedBits int) (Table, error) {
	if len(valueOf) == 0 {
		return Table{}, fmt.Errorf("alsw: empty alphabet")
	}
	mask := byte(1<<uint(decodedBits) - 1)

	var tbl Table
	for h := byte(0); h < 16; h++ {
		checkOffset, ok := findCheckOffset(h, valueOf)
		if !ok {
			return Table{}, fmt.Errorf("alsw: no viable check offset for nibble %x", h)
		}
		decodeOffset, ok := findDecodeOffset(h, valueOf, mask)
		if !ok {
			return Table{}, fmt.Errorf("alsw: no viable decode offset for nibble %x", h)
		}
		tbl.CheckLUT[h] = checkOffset
		tbl.DecodeLUT[h] = decodeOffset
	}

	if err := tbl.Verify(valueOf); err != nil {
		return Table{}, err
	}
	return tbl, nil
}

// findCheckOffset brute-forces a single byte offset such that, for every x
// whose high nibble is h, (offset+x)&0x80 is clear exactly when x is in the
// alphabet.
func findCheckOffset(h byte, valueOf map[byte]byte) (byte, bool) {
candidate:
	for offset := 0; offset < 256; offset++ {
		for l := byte(0); l < 16; l++ {
			x := h<<4 | l
			_, inAlphabet := valueOf[x]
			ck := byte(offset) + x
			invalid := ck&0x80 != 0
			if inAlphabet == invalid {
				continue candidate
			}
		}
		return byte(offset), true
	}
	return 0, false
}

// findDecodeOffset brute-forces a single byte offset such that, for every
// alphabet byte x with high nibble h, (offset+x)&mask equals x's decoded
// value.
func findDecodeOffset(h byte, valueOf map[byte]byte, mask byte) (byte, bool) {
candidate:
	for offset := 0; offset < 256; offset++ {
		for l := byte(0); l < 16; l++ {
			x := h<<4 | l
			value, inAlphabet := valueOf[x]
			if !inAlphabet {
				continue
			}
			dc := byte(offset) + x
			if dc&mask != value {
				continue candidate
			}
		}
		return byte(offset), true
	}
	return 0, false
}

// Verify exhaustively checks, over all 256 byte values, that every alphabet
// symbol classifies as valid and decodes to its assigned value, and every
// non-alphabet byte classifies as invalid. Called by Derive; also useful to
// cross-check a hand-ported table (e.g. hex's exact check_hash/decode_hash)
// against its alphabet.
func (t Table) Verify(valueOf map[byte]byte) error {
	for x := 0; x < 256; x++ {
		want, inAlphabet := valueOf[byte(x)]
		value, ok := t.Decode(byte(x))
		if inAlphabet {
			if !ok {
				return fmt.Errorf("alsw: alphabet byte %#x rejected by synthesized table", x)
			}
			if value != want {
				return fmt.Errorf("alsw: alphabet byte %#x decoded to %d, want %d", x, value, want)
			}
		} else if ok {
			return fmt.Errorf("alsw: non-alphabet byte %#x accepted by synthesized table", x)
		}
	}
	return nil
}
