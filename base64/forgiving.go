package base64

import "github.com/vecbyte/simdcodec/internal/alsw"

// discard4Table and discard2Table implement forgiving_discard_table: each
// maps an alphabet byte to the alphabet byte obtained by masking its 6-bit
// value with 0xF0 or 0xFC respectively (clearing the low 4 or low 2 bits),
// and every non-alphabet byte to itself. Used to zero the insignificant
// bits of the last meaningful character before a forgiving decode, per the
// WHATWG forgiving-base64 algorithm.
var (
	discard4Table = buildDiscardTable(0xF0)
	discard2Table = buildDiscardTable(0xFC)
)

func buildDiscardTable(mask byte) [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = byte(i)
	}
	for _, c := range []byte(standardAlphabet) {
		v, _ := STANDARD.inverse.Decode(c)
		t[c] = standardAlphabet[v&mask]
	}
	return t
}

// ForgivingDecode implements the WHATWG Infra forgiving-base64 decode
// algorithm: strip ASCII whitespace, normalize the trailing padding/residue
// according to the stripped length's residue mod 4, then decode as
// StandardNoPad. buf is mutated in place (whitespace is removed in place
// and insignificant trailing bits are cleared before decoding); the
// returned byte slice is freshly allocated, since Decode cannot write into
// input space narrower than its own output in the general case.
func ForgivingDecode(buf []byte) ([]byte, error) {
	stripped := alsw.StripASCIIWhitespace(buf)
	if len(stripped) == 0 {
		return []byte{}, nil
	}

	switch len(stripped) % 4 {
	case 0:
		n := len(stripped)
		if stripped[n-1] == padByte {
			if stripped[n-2] == padByte {
				stripped[n-3] = discard4Table[stripped[n-3]]
				stripped = stripped[:n-2]
			} else {
				stripped[n-2] = discard2Table[stripped[n-2]]
				stripped = stripped[:n-1]
			}
		}
	case 1:
		return nil, errBadLength
	case 2:
		n := len(stripped)
		stripped[n-1] = discard4Table[stripped[n-1]]
	case 3:
		n := len(stripped)
		stripped[n-1] = discard2Table[stripped[n-1]]
	}

	return StandardNoPad.DecodeString(string(stripped))
}
