// Package uuid parses and formats UUID text in its four conventional forms
// (simple, hyphenated, braced, URN) on top of package hex.
//
// Grounded on uuid-simd/src/error.rs for the opaque-error shape (translated
// to Go's error interface) and on §4.7 of the component design for the
// form grammar and the hyphen-position invariant; uuid-simd's parse/format
// kernels themselves were not present in the retrieved source, so the
// separator-stripping and hyphen-interleaving here are original to this
// package, built the way package hex's own encode/decode are built.
package uuid

import "github.com/vecbyte/simdcodec/hex"

// UUID is a 16-byte UUID value. The zero value is Nil.
type UUID [16]byte

// Nil is the all-zero UUID.
var Nil = UUID{}

// Max is the all-ones UUID (RFC 9562's Max UUID).
var Max = UUID{
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
}

// IsNil reports whether u is the Nil UUID.
func (u UUID) IsNil() bool { return u == Nil }

// Error reports a malformed UUID string: wrong length, a misplaced
// hyphen, an unexpected brace/prefix, or a non-hex-digit byte.
type Error struct{ msg string }

func (e *Error) Error() string { return "uuid: " + e.msg }

var (
	errBadLength  = &Error{"invalid length"}
	errBadForm    = &Error{"unrecognized form"}
	errBadHyphens = &Error{"hyphen in unexpected position"}
	errBadDigit   = &Error{"invalid hex digit"}
)

// groupLens are the hyphen-delimited hex-digit group lengths of the
// hyphenated form: 8-4-4-4-12.
var groupLens = [5]int{8, 4, 4, 4, 12}

// Parse accepts any of the four forms named in §4.7 and returns the
// decoded 16-byte value. It rejects any unexpected character, wrong
// length, or misplaced hyphen.
func Parse(s string) (UUID, error) {
	body := s
	switch {
	case len(s) >= 2 && s[0] == '{' && s[len(s)-1] == '}':
		body = s[1 : len(s)-1]
	case len(s) >= 9 && (s[:9] == "urn:uuid:" || s[:9] == "URN:UUID:"):
		body = s[9:]
	}

	switch len(body) {
	case 32:
		return parseSimple(body)
	case 36:
		return parseHyphenated(body)
	default:
		if body != s {
			return Nil, errBadLength
		}
		return Nil, errBadForm
	}
}

func parseSimple(body string) (UUID, error) {
	var u UUID
	n, err := hex.Decode(u[:], []byte(body))
	if err != nil || n != 16 {
		return Nil, errBadDigit
	}
	return u, nil
}

func parseHyphenated(body string) (UUID, error) {
	pos := 0
	var digits [32]byte
	nd := 0
	for g, glen := range groupLens {
		if pos+glen > len(body) {
			return Nil, errBadLength
		}
		copy(digits[nd:nd+glen], body[pos:pos+glen])
		nd += glen
		pos += glen
		if g < len(groupLens)-1 {
			if pos >= len(body) || body[pos] != '-' {
				return Nil, errBadHyphens
			}
			pos++
		}
	}
	if pos != len(body) {
		return Nil, errBadHyphens
	}
	var u UUID
	n, err := hex.Decode(u[:], digits[:])
	if err != nil || n != 16 {
		return Nil, errBadDigit
	}
	return u, nil
}

// Form selects a UUID string representation for Format.
type Form int

const (
	Simple Form = iota
	Hyphenated
	Braced
	URN
)

// Format renders u in the given form, upper or lower hex case.
func (u UUID) Format(form Form, upper bool) string {
	var digits string
	if upper {
		digits = hex.EncodeUpperToString(u[:])
	} else {
		digits = hex.EncodeToString(u[:])
	}

	hyphenated := digits[0:8] + "-" + digits[8:12] + "-" + digits[12:16] + "-" + digits[16:20] + "-" + digits[20:32]

	switch form {
	case Simple:
		return digits
	case Hyphenated:
		return hyphenated
	case Braced:
		return "{" + hyphenated + "}"
	case URN:
		return "urn:uuid:" + hyphenated
	default:
		return hyphenated
	}
}

// String renders u in the canonical lowercase hyphenated form.
func (u UUID) String() string { return u.Format(Hyphenated, false) }
