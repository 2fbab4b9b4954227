package uuid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const canonical = "67e5504410b1426f9247bb680e5fe0c8"
const hyphenated = "67e55044-10b1-426f-9247-bb680e5fe0c8"

func TestParseAllForms(t *testing.T) {
	forms := []string{
		canonical,
		hyphenated,
		"{" + hyphenated + "}",
		"urn:uuid:" + hyphenated,
	}
	var want UUID
	copy(want[:], mustHex(canonical))
	for _, s := range forms {
		got, err := Parse(s)
		require.NoError(t, err, s)
		require.Equal(t, want, got, s)
	}
}

func mustHex(s string) []byte {
	b := make([]byte, 16)
	for i := 0; i < 16; i++ {
		hi := unhexDigit(s[2*i])
		lo := unhexDigit(s[2*i+1])
		b[i] = hi<<4 | lo
	}
	return b
}

func unhexDigit(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return 0
	}
}

func TestFormatRoundTrip(t *testing.T) {
	u, err := Parse(hyphenated)
	require.NoError(t, err)
	require.Equal(t, canonical, u.Format(Simple, false))
	require.Equal(t, hyphenated, u.Format(Hyphenated, false))
	require.Equal(t, "{"+hyphenated+"}", u.Format(Braced, false))
	require.Equal(t, "urn:uuid:"+hyphenated, u.Format(URN, false))
	require.Equal(t, u.String(), u.Format(Hyphenated, false))
}

func TestNilAndMax(t *testing.T) {
	require.True(t, Nil.IsNil())
	require.False(t, Max.IsNil())
	require.Equal(t, "00000000-0000-0000-0000-000000000000", Nil.String())
	require.Equal(t, "ffffffff-ffff-ffff-ffff-ffffffffffff", Max.String())
}

func TestParseRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"not-a-uuid",
		"67e55044-10b1-426f-9247-bb680e5fe0c",     // too short
		"67e5504410b1426f9247bb680e5fe0c8a",        // too long
		"67e55044110b1-426f-9247-bb680e5fe0c8",     // misplaced hyphen
		"67e55044_10b1_426f_9247_bb680e5fe0c8",     // wrong separator
		"{67e55044-10b1-426f-9247-bb680e5fe0c8",    // unbalanced brace
		"zze55044-10b1-426f-9247-bb680e5fe0c8",     // non-hex digit
	}
	for _, s := range bad {
		_, err := Parse(s)
		require.Error(t, err, s)
	}
}
