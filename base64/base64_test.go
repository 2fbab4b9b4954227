package base64

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeKnownVector(t *testing.T) {
	require.Equal(t, "Zm9vYmFy", STANDARD.EncodeToString([]byte("foobar")))
	require.Equal(t, "Zm9vYmE=", STANDARD.EncodeToString([]byte("fooba")))
	require.Equal(t, "Zm9vYg==", STANDARD.EncodeToString([]byte("foob")))
	require.Equal(t, "Zm9vYmFy", StandardNoPad.EncodeToString([]byte("foobar")))
	require.Equal(t, "Zm9vYmE", StandardNoPad.EncodeToString([]byte("fooba")))
}

func TestRoundTripAllVariants(t *testing.T) {
	long := make([]byte, 45)
	for i := range long {
		long[i] = byte(i * 7)
	}
	inputs := [][]byte{nil, []byte("f"), []byte("fo"), []byte("foo"), []byte("foob"), []byte("fooba"), []byte("foobar"), long}
	for _, codec := range []Codec{STANDARD, URLSafe, StandardNoPad, URLSafeNoPad} {
		for _, in := range inputs {
			enc := codec.EncodeToString(in)
			dec, err := codec.DecodeString(enc)
			require.NoError(t, err)
			require.Equal(t, in, dec)
		}
	}
}

// TestDecodeAcrossSIMDBlockBoundary exercises decodeBlock16's 16-ASCII-byte
// vector path together with the scalar remainder, for lengths that land on
// either side of one, two, and three block boundaries.
func TestDecodeAcrossSIMDBlockBoundary(t *testing.T) {
	for _, n := range []int{12, 13, 24, 25, 36, 37, 48, 49} {
		in := make([]byte, n)
		for i := range in {
			in[i] = byte(i*31 + 5)
		}
		enc := STANDARD.EncodeToString(in)
		dec, err := STANDARD.DecodeString(enc)
		require.NoError(t, err, "n=%d", n)
		require.Equal(t, in, dec, "n=%d", n)
	}
}

func TestEncodedLenFormula(t *testing.T) {
	for n := 0; n < 40; n++ {
		require.Equal(t, 4*((n+2)/3), STANDARD.EncodedLen(n), "n=%d", n)
	}
}

func TestDecodeRejectsBadPadding(t *testing.T) {
	_, err := STANDARD.DecodeString("Zm9v===")
	require.Error(t, err)
	_, err = STANDARD.DecodeString("Zm9")
	require.Error(t, err)
}

func TestDecodeRejectsInvalidByte(t *testing.T) {
	_, err := STANDARD.DecodeString("Zm9v!mFy")
	require.Error(t, err)
}

func TestCheckAgreesWithDecode(t *testing.T) {
	good := []string{"", "Zm9vYmFy", "Zm9vYmE=", "Zm9vYg=="}
	bad := []string{"Zm9", "Zm9v====", "!!!!"}
	for _, s := range good {
		require.True(t, STANDARD.Check([]byte(s)), s)
	}
	for _, s := range bad {
		require.False(t, STANDARD.Check([]byte(s)), s)
	}
}

func TestIsCanonicalRejectsNonMinimal(t *testing.T) {
	require.True(t, STANDARD.IsCanonical("Zm9vYmE="))
	require.False(t, STANDARD.IsCanonical("Zm9vYmH="))
}

func TestDecodeRejectsNonCanonicalTrailingBits(t *testing.T) {
	// original_source/crates/base64-simd/src/tests.rs mandates
	// ("SGVsbG9=", None): the final character's low bits, which the
	// encoder never sets, are nonzero here.
	_, err := STANDARD.DecodeString("SGVsbG9=")
	require.Error(t, err)
	require.False(t, STANDARD.Check([]byte("SGVsbG9=")))

	_, err = STANDARD.DecodeString("Zm9vYmH=")
	require.Error(t, err)
	require.False(t, STANDARD.Check([]byte("Zm9vYmH=")))
}

func TestForgivingDecodeVectors(t *testing.T) {
	cases := map[string][]byte{
		"ab":   {0x69},
		"abc":  {0x69, 0xb7},
		"abcd": {0x69, 0xb7, 0x1d},
	}
	for in, want := range cases {
		got, err := ForgivingDecode([]byte(in))
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
}

func TestForgivingDecodeStripsWhitespace(t *testing.T) {
	got, err := ForgivingDecode([]byte("Zm9v\n YmFy \t"))
	require.NoError(t, err)
	require.Equal(t, []byte("foobar"), got)
}

func TestForgivingDecodeEmpty(t *testing.T) {
	got, err := ForgivingDecode([]byte("   \t\n"))
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestFreeFunctions(t *testing.T) {
	src := []byte("foobar")
	dst := make([]byte, EncodedLen(STANDARD, len(src)))
	n := Encode(STANDARD, dst, src)
	require.True(t, Check(STANDARD, dst[:n]))

	decLen, err := DecodedLen(STANDARD, dst[:n])
	require.NoError(t, err)
	out := make([]byte, decLen)
	written, err := Decode(STANDARD, out, dst[:n])
	require.NoError(t, err)
	require.Equal(t, src, out[:written])
}
