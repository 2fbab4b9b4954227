package base32

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeKnownVectors(t *testing.T) {
	// RFC 4648 §10 test vectors.
	cases := map[string]string{
		"":       "",
		"f":      "MY======",
		"fo":     "MZXQ====",
		"foo":    "MZXW6===",
		"foob":   "MZXW6YQ=",
		"fooba":  "MZXW6YTB",
		"foobar": "MZXW6YTBOI======",
	}
	for input, want := range cases {
		require.Equal(t, want, STANDARD.EncodeToString([]byte(input)), input)
	}
}

func TestRoundTripAllVariants(t *testing.T) {
	inputs := [][]byte{nil, []byte("f"), []byte("fo"), []byte("foo"), []byte("foob"), []byte("fooba"), []byte("foobar"), make([]byte, 37)}
	for i := range inputs[len(inputs)-1] {
		inputs[len(inputs)-1][i] = byte(i * 13)
	}
	for _, codec := range []Codec{STANDARD, StandardNoPad, HEX, HEXNoPad} {
		for _, in := range inputs {
			enc := codec.EncodeToString(in)
			dec, err := codec.DecodeString(enc)
			require.NoError(t, err)
			require.Equal(t, in, dec)
		}
	}
}

func TestDecodeCaseInsensitive(t *testing.T) {
	lower, err := STANDARD.DecodeString("mzxw6ytboi======")
	require.NoError(t, err)
	upper, err := STANDARD.DecodeString("MZXW6YTBOI======")
	require.NoError(t, err)
	require.Equal(t, lower, upper)
	require.Equal(t, []byte("foobar"), lower)
}

func TestEncodedLenFormula(t *testing.T) {
	for n := 0; n < 30; n++ {
		require.Equal(t, 8*((n+4)/5), STANDARD.EncodedLen(n), "n=%d", n)
	}
}

func TestCheckAgreesWithDecode(t *testing.T) {
	good := []string{"", "MY======", "MZXW6YTBOI======"}
	bad := []string{"MY=", "MZXW6YTBOI=", "!!!!!!!!"}
	for _, s := range good {
		require.True(t, STANDARD.Check([]byte(s)), s)
	}
	for _, s := range bad {
		require.False(t, STANDARD.Check([]byte(s)), s)
	}
}

// TestDecodeAcrossSIMDBlockBoundary exercises decodeBlock16's 16-ASCII-byte
// vector path (two 8-char groups) together with the scalar remainder.
func TestDecodeAcrossSIMDBlockBoundary(t *testing.T) {
	for _, n := range []int{9, 10, 19, 20, 29, 30} {
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

func TestHexVariantAlphabet(t *testing.T) {
	enc := HEX.EncodeToString([]byte("foobar"))
	dec, err := HEX.DecodeString(enc)
	require.NoError(t, err)
	require.Equal(t, []byte("foobar"), dec)
	require.NotEqual(t, STANDARD.EncodeToString([]byte("foobar")), enc)
}

func TestIsCanonical(t *testing.T) {
	require.True(t, STANDARD.IsCanonical("MZXW6YTBOI======"))
	require.False(t, STANDARD.IsCanonical("MZXW6YTBOJ======"))
}

func TestDecodeRejectsNonCanonicalTrailingBits(t *testing.T) {
	// "MZXW6YQ=" is foob's canonical encoding; "MZXW6YX=" sets low bits of
	// the final significant symbol that the encoder always leaves zero.
	_, err := STANDARD.DecodeString("MZXW6YQ=")
	require.NoError(t, err)
	_, err = STANDARD.DecodeString("MZXW6YX=")
	require.Error(t, err)
	require.False(t, STANDARD.Check([]byte("MZXW6YX=")))
}

func TestFreeFunctions(t *testing.T) {
	src := []byte("foobar")
	dst := make([]byte, EncodedLen(STANDARD, len(src)))
	n := Encode(STANDARD, dst, src)
	require.True(t, Check(STANDARD, dst[:n]))

	out := make([]byte, 5*((n+7)/8))
	written, err := Decode(STANDARD, out, dst[:n])
	require.NoError(t, err)
	require.Equal(t, src, out[:written])
}
