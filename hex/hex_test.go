package hex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := [][]byte{
		nil,
		{0x00},
		{0xFF},
		[]byte("foobar"),
		make([]byte, 200),
	}
	for i := range cases[4] {
		cases[4][i] = byte(i * 7)
	}
	for _, src := range cases {
		enc := EncodeToString(src)
		require.Equal(t, EncodedLen(len(src)), len(enc))
		dec, err := DecodeString(enc)
		require.NoError(t, err)
		require.Equal(t, src, dec)
	}
}

func TestEncodeKnownVectors(t *testing.T) {
	require.Equal(t, "666f6f626172", EncodeToString([]byte("foobar")))
	require.Equal(t, "666F6F626172", EncodeUpperToString([]byte("foobar")))
}

func TestDecodeCaseInsensitive(t *testing.T) {
	lower, err := DecodeString("deadbeef")
	require.NoError(t, err)
	upper, err := DecodeString("DEADBEEF")
	require.NoError(t, err)
	mixed, err := DecodeString("DeadBeEF")
	require.NoError(t, err)
	require.Equal(t, lower, upper)
	require.Equal(t, lower, mixed)
}

func TestDecodeRejectsOddLength(t *testing.T) {
	_, err := DecodeString("abc")
	require.ErrorIs(t, err, errOddLength)
}

func TestDecodeRejectsNonHex(t *testing.T) {
	_, err := DecodeString("zz")
	require.ErrorIs(t, err, errInvalid)
}

func TestCheckAgreesWithDecode(t *testing.T) {
	good := []string{"", "ab", "DEADBEEF", "0123456789abcdef"}
	bad := []string{"a", "zz", "abc", "ab cd"}
	for _, s := range good {
		require.True(t, Check([]byte(s)), s)
		_, err := DecodeString(s)
		require.NoError(t, err, s)
	}
	for _, s := range bad {
		require.False(t, Check([]byte(s)), s)
		_, err := DecodeString(s)
		require.Error(t, err, s)
	}
}

func TestEncodeDecodeAcrossBlockBoundary(t *testing.T) {
	for _, n := range []int{15, 16, 17, 31, 32, 33, 63, 64, 65} {
		src := make([]byte, n)
		for i := range src {
			src[i] = byte(i*31 + 7)
		}
		enc := EncodeToString(src)
		dec, err := DecodeString(enc)
		require.NoError(t, err, "n=%d", n)
		require.Equal(t, src, dec, "n=%d", n)
	}
}
