package alsw

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vecbyte/simdcodec/simd"
)

func hexValueOf() map[byte]byte {
	m := make(map[byte]byte, 22)
	for d := byte(0); d < 10; d++ {
		m['0'+d] = d
	}
	for d := byte(0); d < 6; d++ {
		m['a'+d] = 10 + d
		m['A'+d] = 10 + d
	}
	return m
}

func TestDeriveHexTable(t *testing.T) {
	tbl, err := DeriveAliased(hexValueOf(), 4)
	require.NoError(t, err)

	for x := 0; x < 256; x++ {
		want, inAlphabet := hexValueOf()[byte(x)]
		got, ok := tbl.Decode(byte(x))
		require.Equal(t, inAlphabet, ok, "byte %#x", x)
		if inAlphabet {
			require.Equal(t, want, got, "byte %#x", x)
		}
	}
}

func TestDeriveBase64StandardTable(t *testing.T) {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	tbl, err := Derive([]byte(alphabet), 6)
	require.NoError(t, err)
	for i, sym := range []byte(alphabet) {
		got, ok := tbl.Decode(sym)
		require.True(t, ok)
		require.Equal(t, byte(i), got)
	}
	_, ok := tbl.Decode(' ')
	require.False(t, ok)
}

func TestDeriveBase32Tables(t *testing.T) {
	const std = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	const hex32 = "0123456789ABCDEFGHIJKLMNOPQRSTUV"
	for _, alphabet := range []string{std, hex32} {
		tbl, err := Derive([]byte(alphabet), 5)
		require.NoError(t, err)
		for i, sym := range []byte(alphabet) {
			got, ok := tbl.Decode(sym)
			require.True(t, ok)
			require.Equal(t, byte(i), got)
		}
	}
}

func TestDeriveRejectsOversizedAlphabet(t *testing.T) {
	alphabet := make([]byte, 17)
	for i := range alphabet {
		alphabet[i] = byte('a' + i)
	}
	_, err := Derive(alphabet, 4)
	require.Error(t, err)
}

func TestDecodeASCII16MatchesScalar(t *testing.T) {
	tbl, err := DeriveAliased(hexValueOf(), 4)
	require.NoError(t, err)

	input := [16]byte{'0', '1', 'a', 'F', 'z', '9', 'B', 'c', 'd', 'E', '4', '5', '6', '7', '8', '9'}
	vec := simd.V128FromBytes(input)
	decoded, ok := tbl.DecodeASCII16(vec)
	require.False(t, ok, "'z' is not a hex digit")

	valid := [16]byte{'0', '1', 'a', 'F', '2', '9', 'B', 'c', 'd', 'E', '4', '5', '6', '7', '8', '9'}
	vec2 := simd.V128FromBytes(valid)
	decoded2, ok2 := tbl.DecodeASCII16(vec2)
	require.True(t, ok2)
	out := decoded2.Bytes()
	_ = decoded
	for i, x := range valid {
		want, _ := tbl.Decode(x)
		require.Equal(t, want, out[i]&0x0F, "lane %d", i)
	}
}
