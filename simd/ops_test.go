package simd

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// randV128 returns a vector filled with a deterministic PRNG, matching the
// spec's "1,000 vectors per op" exhaustive-equivalence testing property.
func randV128(r *rand.Rand) V128 {
	var b [16]byte
	r.Read(b[:])
	return V128FromBytes(b)
}

func TestBitwiseOps(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		a, b := randV128(r), randV128(r)
		and := And128(a, b)
		or := Or128(a, b)
		xor := Xor128(a, b)
		not := Not128(a)
		andNot := AndNot128(a, b)
		for j := 0; j < 16; j++ {
			require.Equal(t, a.b[j]&b.b[j], and.b[j])
			require.Equal(t, a.b[j]|b.b[j], or.b[j])
			require.Equal(t, a.b[j]^b.b[j], xor.b[j])
			require.Equal(t, ^a.b[j], not.b[j])
			require.Equal(t, (^a.b[j])&b.b[j], andNot.b[j])
		}
	}
}

func TestArithOps(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		a, b := randV128(r), randV128(r)
		add := U8x16Add(a, b)
		sub := U8x16Sub(a, b)
		subSat := U8x16SubSaturate(a, b)
		for j := 0; j < 16; j++ {
			require.Equal(t, a.b[j]+b.b[j], add.b[j])
			require.Equal(t, a.b[j]-b.b[j], sub.b[j])
			want := byte(0)
			if a.b[j] >= b.b[j] {
				want = a.b[j] - b.b[j]
			}
			require.Equal(t, want, subSat.b[j])
		}
	}
}

func TestCompareOps(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		a, b := randV128(r), randV128(r)
		eq := U8x16Eq(a, b)
		lt := U8x16LessThan(a, b)
		for j := 0; j < 16; j++ {
			if a.b[j] == b.b[j] {
				require.Equal(t, byte(0xFF), eq.b[j])
			} else {
				require.Equal(t, byte(0), eq.b[j])
			}
			if a.b[j] < b.b[j] {
				require.Equal(t, byte(0xFF), lt.b[j])
			} else {
				require.Equal(t, byte(0), lt.b[j])
			}
		}
	}
}

func TestSwizzle128HighBitZero(t *testing.T) {
	var table V128
	for i := range table.b {
		table.b[i] = byte(i * 2)
	}
	idx := V128FromBytes([16]byte{0, 1, 0x80, 15, 0xFF, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14})
	out := Swizzle128(table, idx)
	require.Equal(t, byte(0), out.b[0])
	require.Equal(t, byte(2), out.b[1])
	require.Equal(t, byte(0), out.b[2], "high bit set must produce zero")
	require.Equal(t, byte(30), out.b[3])
	require.Equal(t, byte(0), out.b[4], "high bit set must produce zero")
}

func TestMaskReductions(t *testing.T) {
	allHigh := BroadcastV128(0x80)
	require.True(t, Mask8x16All(allHigh))
	require.True(t, U8x16HighBitAny(allHigh))

	none := BroadcastV128(0x01)
	require.False(t, Mask8x16All(none))
	require.False(t, U8x16HighBitAny(none))

	mixed := allHigh
	mixed.b[5] = 0x01
	require.False(t, Mask8x16All(mixed))
	require.True(t, U8x16HighBitAny(mixed))
}

func TestV256HalvesRoundTrip(t *testing.T) {
	var lo, hi V128
	for i := range lo.b {
		lo.b[i] = byte(i)
		hi.b[i] = byte(i + 100)
	}
	v := V256FromHalves(lo, hi)
	require.Equal(t, lo, v.Lo())
	require.Equal(t, hi, v.Hi())
}

func TestDispatchNeverFails(t *testing.T) {
	tok := Best()
	require.NotEmpty(t, tok.Name())
	require.Contains(t, []int{16, 32}, tok.Width())
}
