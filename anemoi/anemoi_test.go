package anemoi_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/field/goldilocks"
	"github.com/stretchr/testify/require"

	"github.com/vocdoni/algohash/anemoi"
	"github.com/vocdoni/algohash/field"
	"github.com/vocdoni/algohash/internal/params"
)

type gl = goldilocks.Element

var a64 = anemoi.MustNew[gl](params.Anemoi64x8x4())

func els(vs ...uint64) []gl { return field.FromUint64s[gl](vs) }

func requireDigest(t *testing.T, want []uint64, got anemoi.Digest[gl, *gl]) {
	t.Helper()
	if !field.Equal[gl](els(want...), got.Elements()) {
		t.Fatalf("digest mismatch\nexpected %v\ngot      %s", want, got)
	}
}

func TestReferenceVectors(t *testing.T) {
	tests := []struct {
		in, out []uint64
	}{
		{
			[]uint64{0, 0, 0, 0, 0, 0, 0, 0},
			[]uint64{163801914873424873, 1975920130069291731, 11347519605622270163, 13645969218783075933},
		},
		{
			[]uint64{1, 1, 1, 1, 1, 1, 1, 1},
			[]uint64{10146598142737807481, 16567096201507333296, 17955106716319642741, 4860486773238898208},
		},
		{
			[]uint64{0, 0, 0, 0, 1, 1, 1, 1},
			[]uint64{6111781501637081646, 10187415424684290095, 17663585034052564413, 1533771651848622457},
		},
	}
	for _, tc := range tests {
		requireDigest(t, tc.out, a64.Hash(els(tc.in...)...))
	}
}

func TestPermutationVector(t *testing.T) {
	s := els(0, 1, 2, 3, 4, 5, 6, 7)
	a64.Permute(s)
	want := els(15284559804710099558, 4020106640622448411, 15260604038640857487, 10916599456249876805,
		11244227046060435254, 11337232043296090454, 17056752723921159928, 799444148504528087)
	require.True(t, field.Equal[gl](want, s), "got %v", field.Strings[gl](s))
}

func TestRegressionVectors(t *testing.T) {
	requireDigest(t, []uint64{14255081158868524956, 5458139482963682112, 16497090908186115338, 13799919171928706364}, a64.Hash())
	requireDigest(t, []uint64{1346719229070809526, 1107105179093179457, 16723309659212736788, 14424972394954453125}, a64.Hash(els(1, 2, 3)...))
	requireDigest(t, []uint64{16525432532523010511, 1694347620585349764, 17218417618742506973, 12668298286597933355}, a64.Hash(els(1, 2, 3, 4, 5, 6, 7, 8)...))
	requireDigest(t, []uint64{5113449599113052961, 8201280012487361135, 8092616682629598698, 7242844815603810699}, a64.HashBytes([]byte("hello world")))
	requireDigest(t, []uint64{14291920064634411608, 8756853157607320102, 9042365214837282975, 7419485145650452090}, a64.HashBytes(nil))

	one, two := a64.Hash(els(1)...), a64.Hash(els(2)...)
	want := []uint64{12974030855740988671, 6896508395999404410, 2317706433106079926, 16386791887499277473}
	requireDigest(t, want, a64.Compress(one, two))
	requireDigest(t, want, a64.Merge(one, two))
}

func TestAvalanche(t *testing.T) {
	in := els(11, 22, 33, 44, 55)
	base := a64.Hash(in...).Elements()
	one := goldilocks.NewElement(1)
	for i := range in {
		flipped := append([]gl(nil), in...)
		flipped[i].Add(&flipped[i], &one)
		got := a64.Hash(flipped...).Elements()
		for j := range got {
			require.False(t, got[j].Equal(&base[j]), "input %d left digest element %d unchanged", i, j)
		}
	}
}

func TestPadding(t *testing.T) {
	require.False(t, a64.Hash(els(5)...).Equal(a64.Hash(els(5, 1)...)))
	require.False(t, a64.Hash().Equal(a64.Hash(els(0)...)))
	require.False(t, a64.Hash(els(1, 2, 3, 1)...).Equal(a64.Hash(els(1, 2, 3)...)))
}

func TestShape(t *testing.T) {
	require.Equal(t, 8, a64.StateSize())
	require.Equal(t, 4, a64.Rate())
	require.Equal(t, 4, a64.Hash().Len())
	require.PanicsWithValue(t, "algohash: anemoi-64-8-4: state has 4 elements, want 8", func() {
		a64.Permute(make([]gl, 4))
	})
}

func TestInvertibility(t *testing.T) {
	for seed := range uint64(4) {
		orig := make([]gl, a64.StateSize())
		for i := range orig {
			orig[i] = goldilocks.NewElement(seed*0x9e3779b97f4a7c15 + uint64(i)*0xbf58476d1ce4e5b9)
		}
		s := append([]gl(nil), orig...)
		a64.Permute(s)
		require.False(t, field.Equal[gl](orig, s))
		a64.InversePermute(s)
		require.True(t, field.Equal[gl](orig, s), "seed %d", seed)

		for r := range a64.Rounds() {
			a64.Round(s, r)
			a64.InverseRound(s, r)
			require.True(t, field.Equal[gl](orig, s), "round %d", r)
		}
	}
	require.Panics(t, func() { a64.InversePermute(make([]gl, 7)) })
}
