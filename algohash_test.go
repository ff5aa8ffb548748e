package algohash_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/field/goldilocks"
	"github.com/stretchr/testify/require"

	"github.com/vocdoni/algohash"
	"github.com/vocdoni/algohash/field"
)

func bigs(vs ...uint64) []*big.Int {
	out := make([]*big.Int, len(vs))
	for i, v := range vs {
		out[i] = new(big.Int).SetUint64(v)
	}
	return out
}

func requireDigest(t *testing.T, want []uint64, got algohash.Digest) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		if got[i].Cmp(new(big.Int).SetUint64(want[i])) != 0 {
			t.Fatalf("digest mismatch at %d\nexpected %v\ngot      %v", i, want, got)
		}
	}
}

func requireSame(t *testing.T, want, got []*big.Int) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.Zero(t, want[i].Cmp(got[i]), "element %d: expected %s, got %s", i, want[i], got[i])
	}
}

func TestNames(t *testing.T) {
	require.Equal(t, []string{
		"anemoi-64-8-4",
		"griffin-64-8-4",
		"rescue-prime-252-4-2",
		"rescue-prime-63-14-7",
		"rescue-prime-63-8-4",
		"rescue-prime-64-12-8",
		"rescue-prime-64-14-7",
		"rescue-prime-64-8-4",
	}, algohash.Names())
}

func TestInfo(t *testing.T) {
	tests := []struct {
		name                                  string
		family, field                         string
		width, rate, capacity, digest, rounds int
		alpha                                 uint64
		elementBytes                          int
	}{
		{"rescue-prime-64-8-4", "rescue-prime", algohash.FieldGoldilocks, 8, 4, 4, 4, 7, 7, 8},
		{"rescue-prime-64-12-8", "rescue-prime", algohash.FieldGoldilocks, 12, 8, 4, 4, 7, 7, 8},
		{"rescue-prime-64-14-7", "rescue-prime", algohash.FieldGoldilocks, 14, 7, 7, 7, 7, 7, 8},
		{"rescue-prime-63-8-4", "rescue-prime", algohash.FieldF63, 8, 4, 4, 4, 7, 3, 8},
		{"rescue-prime-63-14-7", "rescue-prime", algohash.FieldF63, 14, 7, 7, 7, 7, 3, 8},
		{"rescue-prime-252-4-2", "rescue-prime", algohash.FieldStark, 4, 2, 2, 2, 14, 3, 32},
		{"anemoi-64-8-4", "anemoi", algohash.FieldGoldilocks, 8, 4, 4, 4, 10, 7, 8},
		{"griffin-64-8-4", "griffin", algohash.FieldGoldilocks, 8, 4, 4, 4, 8, 7, 8},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in, err := algohash.Lookup(tc.name)
			require.NoError(t, err)
			info := in.Info()
			require.Equal(t, tc.name, info.Name)
			require.Equal(t, tc.family, info.Family)
			require.Equal(t, tc.field, info.Field)
			require.Equal(t, tc.width, info.StateSize)
			require.Equal(t, tc.rate, info.Rate)
			require.Equal(t, tc.capacity, info.Capacity)
			require.Equal(t, tc.digest, info.DigestSize)
			require.Equal(t, tc.rounds, info.Rounds)
			require.Equal(t, tc.alpha, info.Alpha)
			require.Equal(t, tc.elementBytes, info.ElementBytes())
			require.Len(t, in.HashBytes([]byte("x")), tc.digest)
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := algohash.Lookup("poseidon")
	require.ErrorIs(t, err, algohash.ErrUnknownInstance)
}

func TestRegistryMatchesTypedAccessors(t *testing.T) {
	in, err := algohash.Lookup("rescue-prime-64-8-4")
	require.NoError(t, err)
	got, err := in.Hash(bigs(1, 2, 3, 4))
	require.NoError(t, err)
	requireDigest(t, []uint64{10609005275796322562, 2683039409766732129, 3412776821065195266, 13781925893154001115}, got)

	native := algohash.Rescue64x8x4().Hash(field.FromUint64s[goldilocks.Element]([]uint64{1, 2, 3, 4})...)
	requireSame(t, field.ToBigInts(native.Elements()), got)

	a, err := algohash.Lookup("anemoi-64-8-4")
	require.NoError(t, err)
	requireDigest(t, []uint64{5113449599113052961, 8201280012487361135, 8092616682629598698, 7242844815603810699},
		a.HashBytes([]byte("hello world")))
}

func TestHashRejectsNonCanonical(t *testing.T) {
	in, err := algohash.Lookup("rescue-prime-63-8-4")
	require.NoError(t, err)
	p := in.Info().Modulus
	_, err = in.Hash([]*big.Int{big.NewInt(1), p})
	require.ErrorIs(t, err, field.ErrNonCanonical)
	require.ErrorContains(t, err, "element 1")

	_, err = in.Hash([]*big.Int{big.NewInt(-1)})
	require.ErrorIs(t, err, field.ErrNonCanonical)

	_, err = in.Hash([]*big.Int{big.NewInt(3), nil})
	require.ErrorIs(t, err, field.ErrNonCanonical)
	require.ErrorContains(t, err, "element 1: algohash: non-canonical field element: nil integer")

	d, err := in.Hash(bigs(1))
	require.NoError(t, err)
	d[2] = nil
	_, err = in.Merge(d, d)
	require.ErrorIs(t, err, field.ErrNonCanonical)
	_, err = in.EncodeDigest(d)
	require.ErrorIs(t, err, field.ErrNonCanonical)
}

func TestHasherStateIsBoundToInstance(t *testing.T) {
	h := algohash.Rescue64x8x4().NewHasher()
	h.Absorb(field.FromUint64s[goldilocks.Element]([]uint64{1, 2})...)
	b, err := h.MarshalBinary()
	require.NoError(t, err)

	require.NoError(t, algohash.Rescue64x8x4().NewHasher().UnmarshalBinary(b))
	require.ErrorContains(t, algohash.Anemoi64x8x4().NewHasher().UnmarshalBinary(b), "not a state of anemoi-64-8-4")
	require.Error(t, algohash.Griffin64x8x4().NewHasher().UnmarshalBinary(b))
}

func TestMergeAndDigestEncoding(t *testing.T) {
	in, err := algohash.Lookup("rescue-prime-64-8-4")
	require.NoError(t, err)
	one, err := in.Hash(bigs(1))
	require.NoError(t, err)
	two, err := in.Hash(bigs(2))
	require.NoError(t, err)

	m, err := in.Merge(one, two)
	require.NoError(t, err)
	requireDigest(t, []uint64{13386317102618489881, 13229297494160849681, 11339703262824098973, 12846063686822869580}, m)

	_, err = in.Merge(one, two[:3])
	require.Error(t, err)

	b, err := in.EncodeDigest(m)
	require.NoError(t, err)
	require.Len(t, b, 32)
	back, err := in.DecodeDigest(b)
	require.NoError(t, err)
	requireSame(t, m, back)

	_, err = in.DecodeDigest(b[1:])
	require.ErrorIs(t, err, field.ErrNonCanonical)
}

func TestInfoIsACopy(t *testing.T) {
	in, err := algohash.Lookup("griffin-64-8-4")
	require.NoError(t, err)
	in.Info().Modulus.SetInt64(5)
	require.Zero(t, in.Info().Modulus.Cmp(goldilocks.Modulus()))
}
