package sponge_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/field/goldilocks"
	"github.com/stretchr/testify/require"

	"github.com/vocdoni/algohash/field"
	"github.com/vocdoni/algohash/sponge"
)

type fe = goldilocks.Element

// mixer is a small invertible permutation used to exercise the sponge
// without depending on a real instantiation.
type mixer struct {
	width int
	name  string
}

func (m mixer) Name() string {
	if m.name == "" {
		return "mixer"
	}
	return m.name
}

func (m mixer) StateSize() int { return m.width }

func (m mixer) Permute(s []fe) {
	if len(s) != m.width {
		panic("mixer: wrong width")
	}
	for r := range 4 {
		var sum fe
		for i := range s {
			field.PowUint64[fe](&s[i], &s[i], 7)
			c := goldilocks.NewElement(uint64(r*len(s) + i + 1))
			s[i].Add(&s[i], &c)
			sum.Add(&sum, &s[i])
		}
		for i := range s {
			s[i].Add(&s[i], &sum)
		}
	}
}

func newHasher() *sponge.Hasher[fe, *fe] {
	return sponge.New[fe](mixer{width: 8}, 4, 4)
}

func elems(vs ...uint64) []fe { return field.FromUint64s[fe](vs) }

func hash(vs ...uint64) sponge.Digest[fe, *fe] {
	h := newHasher()
	h.Absorb(elems(vs...)...)
	return h.Finalize()
}

func TestPaddingSeparatesLengths(t *testing.T) {
	inputs := [][]uint64{
		{},
		{0},
		{0, 0},
		{5},
		{5, 1},
		{5, 1, 0},
		{1, 2, 3},
		{1, 2, 3, 1},
		{1, 2, 3, 4},
		{1, 2, 3, 4, 0},
		{1, 2, 3, 4, 1},
		{1, 2, 3, 4, 5, 6, 7, 8},
	}
	seen := map[string]int{}
	for i, in := range inputs {
		d := hash(in...)
		require.Equal(t, 4, d.Len())
		if j, ok := seen[d.Hex()]; ok {
			t.Fatalf("inputs %v and %v collide", inputs[j], in)
		}
		seen[d.Hex()] = i
	}
}

func TestStreamingMatchesOneShot(t *testing.T) {
	in := elems(9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 11)
	want := newHasher()
	want.Absorb(in...)

	for _, split := range []int{0, 1, 3, 4, 5, 8, 11} {
		h := newHasher()
		h.Absorb(in[:split]...)
		h.Absorb(in[split:]...)
		require.True(t, want.Finalize().Equal(h.Finalize()), "split at %d", split)
	}
	require.Equal(t, uint64(len(in)), want.Absorbed())
}

func TestFinalizeDoesNotMutate(t *testing.T) {
	h := newHasher()
	h.Absorb(elems(1, 2, 3)...)
	first := h.Finalize()
	require.True(t, first.Equal(h.Finalize()))

	h.Absorb(elems(4, 5)...)
	require.True(t, hash(1, 2, 3, 4, 5).Equal(h.Finalize()))
}

func TestResetAndClone(t *testing.T) {
	h := newHasher()
	h.Absorb(elems(1, 2, 3, 4, 5)...)
	c := h.Clone()
	h.Reset()
	require.True(t, hash().Equal(h.Finalize()))
	require.True(t, hash(1, 2, 3, 4, 5).Equal(c.Finalize()))
	require.Zero(t, h.Absorbed())
}

func TestSqueeze(t *testing.T) {
	h := newHasher()
	h.Absorb(elems(1, 2)...)
	d := h.Finalize()

	long := h.Squeeze(10)
	require.Len(t, long, 10)
	require.True(t, field.Equal[fe](d.Elements(), long[:4]))
	require.True(t, field.Equal[fe](h.Squeeze(6), long[:6]))
	require.False(t, field.Equal[fe](long[:4], long[4:8]))
}

func TestAbsorbBytes(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	h := newHasher()
	h.AbsorbBytes(data)

	want := newHasher()
	want.Absorb(field.EncodeBytes[fe](data, goldilocks.Modulus())...)
	require.True(t, want.Finalize().Equal(h.Finalize()))
}

func TestMarshalRoundTrip(t *testing.T) {
	h := newHasher()
	h.Absorb(elems(10, 20, 30, 40, 50, 60)...)
	b, err := h.MarshalBinary()
	require.NoError(t, err)

	r := newHasher()
	require.NoError(t, r.UnmarshalBinary(b))
	require.Equal(t, h.Absorbed(), r.Absorbed())

	h.Absorb(elems(70)...)
	r.Absorb(elems(70)...)
	require.True(t, h.Finalize().Equal(r.Finalize()))
}

func TestUnmarshalRejects(t *testing.T) {
	h := newHasher()
	h.Absorb(elems(1, 2, 3, 4, 5)...)
	good, err := h.MarshalBinary()
	require.NoError(t, err)

	corrupt := func(f func(b []byte) []byte) []byte {
		b := append([]byte(nil), good...)
		return f(b)
	}
	tests := map[string][]byte{
		"short":  good[:len(good)-1],
		"magic":  corrupt(func(b []byte) []byte { b[0] = 'x'; return b }),
		"name":   corrupt(func(b []byte) []byte { b[5] = 'M'; return b }),
		"length": corrupt(func(b []byte) []byte { b[4] = 200; return b }),
		"element": corrupt(func(b []byte) []byte {
			// header is "ahs\x01", 5, "mixer"
			for i := 10; i < 18; i++ {
				b[i] = 0xff
			}
			return b
		}),
		"index": corrupt(func(b []byte) []byte { b[len(b)-9] = 4; return b }),
		"count": corrupt(func(b []byte) []byte { b[len(b)-1] = 6; return b }),
	}
	for name, b := range tests {
		t.Run(name, func(t *testing.T) {
			require.Error(t, newHasher().UnmarshalBinary(b))
		})
	}

	// same width and field, different permutation
	other := sponge.New[fe](mixer{width: 8, name: "other"}, 4, 4)
	require.ErrorContains(t, other.UnmarshalBinary(good), "not a state of other")
}

func TestSqueezeRejectsNegativeLength(t *testing.T) {
	require.PanicsWithValue(t, "algohash: mixer: squeeze of -1 elements", func() { newHasher().Squeeze(-1) })
}

func TestDigestEncoding(t *testing.T) {
	d := hash(1, 2, 3)
	b := d.Bytes()
	require.Len(t, b, 4*goldilocks.Bytes)

	back, err := sponge.DecodeDigest[fe](b, 4)
	require.NoError(t, err)
	require.True(t, d.Equal(back))

	_, err = sponge.DecodeDigest[fe](b[:31], 4)
	require.ErrorIs(t, err, field.ErrNonCanonical)

	for i := range goldilocks.Bytes {
		b[i] = 0xff
	}
	_, err = sponge.DecodeDigest[fe](b, 4)
	require.ErrorIs(t, err, field.ErrNonCanonical)

	// the digest owns its elements
	es := d.Elements()
	es[0].SetZero()
	require.True(t, d.Equal(back))
}

func TestNewRejectsBadShape(t *testing.T) {
	require.Panics(t, func() { sponge.New[fe](mixer{width: 8}, 8, 4) })
	require.Panics(t, func() { sponge.New[fe](mixer{width: 8}, 0, 4) })
	require.Panics(t, func() { sponge.New[fe](mixer{width: 8}, 4, 0) })
}

func TestJive(t *testing.T) {
	a, b := hash(1), hash(2)
	got := sponge.Jive(sponge.Permutation[fe](mixer{width: 8}), a, b)

	state := append(a.Elements(), b.Elements()...)
	mixer{width: 8}.Permute(state)
	ae, be := a.Elements(), b.Elements()
	for i := range 4 {
		var want fe
		want.Add(&ae[i], &be[i])
		want.Add(&want, &state[i])
		want.Add(&want, &state[i+4])
		require.True(t, want.Equal(&got.Elements()[i]), "element %d", i)
	}
	require.False(t, got.Equal(sponge.Jive(sponge.Permutation[fe](mixer{width: 8}), b, a)))
	require.Panics(t, func() { sponge.Jive(sponge.Permutation[fe](mixer{width: 8}), a, sponge.NewDigest[fe](ae[:3])) })
}
