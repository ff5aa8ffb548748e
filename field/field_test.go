package field_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	"github.com/consensys/gnark-crypto/field/goldilocks"
	"github.com/stretchr/testify/require"

	"github.com/vocdoni/algohash/field"
	"github.com/vocdoni/algohash/field/f63"
)

func TestEncodeBytes(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want []uint64
	}{
		{name: "empty", data: nil, want: []uint64{1}},
		{name: "one byte", data: []byte{0x01}, want: []uint64{0x0101}},
		{name: "hello world", data: []byte("hello world"), want: []uint64{33531185161069928, 5979796079}},
		{name: "full chunk", data: []byte{1, 2, 3, 4, 5, 6, 7}, want: []uint64{0x01_07_06_05_04_03_02_01}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := field.EncodeBytes[goldilocks.Element](tc.data, goldilocks.Modulus())
			require.Len(t, got, len(tc.want))
			for i, w := range tc.want {
				require.Equal(t, w, got[i].Uint64(), "element %d", i)
			}
		})
	}
}

func TestEncodeBytesTrailingZeros(t *testing.T) {
	seen := map[string]int{}
	data := []byte{}
	for n := range 20 {
		enc := field.EncodeBytes[f63.Element](data, f63.Modulus())
		key := string(field.Marshal(enc))
		if prev, ok := seen[key]; ok {
			t.Fatalf("%d zero bytes collide with %d zero bytes", n, prev)
		}
		seen[key] = n
		data = append(data, 0)
	}
}

func TestEncodeBytesWideField(t *testing.T) {
	require.Equal(t, 31, field.ChunkSize(fp.Modulus()))
	data := make([]byte, 62)
	for i := range data {
		data[i] = 0xff
	}
	got := field.EncodeBytes[fp.Element](data, fp.Modulus())
	require.Len(t, got, 2)
	want := new(big.Int).Lsh(big.NewInt(1), 31*8)
	want.Add(want, new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 31*8), big.NewInt(1)))
	require.Equal(t, 0, got[1].BigInt(new(big.Int)).Cmp(want))
}

func TestInvert(t *testing.T) {
	n := 5
	m := make([]goldilocks.Element, n*n)
	for i := range n {
		for j := range n {
			// Cauchy matrix 1/(x_i - y_j), always invertible
			var d goldilocks.Element
			d.SetUint64(uint64(i + n + 1))
			var y goldilocks.Element
			y.SetUint64(uint64(j))
			d.Sub(&d, &y)
			m[i*n+j].Inverse(&d)
		}
	}
	inv, err := field.Invert(m, n)
	require.NoError(t, err)

	col := make([]goldilocks.Element, n)
	out := make([]goldilocks.Element, n)
	back := make([]goldilocks.Element, n)
	for i := range col {
		col[i].SetUint64(uint64(i*i + 3))
	}
	field.MulVec(out, m, col)
	field.MulVec(back, inv, out)
	require.True(t, field.Equal(col, back))

	singular := make([]goldilocks.Element, 4)
	for i := range singular {
		singular[i].SetOne()
	}
	_, err = field.Invert(singular, 2)
	require.ErrorIs(t, err, field.ErrSingular)
}

func TestPowUint64(t *testing.T) {
	var x goldilocks.Element
	x.SetUint64(0xdeadbeef)
	for _, k := range []uint64{0, 1, 2, 3, 7, 10540996611094048183} {
		var got, want goldilocks.Element
		field.PowUint64(&got, &x, k)
		want.Exp(x, new(big.Int).SetUint64(k))
		require.True(t, got.Equal(&want), "k=%d", k)
	}
}

func TestUnmarshalRejectsNonCanonical(t *testing.T) {
	es := field.FromUint64s[goldilocks.Element]([]uint64{1, 2, 3})
	b := field.Marshal(es)
	back, err := field.Unmarshal[goldilocks.Element](b, 3)
	require.NoError(t, err)
	require.True(t, field.Equal(es, back))

	_, err = field.Unmarshal[goldilocks.Element](b[:len(b)-1], 3)
	require.ErrorIs(t, err, field.ErrNonCanonical)

	bad := append([]byte(nil), b...)
	for i := 8; i < 16; i++ {
		bad[i] = 0xff
	}
	_, err = field.Unmarshal[goldilocks.Element](bad, 3)
	require.True(t, errors.Is(err, field.ErrNonCanonical))
	require.Contains(t, err.Error(), "element 1")
}

func TestCanonical(t *testing.T) {
	mod := goldilocks.Modulus()
	_, err := field.Canonical[goldilocks.Element](mod, mod)
	require.ErrorIs(t, err, field.ErrNonCanonical)
	_, err = field.Canonical[goldilocks.Element](big.NewInt(-1), mod)
	require.ErrorIs(t, err, field.ErrNonCanonical)
	_, err = field.Canonical[goldilocks.Element](nil, mod)
	require.ErrorIs(t, err, field.ErrNonCanonical)
	e, err := field.Canonical[goldilocks.Element](big.NewInt(42), mod)
	require.NoError(t, err)
	require.Equal(t, uint64(42), e.Uint64())
}
