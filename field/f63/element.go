// Package f63 implements arithmetic in GF(q) for q = 2^62 + 2^56 + 2^55 + 1.
//
// The API mirrors the gnark-crypto generated field packages so that Element
// satisfies field.Element. Values are kept in canonical (non-Montgomery)
// form, which makes the encoding functions trivial.
package f63

import (
	"encoding/binary"
	"errors"
	"math/big"
	"math/bits"
	"strconv"
)

const (
	Bits  = 63 // number of bits needed to represent an Element
	Bytes = 8  // number of bytes needed to represent an Element

	// q is the field modulus.
	q uint64 = 1<<62 + 1<<56 + 1<<55 + 1
)

// Generator is the smallest multiplicative generator of GF(q)^*.
const Generator = 3

var _modulus big.Int

func init() {
	_modulus.SetUint64(q)
}

// Element is a canonical representative in [0, q).
type Element [1]uint64

// Modulus returns q as a new big.Int.
func Modulus() *big.Int {
	return new(big.Int).SetUint64(q)
}

// NewElement returns v mod q.
func NewElement(v uint64) Element {
	return Element{v % q}
}

// SetUint64 sets z to v mod q and returns z.
func (z *Element) SetUint64(v uint64) *Element {
	z[0] = v % q
	return z
}

// Set copies x into z and returns z.
func (z *Element) Set(x *Element) *Element {
	z[0] = x[0]
	return z
}

// SetZero sets z to 0 and returns z.
func (z *Element) SetZero() *Element {
	z[0] = 0
	return z
}

// SetOne sets z to 1 and returns z.
func (z *Element) SetOne() *Element {
	z[0] = 1
	return z
}

// Equal reports whether z == x.
func (z *Element) Equal(x *Element) bool {
	return z[0] == x[0]
}

// IsZero reports whether z == 0.
func (z *Element) IsZero() bool {
	return z[0] == 0
}

// Uint64 returns the canonical value of z.
func (z *Element) Uint64() uint64 {
	return z[0]
}

// Add sets z = x + y mod q and returns z.
func (z *Element) Add(x, y *Element) *Element {
	// x, y < 2^63, so the sum fits in 64 bits.
	s := x[0] + y[0]
	if s >= q {
		s -= q
	}
	z[0] = s
	return z
}

// Sub sets z = x - y mod q and returns z.
func (z *Element) Sub(x, y *Element) *Element {
	d, b := bits.Sub64(x[0], y[0], 0)
	if b != 0 {
		d += q
	}
	z[0] = d
	return z
}

// Neg sets z = -x mod q and returns z.
func (z *Element) Neg(x *Element) *Element {
	if x[0] == 0 {
		z[0] = 0
		return z
	}
	z[0] = q - x[0]
	return z
}

// Mul sets z = x * y mod q and returns z.
func (z *Element) Mul(x, y *Element) *Element {
	hi, lo := bits.Mul64(x[0], y[0])
	z[0] = bits.Rem64(hi, lo, q)
	return z
}

// Square sets z = x * x mod q and returns z.
func (z *Element) Square(x *Element) *Element {
	return z.Mul(x, x)
}

// Exp sets z = x^k mod q and returns z. A negative k uses the inverse of x.
func (z *Element) Exp(x Element, k *big.Int) *Element {
	if k.IsUint64() && k.Uint64() == 0 {
		return z.SetOne()
	}
	e := k
	if k.Sign() < 0 {
		x.Inverse(&x)
		e = new(big.Int).Neg(k)
	}
	z.Set(&x)
	for i := e.BitLen() - 2; i >= 0; i-- {
		z.Square(z)
		if e.Bit(i) == 1 {
			z.Mul(z, &x)
		}
	}
	return z
}

// expUint64 sets z = x^k for a machine-word exponent.
func (z *Element) expUint64(x Element, k uint64) *Element {
	res := Element{1}
	for k > 0 {
		if k&1 == 1 {
			res.Mul(&res, &x)
		}
		x.Square(&x)
		k >>= 1
	}
	*z = res
	return z
}

// Inverse sets z = x^-1 mod q and returns z. The inverse of 0 is 0.
func (z *Element) Inverse(x *Element) *Element {
	if x.IsZero() {
		return z.SetZero()
	}
	return z.expUint64(*x, q-2)
}

// BigInt sets res to the value of z and returns res.
func (z *Element) BigInt(res *big.Int) *big.Int {
	return res.SetUint64(z[0])
}

// SetBigInt sets z to v mod q and returns z.
func (z *Element) SetBigInt(v *big.Int) *Element {
	if v.Sign() >= 0 && v.IsUint64() {
		return z.SetUint64(v.Uint64())
	}
	r := new(big.Int).Mod(v, &_modulus)
	z[0] = r.Uint64()
	return z
}

// SetString parses a base-prefixed integer ("0x", "0b", ... or decimal) and
// sets z to its value mod q.
func (z *Element) SetString(number string) (*Element, error) {
	v, ok := new(big.Int).SetString(number, 0)
	if !ok {
		return nil, errors.New("f63.Element.SetString failed -> can't parse number into a big.Int " + number)
	}
	return z.SetBigInt(v), nil
}

// String returns the decimal value of z.
func (z *Element) String() string {
	return strconv.FormatUint(z[0], 10)
}

// Bytes returns the big-endian encoding of z.
func (z *Element) Bytes() (res [Bytes]byte) {
	binary.BigEndian.PutUint64(res[:], z[0])
	return
}

// Marshal returns the big-endian encoding of z as a slice.
func (z *Element) Marshal() []byte {
	b := z.Bytes()
	return b[:]
}

// SetBytesCanonical interprets e as an 8-byte big-endian integer and fails if
// e has the wrong length or encodes a value >= q.
func (z *Element) SetBytesCanonical(e []byte) error {
	if len(e) != Bytes {
		return errors.New("invalid f63.Element encoding")
	}
	v := binary.BigEndian.Uint64(e)
	if v >= q {
		return errors.New("invalid f63.Element encoding")
	}
	z[0] = v
	return nil
}
