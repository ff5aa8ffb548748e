// Package field defines the field element contract shared by every
// permutation in this module, plus the vector and encoding helpers built on
// top of it.
//
// The contract is satisfied by the gnark-crypto element types
// (goldilocks.Element, stark-curve fp.Element, ...) and by f63.Element.
package field

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrNonCanonical is returned when a byte string or integer does not encode
// a field element in canonical form (value below the modulus, exact width).
var ErrNonCanonical = errors.New("algohash: non-canonical field element")

// Element is the pointer-receiver method set of a prime field element type E.
// Permutations are written once against this constraint and instantiated
// with a concrete E at construction time.
type Element[E any] interface {
	*E
	SetZero() *E
	SetOne() *E
	SetUint64(v uint64) *E
	SetBigInt(v *big.Int) *E
	SetString(s string) (*E, error)
	Set(x *E) *E
	Add(x, y *E) *E
	Sub(x, y *E) *E
	Neg(x *E) *E
	Mul(x, y *E) *E
	Square(x *E) *E
	Exp(x E, k *big.Int) *E
	Inverse(x *E) *E
	Equal(x *E) bool
	IsZero() bool
	BigInt(res *big.Int) *big.Int
	Marshal() []byte
	SetBytesCanonical(e []byte) error
	String() string
}

// Modulus returns the characteristic of E, computed as (-1) + 1 over the
// integers.
func Modulus[E any, P Element[E]]() *big.Int {
	var m E
	P(&m).SetOne()
	P(&m).Neg(&m)
	v := P(&m).BigInt(new(big.Int))
	return v.Add(v, big.NewInt(1))
}

// FromUint64s converts a table of canonical integers into field elements.
func FromUint64s[E any, P Element[E]](vs []uint64) []E {
	out := make([]E, len(vs))
	for i, v := range vs {
		P(&out[i]).SetUint64(v)
	}
	return out
}

// FromStrings parses a table of decimal (or 0x-prefixed) integers. It panics
// on malformed input, since it is only used on compiled-in tables.
func FromStrings[E any, P Element[E]](vs []string) []E {
	out := make([]E, len(vs))
	for i, v := range vs {
		if _, err := P(&out[i]).SetString(v); err != nil {
			panic("algohash: bad constant " + v + ": " + err.Error())
		}
	}
	return out
}

// FromBigInts reduces each integer modulo p.
func FromBigInts[E any, P Element[E]](vs []*big.Int) []E {
	out := make([]E, len(vs))
	for i, v := range vs {
		P(&out[i]).SetBigInt(v)
	}
	return out
}

// ToBigInts returns the canonical integer value of each element.
func ToBigInts[E any, P Element[E]](es []E) []*big.Int {
	out := make([]*big.Int, len(es))
	for i := range es {
		out[i] = P(&es[i]).BigInt(new(big.Int))
	}
	return out
}

// Canonical converts v into an element, refusing values outside [0, modulus).
func Canonical[E any, P Element[E]](v, modulus *big.Int) (E, error) {
	var e E
	if v == nil {
		return e, fmt.Errorf("%w: nil integer", ErrNonCanonical)
	}
	if v.Sign() < 0 || v.Cmp(modulus) >= 0 {
		return e, ErrNonCanonical
	}
	P(&e).SetBigInt(v)
	return e, nil
}

// Equal reports whether a and b hold the same elements.
func Equal[E any, P Element[E]](a, b []E) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !P(&a[i]).Equal(&b[i]) {
			return false
		}
	}
	return true
}

// Strings renders elements in decimal.
func Strings[E any, P Element[E]](es []E) []string {
	out := make([]string, len(es))
	for i := range es {
		out[i] = P(&es[i]).String()
	}
	return out
}
