package rescue

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	"github.com/consensys/gnark/std/math/emulated"
	"github.com/consensys/gnark/std/math/emulated/emparams"

	"github.com/vocdoni/algohash/field/f63"
)

// Goldilocks emulates p = 2^64 - 2^32 + 1.
type Goldilocks = emparams.Goldilocks

// F63 emulates p = 2^62 + 2^56 + 2^55 + 1 in one 64-bit limb.
type F63 struct{}

func (F63) NbLimbs() uint     { return 1 }
func (F63) BitsPerLimb() uint { return 64 }
func (F63) IsPrime() bool     { return true }
func (F63) Modulus() *big.Int { return f63.Modulus() }

// Stark emulates the 252-bit STARK prime in four 64-bit limbs.
type Stark struct{}

func (Stark) NbLimbs() uint     { return 4 }
func (Stark) BitsPerLimb() uint { return 64 }
func (Stark) IsPrime() bool     { return true }
func (Stark) Modulus() *big.Int { return fp.Modulus() }

func constElement[T emulated.FieldParams](f *emulated.Field[T], v *big.Int) *emulated.Element[T] {
	return f.NewElement(new(big.Int).Set(v))
}
