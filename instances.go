package algohash

import (
	"sync"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	"github.com/consensys/gnark-crypto/field/goldilocks"

	"github.com/vocdoni/algohash/anemoi"
	"github.com/vocdoni/algohash/field"
	"github.com/vocdoni/algohash/field/f63"
	"github.com/vocdoni/algohash/griffin"
	"github.com/vocdoni/algohash/internal/params"
	"github.com/vocdoni/algohash/rescue"
)

// Field names reported by Info.
const (
	FieldGoldilocks = "goldilocks"
	FieldF63        = "f63"
	FieldStark      = "stark252"
)

// Typed accessors. Each instantiation is built on first use and shared.
var (
	Rescue64x8x4 = sync.OnceValue(func() *rescue.Permutation[goldilocks.Element, *goldilocks.Element] {
		return rescue.MustNew[goldilocks.Element](params.Rescue64x8x4())
	})
	Rescue64x12x8 = sync.OnceValue(func() *rescue.Permutation[goldilocks.Element, *goldilocks.Element] {
		return rescue.MustNew[goldilocks.Element](params.Rescue64x12x8())
	})
	Rescue64x14x7 = sync.OnceValue(func() *rescue.Permutation[goldilocks.Element, *goldilocks.Element] {
		return rescue.MustNew[goldilocks.Element](params.Rescue64x14x7())
	})
	Rescue63x8x4 = sync.OnceValue(func() *rescue.Permutation[f63.Element, *f63.Element] {
		return rescue.MustNew[f63.Element](params.Rescue63x8x4())
	})
	Rescue63x14x7 = sync.OnceValue(func() *rescue.Permutation[f63.Element, *f63.Element] {
		return rescue.MustNew[f63.Element](params.Rescue63x14x7())
	})
	Rescue252x4x2 = sync.OnceValue(func() *rescue.Permutation[fp.Element, *fp.Element] {
		return rescue.MustNew[fp.Element](params.Rescue252x4x2())
	})
	Anemoi64x8x4 = sync.OnceValue(func() *anemoi.Permutation[goldilocks.Element, *goldilocks.Element] {
		return anemoi.MustNew[goldilocks.Element](params.Anemoi64x8x4())
	})
	Griffin64x8x4 = sync.OnceValue(func() *griffin.Permutation[goldilocks.Element, *goldilocks.Element] {
		return griffin.MustNew[goldilocks.Element](params.Griffin64x8x4())
	})
)

func rescueInstance[E any, P field.Element[E]](fieldName string, p *params.Rescue[E], perm *rescue.Permutation[E, P]) Instance {
	return &instance[E, P]{
		info: Info{
			Name: p.Name, Family: "rescue-prime", Field: fieldName, Modulus: p.Modulus,
			StateSize: p.StateSize, Rate: p.Rate, Capacity: p.Capacity(), DigestSize: p.DigestSize,
			Rounds: p.Rounds, Alpha: p.Alpha.Exponent,
		},
		h: perm,
	}
}

func init() {
	register("rescue-prime-64-8-4", func() Instance {
		return rescueInstance(FieldGoldilocks, params.Rescue64x8x4(), Rescue64x8x4())
	})
	register("rescue-prime-64-12-8", func() Instance {
		return rescueInstance(FieldGoldilocks, params.Rescue64x12x8(), Rescue64x12x8())
	})
	register("rescue-prime-64-14-7", func() Instance {
		return rescueInstance(FieldGoldilocks, params.Rescue64x14x7(), Rescue64x14x7())
	})
	register("rescue-prime-63-8-4", func() Instance {
		return rescueInstance(FieldF63, params.Rescue63x8x4(), Rescue63x8x4())
	})
	register("rescue-prime-63-14-7", func() Instance {
		return rescueInstance(FieldF63, params.Rescue63x14x7(), Rescue63x14x7())
	})
	register("rescue-prime-252-4-2", func() Instance {
		return rescueInstance(FieldStark, params.Rescue252x4x2(), Rescue252x4x2())
	})
	register("anemoi-64-8-4", func() Instance {
		p := params.Anemoi64x8x4()
		return &instance[goldilocks.Element, *goldilocks.Element]{
			info: Info{
				Name: p.Name, Family: "anemoi", Field: FieldGoldilocks, Modulus: p.Modulus,
				StateSize: p.StateSize(), Rate: p.Rate, Capacity: p.Capacity(), DigestSize: p.DigestSize,
				Rounds: p.Rounds, Alpha: p.Alpha.Exponent,
			},
			h: Anemoi64x8x4(),
		}
	})
	register("griffin-64-8-4", func() Instance {
		p := params.Griffin64x8x4()
		return &instance[goldilocks.Element, *goldilocks.Element]{
			info: Info{
				Name: p.Name, Family: "griffin", Field: FieldGoldilocks, Modulus: p.Modulus,
				StateSize: p.StateSize, Rate: p.Rate, Capacity: p.Capacity(), DigestSize: p.DigestSize,
				Rounds: p.Rounds, Alpha: p.D.Exponent,
			},
			h: Griffin64x8x4(),
		}
	})
}
