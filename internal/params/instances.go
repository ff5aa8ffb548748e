package params

import (
	"math/big"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	"github.com/consensys/gnark-crypto/field/goldilocks"

	"github.com/vocdoni/algohash/field"
	"github.com/vocdoni/algohash/field/f63"
)

// Inverse S-box exponents, alpha^-1 mod (p-1).
var (
	goldilocksInv7, _ = new(big.Int).SetString("10540996611094048183", 10)
	f63Inv3, _        = new(big.Int).SetString("3146514939656186539", 10)
	starkInv3, _      = new(big.Int).SetString("0x555555555555560aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaab", 0)
)

// Parameter sets are built on first use and shared read-only afterwards.
var (
	Rescue64x8x4 = sync.OnceValue(func() *Rescue[goldilocks.Element] {
		return &Rescue[goldilocks.Element]{
			Name: "rescue-prime-64-8-4", Modulus: goldilocks.Modulus(),
			StateSize: 8, Rate: 4, DigestSize: 4, Rounds: 7,
			Alpha: Alpha{Exponent: 7, Inverse: goldilocksInv7},
			MDS:   field.FromUint64s[goldilocks.Element](rescue64x8x4MDS),
			ARK:   field.FromUint64s[goldilocks.Element](rescue64x8x4ARK),
		}
	})

	Rescue64x12x8 = sync.OnceValue(func() *Rescue[goldilocks.Element] {
		return &Rescue[goldilocks.Element]{
			Name: "rescue-prime-64-12-8", Modulus: goldilocks.Modulus(),
			StateSize: 12, Rate: 8, DigestSize: 4, Rounds: 7,
			Alpha: Alpha{Exponent: 7, Inverse: goldilocksInv7},
			MDS:   field.FromUint64s[goldilocks.Element](rescue64x12x8MDS),
			ARK:   field.FromUint64s[goldilocks.Element](rescue64x12x8ARK),
		}
	})

	Rescue64x14x7 = sync.OnceValue(func() *Rescue[goldilocks.Element] {
		return &Rescue[goldilocks.Element]{
			Name: "rescue-prime-64-14-7", Modulus: goldilocks.Modulus(),
			StateSize: 14, Rate: 7, DigestSize: 7, Rounds: 7,
			Alpha: Alpha{Exponent: 7, Inverse: goldilocksInv7},
			MDS:   field.FromUint64s[goldilocks.Element](rescue64x14x7MDS),
			ARK:   field.FromUint64s[goldilocks.Element](rescue64x14x7ARK),
		}
	})

	Rescue63x8x4 = sync.OnceValue(func() *Rescue[f63.Element] {
		return &Rescue[f63.Element]{
			Name: "rescue-prime-63-8-4", Modulus: f63.Modulus(),
			StateSize: 8, Rate: 4, DigestSize: 4, Rounds: 7,
			Alpha: Alpha{Exponent: 3, Inverse: f63Inv3},
			MDS:   field.FromUint64s[f63.Element](rescue63x8x4MDS),
			ARK:   field.FromUint64s[f63.Element](rescue63x8x4ARK),
		}
	})

	Rescue63x14x7 = sync.OnceValue(func() *Rescue[f63.Element] {
		return &Rescue[f63.Element]{
			Name: "rescue-prime-63-14-7", Modulus: f63.Modulus(),
			StateSize: 14, Rate: 7, DigestSize: 7, Rounds: 7,
			Alpha: Alpha{Exponent: 3, Inverse: f63Inv3},
			MDS:   field.FromUint64s[f63.Element](rescue63x14x7MDS),
			ARK:   field.FromUint64s[f63.Element](rescue63x14x7ARK),
		}
	})

	Rescue252x4x2 = sync.OnceValue(func() *Rescue[fp.Element] {
		return &Rescue[fp.Element]{
			Name: "rescue-prime-252-4-2", Modulus: fp.Modulus(),
			StateSize: 4, Rate: 2, DigestSize: 2, Rounds: 14,
			Alpha: Alpha{Exponent: 3, Inverse: starkInv3},
			MDS:   field.FromStrings[fp.Element](rescue252x4x2MDS),
			ARK:   field.FromStrings[fp.Element](rescue252x4x2ARK),
		}
	})

	Anemoi64x8x4 = sync.OnceValue(func() *Anemoi[goldilocks.Element] {
		return &Anemoi[goldilocks.Element]{
			Name: "anemoi-64-8-4", Modulus: goldilocks.Modulus(),
			Columns: 4, Rate: 4, DigestSize: 4, Rounds: 10,
			Alpha: Alpha{Exponent: 7, Inverse: goldilocksInv7},
			Beta:  goldilocks.NewElement(7),
			Delta: goldilocks.NewElement(2635249152773512046),
			MDS:   field.FromUint64s[goldilocks.Element](anemoi64x8x4MDS),
			C:     field.FromUint64s[goldilocks.Element](anemoi64x8x4C),
			D:     field.FromUint64s[goldilocks.Element](anemoi64x8x4D),
		}
	})

	Griffin64x8x4 = sync.OnceValue(func() *Griffin[goldilocks.Element] {
		const width = 8
		alphaI := make([]goldilocks.Element, width-2)
		betaI := make([]goldilocks.Element, width-2)
		alpha := goldilocks.NewElement(griffin64x8x4Alpha)
		beta := goldilocks.NewElement(griffin64x8x4Beta)
		for k := range alphaI {
			c := goldilocks.NewElement(uint64(k + 1))
			alphaI[k].Mul(&alpha, &c)
			c.Square(&c)
			betaI[k].Mul(&beta, &c)
		}
		return &Griffin[goldilocks.Element]{
			Name: "griffin-64-8-4", Modulus: goldilocks.Modulus(),
			StateSize: width, Rate: 4, DigestSize: 4, Rounds: 8,
			D:      Alpha{Exponent: 7, Inverse: goldilocksInv7},
			AlphaI: alphaI,
			BetaI:  betaI,
			MDS:    field.FromUint64s[goldilocks.Element](griffin64x8x4MDS),
			ARK:    field.FromUint64s[goldilocks.Element](griffin64x8x4ARK),
		}
	})
)
