package params

import "math/big"

// Alpha captures an S-box power map x -> x^Exponent together with the
// exponent of its inverse map, Inverse = Exponent^-1 mod (p-1).
type Alpha struct {
	Exponent uint64
	Inverse  *big.Int
}

// Rescue bundles all constants needed by a Rescue-Prime permutation.
type Rescue[E any] struct {
	Name       string
	Modulus    *big.Int
	StateSize  int
	Rate       int
	DigestSize int
	Rounds     int
	Alpha      Alpha

	// MDS is the StateSize×StateSize diffusion matrix, row-major.
	MDS []E
	// ARK holds 2·Rounds rows of StateSize constants, one row per
	// half-round.
	ARK []E
}

// Capacity returns StateSize - Rate.
func (p *Rescue[E]) Capacity() int { return p.StateSize - p.Rate }

// Anemoi bundles the constants of an Anemoi permutation with Columns
// Flystel columns (state width 2·Columns).
type Anemoi[E any] struct {
	Name       string
	Modulus    *big.Int
	Columns    int
	Rate       int
	DigestSize int
	Rounds     int
	Alpha      Alpha

	// Beta is the multiplier of the quadratic Flystel branch (the field
	// generator) and Delta its inverse.
	Beta  E
	Delta E

	// MDS is the Columns×Columns linear layer applied to each half.
	MDS []E
	// C and D hold Rounds rows of Columns constants for x and y.
	C []E
	D []E
}

// StateSize returns the full state width.
func (p *Anemoi[E]) StateSize() int { return 2 * p.Columns }

// Capacity returns StateSize - Rate.
func (p *Anemoi[E]) Capacity() int { return p.StateSize() - p.Rate }

// Griffin bundles the constants of a Griffin permutation.
type Griffin[E any] struct {
	Name       string
	Modulus    *big.Int
	StateSize  int
	Rate       int
	DigestSize int
	Rounds     int
	D          Alpha

	// AlphaI and BetaI are the coefficients of the quadratic maps applied to
	// state elements 2..StateSize-1.
	AlphaI []E
	BetaI  []E

	MDS []E
	// ARK holds Rounds-1 rows of StateSize constants; the last round has
	// none.
	ARK []E
}

// Capacity returns StateSize - Rate.
func (p *Griffin[E]) Capacity() int { return p.StateSize - p.Rate }
