// Package rescue implements the Rescue-Prime permutation and the sponge
// hash built on it, generic over the field element type.
package rescue

import (
	"fmt"
	"math/big"

	"github.com/vocdoni/algohash/field"
	"github.com/vocdoni/algohash/internal/params"
)

// Permutation is a Rescue-Prime instantiation. It is immutable and safe
// for concurrent use.
type Permutation[E any, P field.Element[E]] struct {
	params *params.Rescue[E]
	mdsInv []E
}

// New validates p and builds the permutation.
func New[E any, P field.Element[E]](p *params.Rescue[E]) (*Permutation[E, P], error) {
	if err := params.ValidateRescue(p); err != nil {
		return nil, err
	}
	inv, err := field.Invert[E, P](p.MDS, p.StateSize)
	if err != nil {
		return nil, fmt.Errorf("algohash: %s: mds: %w", p.Name, err)
	}
	return &Permutation[E, P]{params: p, mdsInv: inv}, nil
}

// MustNew is New for compiled-in parameter sets.
func MustNew[E any, P field.Element[E]](p *params.Rescue[E]) *Permutation[E, P] {
	perm, err := New[E, P](p)
	if err != nil {
		panic(err)
	}
	return perm
}

func (r *Permutation[E, P]) Name() string    { return r.params.Name }
func (r *Permutation[E, P]) StateSize() int  { return r.params.StateSize }
func (r *Permutation[E, P]) Rate() int       { return r.params.Rate }
func (r *Permutation[E, P]) DigestSize() int { return r.params.DigestSize }
func (r *Permutation[E, P]) Rounds() int     { return r.params.Rounds }

// Modulus returns the field characteristic.
func (r *Permutation[E, P]) Modulus() *big.Int { return new(big.Int).Set(r.params.Modulus) }

// Constants is the integer form of an instantiation, for consumers that do
// not work with native field elements (the circuit gadget).
type Constants struct {
	Name       string
	Modulus    *big.Int
	StateSize  int
	Rate       int
	DigestSize int
	Rounds     int
	Alpha      uint64
	AlphaInv   *big.Int
	MDS        []*big.Int
	ARK        []*big.Int
}

// Constants exports the parameters as integers.
func (r *Permutation[E, P]) Constants() Constants {
	p := r.params
	return Constants{
		Name:       p.Name,
		Modulus:    new(big.Int).Set(p.Modulus),
		StateSize:  p.StateSize,
		Rate:       p.Rate,
		DigestSize: p.DigestSize,
		Rounds:     p.Rounds,
		Alpha:      p.Alpha.Exponent,
		AlphaInv:   new(big.Int).Set(p.Alpha.Inverse),
		MDS:        field.ToBigInts[E, P](p.MDS),
		ARK:        field.ToBigInts[E, P](p.ARK),
	}
}

func (r *Permutation[E, P]) checkWidth(state []E) {
	if len(state) != r.params.StateSize {
		panic(fmt.Sprintf("algohash: %s: state has %d elements, want %d", r.params.Name, len(state), r.params.StateSize))
	}
}

// Permute applies all rounds to state in place.
func (r *Permutation[E, P]) Permute(state []E) {
	r.checkWidth(state)
	tmp := make([]E, len(state))
	for i := range r.params.Rounds {
		r.round(state, tmp, i)
	}
}

// Round applies round i alone.
func (r *Permutation[E, P]) Round(state []E, i int) {
	r.checkWidth(state)
	r.round(state, make([]E, len(state)), i)
}

func (r *Permutation[E, P]) round(state, tmp []E, i int) {
	m := r.params.StateSize
	ark := r.params.ARK

	for j := range state {
		field.PowUint64[E, P](&state[j], &state[j], r.params.Alpha.Exponent)
	}
	field.MulVec[E, P](tmp, r.params.MDS, state)
	copy(state, tmp)
	field.AddVec[E, P](state, ark[2*i*m:(2*i+1)*m])

	for j := range state {
		P(&state[j]).Exp(state[j], r.params.Alpha.Inverse)
	}
	field.MulVec[E, P](tmp, r.params.MDS, state)
	copy(state, tmp)
	field.AddVec[E, P](state, ark[(2*i+1)*m:(2*i+2)*m])
}

// InversePermute undoes Permute.
func (r *Permutation[E, P]) InversePermute(state []E) {
	r.checkWidth(state)
	tmp := make([]E, len(state))
	for i := r.params.Rounds - 1; i >= 0; i-- {
		r.inverseRound(state, tmp, i)
	}
}

// InverseRound undoes Round(state, i).
func (r *Permutation[E, P]) InverseRound(state []E, i int) {
	r.checkWidth(state)
	r.inverseRound(state, make([]E, len(state)), i)
}

func (r *Permutation[E, P]) inverseRound(state, tmp []E, i int) {
	m := r.params.StateSize
	ark := r.params.ARK

	field.SubVec[E, P](state, ark[(2*i+1)*m:(2*i+2)*m])
	field.MulVec[E, P](tmp, r.mdsInv, state)
	copy(state, tmp)
	for j := range state {
		field.PowUint64[E, P](&state[j], &state[j], r.params.Alpha.Exponent)
	}

	field.SubVec[E, P](state, ark[2*i*m:(2*i+1)*m])
	field.MulVec[E, P](tmp, r.mdsInv, state)
	copy(state, tmp)
	for j := range state {
		P(&state[j]).Exp(state[j], r.params.Alpha.Inverse)
	}
}
