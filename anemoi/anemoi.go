// Package anemoi implements the Anemoi permutation (Flystel S-box over
// paired columns) and its sponge and Jive modes.
package anemoi

import (
	"fmt"

	"github.com/vocdoni/algohash/field"
	"github.com/vocdoni/algohash/internal/params"
	"github.com/vocdoni/algohash/sponge"
)

// Digest is an Anemoi hash output.
type Digest[E any, P field.Element[E]] = sponge.Digest[E, P]

// Permutation is an Anemoi instantiation. The state is split into
// x = state[:Columns] and y = state[Columns:].
type Permutation[E any, P field.Element[E]] struct {
	params *params.Anemoi[E]
	mdsInv []E
}

// New validates p and builds the permutation.
func New[E any, P field.Element[E]](p *params.Anemoi[E]) (*Permutation[E, P], error) {
	if err := params.ValidateAnemoi[E, P](p); err != nil {
		return nil, err
	}
	inv, err := field.Invert[E, P](p.MDS, p.Columns)
	if err != nil {
		return nil, fmt.Errorf("algohash: %s: mds: %w", p.Name, err)
	}
	return &Permutation[E, P]{params: p, mdsInv: inv}, nil
}

// MustNew is New for compiled-in parameter sets.
func MustNew[E any, P field.Element[E]](p *params.Anemoi[E]) *Permutation[E, P] {
	perm, err := New[E, P](p)
	if err != nil {
		panic(err)
	}
	return perm
}

func (a *Permutation[E, P]) Name() string    { return a.params.Name }
func (a *Permutation[E, P]) StateSize() int  { return a.params.StateSize() }
func (a *Permutation[E, P]) Rate() int       { return a.params.Rate }
func (a *Permutation[E, P]) DigestSize() int { return a.params.DigestSize }
func (a *Permutation[E, P]) Rounds() int     { return a.params.Rounds }

func (a *Permutation[E, P]) checkWidth(state []E) {
	if len(state) != a.params.StateSize() {
		panic(fmt.Sprintf("algohash: %s: state has %d elements, want %d", a.params.Name, len(state), a.params.StateSize()))
	}
}

// Permute applies all rounds and the closing linear layer to state in place.
func (a *Permutation[E, P]) Permute(state []E) {
	a.checkWidth(state)
	tmp := make([]E, a.params.Columns)
	for r := range a.params.Rounds {
		a.round(state, tmp, r)
	}
	a.linear(state, tmp)
}

// Round applies round r alone, without the closing linear layer.
func (a *Permutation[E, P]) Round(state []E, r int) {
	a.checkWidth(state)
	a.round(state, make([]E, a.params.Columns), r)
}

func (a *Permutation[E, P]) round(state, tmp []E, r int) {
	nc := a.params.Columns
	field.AddVec[E, P](state[:nc], a.params.C[r*nc:(r+1)*nc])
	field.AddVec[E, P](state[nc:], a.params.D[r*nc:(r+1)*nc])
	a.linear(state, tmp)
	a.flystel(state)
}

// InversePermute undoes Permute.
func (a *Permutation[E, P]) InversePermute(state []E) {
	a.checkWidth(state)
	tmp := make([]E, a.params.Columns)
	a.inverseLinear(state, tmp)
	for r := a.params.Rounds - 1; r >= 0; r-- {
		a.inverseRound(state, tmp, r)
	}
}

// InverseRound undoes Round(state, r).
func (a *Permutation[E, P]) InverseRound(state []E, r int) {
	a.checkWidth(state)
	a.inverseRound(state, make([]E, a.params.Columns), r)
}

func (a *Permutation[E, P]) inverseRound(state, tmp []E, r int) {
	nc := a.params.Columns
	a.inverseFlystel(state)
	a.inverseLinear(state, tmp)
	field.SubVec[E, P](state[:nc], a.params.C[r*nc:(r+1)*nc])
	field.SubVec[E, P](state[nc:], a.params.D[r*nc:(r+1)*nc])
}

// linear applies the MDS matrix to x and to y rotated left by one.
func (a *Permutation[E, P]) linear(state, tmp []E) {
	nc := a.params.Columns
	x, y := state[:nc], state[nc:]
	field.MulVec[E, P](tmp, a.params.MDS, x)
	copy(x, tmp)

	first := y[0]
	copy(y, y[1:])
	y[nc-1] = first
	field.MulVec[E, P](tmp, a.params.MDS, y)
	copy(y, tmp)
}

// inverseLinear applies the inverse MDS matrix to x and to y, then rotates
// y right by one.
func (a *Permutation[E, P]) inverseLinear(state, tmp []E) {
	nc := a.params.Columns
	x, y := state[:nc], state[nc:]
	field.MulVec[E, P](tmp, a.mdsInv, x)
	copy(x, tmp)

	field.MulVec[E, P](tmp, a.mdsInv, y)
	y[0] = tmp[nc-1]
	copy(y[1:], tmp[:nc-1])
}

func (a *Permutation[E, P]) flystel(state []E) {
	nc := a.params.Columns
	beta, delta := &a.params.Beta, &a.params.Delta
	var t E
	for i := range nc {
		x, y := &state[i], &state[nc+i]

		P(&t).Square(y)
		P(&t).Mul(&t, beta)
		P(x).Sub(x, &t)

		P(&t).Exp(*x, a.params.Alpha.Inverse)
		P(y).Sub(y, &t)

		P(&t).Square(y)
		P(&t).Mul(&t, beta)
		P(x).Add(x, &t)
		P(x).Add(x, delta)
	}
}

func (a *Permutation[E, P]) inverseFlystel(state []E) {
	nc := a.params.Columns
	beta, delta := &a.params.Beta, &a.params.Delta
	var t E
	for i := range nc {
		x, y := &state[i], &state[nc+i]

		P(x).Sub(x, delta)
		P(&t).Square(y)
		P(&t).Mul(&t, beta)
		P(x).Sub(x, &t)

		P(&t).Exp(*x, a.params.Alpha.Inverse)
		P(y).Add(y, &t)

		P(&t).Square(y)
		P(&t).Mul(&t, beta)
		P(x).Add(x, &t)
	}
}

// NewHasher returns an empty streaming hasher.
func (a *Permutation[E, P]) NewHasher() *sponge.Hasher[E, P] {
	return sponge.New[E, P](a, a.params.Rate, a.params.DigestSize)
}

// Hash returns the digest of elems.
func (a *Permutation[E, P]) Hash(elems ...E) Digest[E, P] {
	h := a.NewHasher()
	h.Absorb(elems...)
	return h.Finalize()
}

// HashBytes returns the digest of the field encoding of data.
func (a *Permutation[E, P]) HashBytes(data []byte) Digest[E, P] {
	h := a.NewHasher()
	h.AbsorbBytes(data)
	return h.Finalize()
}

// Compress is the Jive compression of two digests.
func (a *Permutation[E, P]) Compress(x, y Digest[E, P]) Digest[E, P] {
	return sponge.Jive[E, P](a, x, y)
}

// Merge is Compress.
func (a *Permutation[E, P]) Merge(x, y Digest[E, P]) Digest[E, P] { return a.Compress(x, y) }
