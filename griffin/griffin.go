// Package griffin implements the Griffin permutation and its sponge and Jive
// modes.
package griffin

import (
	"fmt"

	"github.com/vocdoni/algohash/field"
	"github.com/vocdoni/algohash/internal/params"
	"github.com/vocdoni/algohash/sponge"
)

// Digest is a Griffin hash output.
type Digest[E any, P field.Element[E]] = sponge.Digest[E, P]

// Permutation is a Griffin instantiation.
type Permutation[E any, P field.Element[E]] struct {
	params *params.Griffin[E]
	mdsInv []E
}

// New validates p and builds the permutation.
func New[E any, P field.Element[E]](p *params.Griffin[E]) (*Permutation[E, P], error) {
	if err := params.ValidateGriffin(p); err != nil {
		return nil, err
	}
	inv, err := field.Invert[E, P](p.MDS, p.StateSize)
	if err != nil {
		return nil, fmt.Errorf("algohash: %s: mds: %w", p.Name, err)
	}
	return &Permutation[E, P]{params: p, mdsInv: inv}, nil
}

// MustNew is New for compiled-in parameter sets.
func MustNew[E any, P field.Element[E]](p *params.Griffin[E]) *Permutation[E, P] {
	perm, err := New[E, P](p)
	if err != nil {
		panic(err)
	}
	return perm
}

func (g *Permutation[E, P]) Name() string    { return g.params.Name }
func (g *Permutation[E, P]) StateSize() int  { return g.params.StateSize }
func (g *Permutation[E, P]) Rate() int       { return g.params.Rate }
func (g *Permutation[E, P]) DigestSize() int { return g.params.DigestSize }
func (g *Permutation[E, P]) Rounds() int     { return g.params.Rounds }

func (g *Permutation[E, P]) checkWidth(state []E) {
	if len(state) != g.params.StateSize {
		panic(fmt.Sprintf("algohash: %s: state has %d elements, want %d", g.params.Name, len(state), g.params.StateSize))
	}
}

// Permute runs Rounds-1 full rounds followed by a last round without
// constants.
func (g *Permutation[E, P]) Permute(state []E) {
	g.checkWidth(state)
	tmp := make([]E, len(state))
	for r := range g.params.Rounds {
		g.round(state, tmp, r)
	}
}

// Round applies round r alone.
func (g *Permutation[E, P]) Round(state []E, r int) {
	g.checkWidth(state)
	g.round(state, make([]E, len(state)), r)
}

func (g *Permutation[E, P]) round(state, tmp []E, r int) {
	m := g.params.StateSize
	g.nonLinear(state)
	field.MulVec[E, P](tmp, g.params.MDS, state)
	copy(state, tmp)
	if r < g.params.Rounds-1 {
		field.AddVec[E, P](state, g.params.ARK[r*m:(r+1)*m])
	}
}

// InversePermute undoes Permute.
func (g *Permutation[E, P]) InversePermute(state []E) {
	g.checkWidth(state)
	tmp := make([]E, len(state))
	for r := g.params.Rounds - 1; r >= 0; r-- {
		g.inverseRound(state, tmp, r)
	}
}

// InverseRound undoes Round(state, r).
func (g *Permutation[E, P]) InverseRound(state []E, r int) {
	g.checkWidth(state)
	g.inverseRound(state, make([]E, len(state)), r)
}

func (g *Permutation[E, P]) inverseRound(state, tmp []E, r int) {
	m := g.params.StateSize
	if r < g.params.Rounds-1 {
		field.SubVec[E, P](state, g.params.ARK[r*m:(r+1)*m])
	}
	field.MulVec[E, P](tmp, g.mdsInv, state)
	copy(state, tmp)
	g.inverseNonLinear(state)
}

// nonLinear raises s0 to 1/d and s1 to d, then multiplies every later
// element by a quadratic in L_i = (i-1)·s0 + s1 + s_{i-1}, where s_{i-1} is
// already updated and omitted for i = 2.
func (g *Permutation[E, P]) nonLinear(s []E) {
	P(&s[0]).Exp(s[0], g.params.D.Inverse)
	field.PowUint64[E, P](&s[1], &s[1], g.params.D.Exponent)

	var l, t, k E
	for i := 2; i < len(s); i++ {
		P(&k).SetUint64(uint64(i - 1))
		P(&l).Mul(&k, &s[0])
		P(&l).Add(&l, &s[1])
		if i > 2 {
			P(&l).Add(&l, &s[i-1])
		}
		// l² + αl + β
		P(&t).Add(&l, &g.params.AlphaI[i-2])
		P(&t).Mul(&t, &l)
		P(&t).Add(&t, &g.params.BetaI[i-2])
		P(&s[i]).Mul(&s[i], &t)
	}
}

// inverseNonLinear walks the multipliers from the last element down, while
// s0, s1 and s_{i-1} still hold their forward outputs, then undoes the two
// power maps. The quadratics have no roots, so every multiplier is nonzero.
func (g *Permutation[E, P]) inverseNonLinear(s []E) {
	var l, t, k E
	for i := len(s) - 1; i >= 2; i-- {
		P(&k).SetUint64(uint64(i - 1))
		P(&l).Mul(&k, &s[0])
		P(&l).Add(&l, &s[1])
		if i > 2 {
			P(&l).Add(&l, &s[i-1])
		}
		P(&t).Add(&l, &g.params.AlphaI[i-2])
		P(&t).Mul(&t, &l)
		P(&t).Add(&t, &g.params.BetaI[i-2])
		P(&t).Inverse(&t)
		P(&s[i]).Mul(&s[i], &t)
	}

	field.PowUint64[E, P](&s[0], &s[0], g.params.D.Exponent)
	P(&s[1]).Exp(s[1], g.params.D.Inverse)
}

// NewHasher returns an empty streaming hasher.
func (g *Permutation[E, P]) NewHasher() *sponge.Hasher[E, P] {
	return sponge.New[E, P](g, g.params.Rate, g.params.DigestSize)
}

// Hash returns the digest of elems.
func (g *Permutation[E, P]) Hash(elems ...E) Digest[E, P] {
	h := g.NewHasher()
	h.Absorb(elems...)
	return h.Finalize()
}

// HashBytes returns the digest of the field encoding of data.
func (g *Permutation[E, P]) HashBytes(data []byte) Digest[E, P] {
	h := g.NewHasher()
	h.AbsorbBytes(data)
	return h.Finalize()
}

// Compress is the Jive compression of two digests.
func (g *Permutation[E, P]) Compress(a, b Digest[E, P]) Digest[E, P] {
	return sponge.Jive[E, P](g, a, b)
}

// Merge is Compress.
func (g *Permutation[E, P]) Merge(a, b Digest[E, P]) Digest[E, P] { return g.Compress(a, b) }
