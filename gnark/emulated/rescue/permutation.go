// Package rescue is the in-circuit Rescue-Prime permutation and sponge over
// an emulated field. The inverse S-box output is supplied by a hint and
// constrained by raising it back to alpha.
package rescue

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/emulated"

	native "github.com/vocdoni/algohash/rescue"
)

// Permutation emits the constraints of one Rescue-Prime instantiation.
type Permutation[T emulated.FieldParams] struct {
	f     *emulated.Field[T]
	c     native.Constants
	mds   []*emulated.Element[T]
	ark   []*emulated.Element[T]
	alpha *emulated.Element[T]
}

// NewPermutation binds the constants c to the circuit. The modulus of c must
// be the one emulated by T.
func NewPermutation[T emulated.FieldParams](api frontend.API, c native.Constants) (*Permutation[T], error) {
	var params T
	if c.Modulus == nil || c.Modulus.Cmp(params.Modulus()) != 0 {
		return nil, fmt.Errorf("algohash: %s: constants are not over the emulated field", c.Name)
	}
	m := c.StateSize
	if len(c.MDS) != m*m || len(c.ARK) != 2*c.Rounds*m || c.Alpha < 2 {
		return nil, fmt.Errorf("algohash: %s: malformed constants", c.Name)
	}
	f, err := emulated.NewField[T](api)
	if err != nil {
		return nil, err
	}
	p := &Permutation[T]{f: f, c: c}
	for _, v := range c.MDS {
		p.mds = append(p.mds, constElement(f, v))
	}
	for _, v := range c.ARK {
		p.ark = append(p.ark, constElement(f, v))
	}
	p.alpha = constElement(f, new(big.Int).SetUint64(c.Alpha))
	return p, nil
}

// Field returns the emulated field the gadget works in.
func (p *Permutation[T]) Field() *emulated.Field[T] { return p.f }

// Constants returns the bound instantiation.
func (p *Permutation[T]) Constants() native.Constants { return p.c }

// Permute returns the permuted state.
func (p *Permutation[T]) Permute(state []*emulated.Element[T]) ([]*emulated.Element[T], error) {
	m := p.c.StateSize
	if len(state) != m {
		return nil, fmt.Errorf("algohash: %s: state has %d elements, want %d", p.c.Name, len(state), m)
	}
	s := append([]*emulated.Element[T](nil), state...)
	var err error
	for r := range p.c.Rounds {
		for i := range s {
			s[i] = p.pow(s[i])
		}
		s = p.mix(s)
		p.addRow(s, 2*r)

		if s, err = p.inversePow(s); err != nil {
			return nil, err
		}
		s = p.mix(s)
		p.addRow(s, 2*r+1)
	}
	return s, nil
}

// pow raises x to the public exponent alpha.
func (p *Permutation[T]) pow(x *emulated.Element[T]) *emulated.Element[T] {
	k := p.c.Alpha
	acc := x
	for i := bits.Len64(k) - 2; i >= 0; i-- {
		acc = p.f.Mul(acc, acc)
		if (k>>uint(i))&1 == 1 {
			acc = p.f.Mul(acc, x)
		}
	}
	return acc
}

func (p *Permutation[T]) inversePow(s []*emulated.Element[T]) ([]*emulated.Element[T], error) {
	inputs := append([]*emulated.Element[T]{p.alpha}, s...)
	out, err := p.f.NewHint(inversePowerHint, len(s), inputs...)
	if err != nil {
		return nil, fmt.Errorf("algohash: %s: inverse s-box: %w", p.c.Name, err)
	}
	for i := range out {
		p.f.AssertIsEqual(p.pow(out[i]), s[i])
	}
	return out, nil
}

func (p *Permutation[T]) mix(s []*emulated.Element[T]) []*emulated.Element[T] {
	m := p.c.StateSize
	out := make([]*emulated.Element[T], m)
	for i := range m {
		sum := p.f.Zero()
		for j := range m {
			sum = p.f.Add(sum, p.f.Mul(p.mds[i*m+j], s[j]))
		}
		out[i] = sum
	}
	return out
}

func (p *Permutation[T]) addRow(s []*emulated.Element[T], row int) {
	m := p.c.StateSize
	for i := range s {
		s[i] = p.f.Add(s[i], p.ark[row*m+i])
	}
}
