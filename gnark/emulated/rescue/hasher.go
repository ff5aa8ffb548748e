package rescue

import (
	"fmt"

	"github.com/consensys/gnark/std/math/emulated"
)

// Hasher is the in-circuit sponge. Its padding matches the native hasher, so
// Sum equals the native digest of the same elements.
type Hasher[T emulated.FieldParams] struct {
	p   *Permutation[T]
	buf []*emulated.Element[T]
}

// NewHasher returns an empty hasher over p.
func NewHasher[T emulated.FieldParams](p *Permutation[T]) *Hasher[T] {
	return &Hasher[T]{p: p}
}

// Write appends elements to the message.
func (h *Hasher[T]) Write(elems ...*emulated.Element[T]) {
	h.buf = append(h.buf, elems...)
}

// Reset empties the message.
func (h *Hasher[T]) Reset() { h.buf = nil }

// Sum returns the digest of everything written since the last Reset.
func (h *Hasher[T]) Sum() ([]*emulated.Element[T], error) {
	f, c := h.p.f, h.p.c
	state := make([]*emulated.Element[T], c.StateSize)
	for i := range state {
		state[i] = f.Zero()
	}
	var err error
	idx := 0
	for _, e := range h.buf {
		state[idx] = f.Add(state[idx], e)
		idx++
		if idx == c.Rate {
			if state, err = h.p.Permute(state); err != nil {
				return nil, err
			}
			idx = 0
		}
	}
	if idx > 0 || len(h.buf) == 0 {
		state[idx] = f.Add(state[idx], f.One())
		state[c.Rate] = f.Add(state[c.Rate], f.One())
		if state, err = h.p.Permute(state); err != nil {
			return nil, err
		}
	}
	out := make([]*emulated.Element[T], c.DigestSize)
	for i := range out {
		out[i] = f.Reduce(state[i])
	}
	return out, nil
}

// Merge is the two-to-one compression of the native Merge.
func (p *Permutation[T]) Merge(a, b []*emulated.Element[T]) ([]*emulated.Element[T], error) {
	d := p.c.DigestSize
	if len(a) != d || len(b) != d {
		return nil, fmt.Errorf("algohash: %s: merge needs two digests of %d elements", p.c.Name, d)
	}
	state := make([]*emulated.Element[T], p.c.StateSize)
	copy(state, a)
	copy(state[d:], b)
	for i := 2 * d; i < len(state); i++ {
		state[i] = p.f.Zero()
	}
	out, err := p.Permute(state)
	if err != nil {
		return nil, err
	}
	return out[:d], nil
}
