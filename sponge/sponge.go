// Package sponge turns a fixed-width field permutation into a hash over
// arbitrary-length sequences of field elements.
//
// Elements are added into the first Rate positions of the state, and the
// state is permuted whenever those positions fill up. A message whose
// length is not a positive multiple of the rate (including the empty
// message) is finished by adding 1 right after the last absorbed element
// and 1 to the first capacity element before one last permutation. Messages
// of full blocks are not padded. The capacity tag separates the two cases,
// which keeps the padding injective across all lengths.
package sponge

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"

	"github.com/vocdoni/algohash/field"
)

// Permutation is a keyless permutation of a fixed number of field elements.
// Permute panics when given a state of the wrong width. Name identifies the
// instantiation in serialized hasher states.
type Permutation[E any] interface {
	Name() string
	StateSize() int
	Permute(state []E)
}

// Hasher is the streaming form of the sponge. A Hasher is not safe for
// concurrent use; Finalize does not modify it, so absorption may continue
// after a digest has been taken.
type Hasher[E any, P field.Element[E]] struct {
	perm       Permutation[E]
	rate       int
	digestSize int
	modulus    *big.Int

	state    []E
	idx      int
	absorbed uint64
}

// New returns an empty Hasher over perm. It panics if rate or digestSize do
// not fit the permutation width.
func New[E any, P field.Element[E]](perm Permutation[E], rate, digestSize int) *Hasher[E, P] {
	width := perm.StateSize()
	if rate < 1 || rate >= width || digestSize < 1 {
		panic(fmt.Sprintf("algohash: invalid sponge shape width=%d rate=%d digest=%d", width, rate, digestSize))
	}
	return &Hasher[E, P]{
		perm:       perm,
		rate:       rate,
		digestSize: digestSize,
		modulus:    field.Modulus[E, P](),
		state:      make([]E, width),
	}
}

// Rate returns the number of elements absorbed per permutation.
func (h *Hasher[E, P]) Rate() int { return h.rate }

// DigestSize returns the number of elements returned by Finalize.
func (h *Hasher[E, P]) DigestSize() int { return h.digestSize }

// StateSize returns the permutation width.
func (h *Hasher[E, P]) StateSize() int { return len(h.state) }

// Absorb feeds elements into the sponge.
func (h *Hasher[E, P]) Absorb(elems ...E) {
	for i := range elems {
		P(&h.state[h.idx]).Add(&h.state[h.idx], &elems[i])
		h.idx++
		h.absorbed++
		if h.idx == h.rate {
			h.perm.Permute(h.state)
			h.idx = 0
		}
	}
}

// AbsorbBytes feeds the field encoding of data (see field.EncodeBytes).
// Each call encodes data as one self-delimited unit.
func (h *Hasher[E, P]) AbsorbBytes(data []byte) {
	h.Absorb(field.EncodeBytes[E, P](data, h.modulus)...)
}

// Finalize pads and permutes a copy of the state and returns the digest.
func (h *Hasher[E, P]) Finalize() Digest[E, P] {
	state := h.finalState()
	return NewDigest[E, P](state[:h.digestSize])
}

// Squeeze returns n output elements. The first rate elements come from the
// finalized state and the state is permuted again for each further rate
// elements. It panics if n is negative.
func (h *Hasher[E, P]) Squeeze(n int) []E {
	if n < 0 {
		panic(fmt.Sprintf("algohash: %s: squeeze of %d elements", h.perm.Name(), n))
	}
	state := h.finalState()
	out := make([]E, 0, n)
	for {
		take := min(h.rate, n-len(out))
		out = append(out, state[:take]...)
		if len(out) == n {
			return out
		}
		h.perm.Permute(state)
	}
}

func (h *Hasher[E, P]) finalState() []E {
	state := make([]E, len(h.state))
	copy(state, h.state)
	if h.idx > 0 || h.absorbed == 0 {
		var one E
		P(&one).SetOne()
		P(&state[h.idx]).Add(&state[h.idx], &one)
		P(&state[h.rate]).Add(&state[h.rate], &one)
		h.perm.Permute(state)
	}
	return state
}

// Reset returns the hasher to its initial empty state.
func (h *Hasher[E, P]) Reset() {
	clear(h.state)
	h.idx = 0
	h.absorbed = 0
}

// Clone returns an independent copy of h.
func (h *Hasher[E, P]) Clone() *Hasher[E, P] {
	c := *h
	c.state = make([]E, len(h.state))
	copy(c.state, h.state)
	return &c
}

// Absorbed returns the number of elements absorbed so far.
func (h *Hasher[E, P]) Absorbed() uint64 { return h.absorbed }

const (
	magic         = "ahs\x01"
	marshaledTail = 16
)

var errInvalidState = errors.New("algohash: invalid hasher state")

// header is the magic prefix followed by the length-prefixed permutation
// name.
func (h *Hasher[E, P]) header() []byte {
	name := h.perm.Name()
	b := make([]byte, 0, len(magic)+1+len(name))
	b = append(b, magic...)
	b = append(b, byte(len(name)))
	return append(b, name...)
}

// MarshalBinary encodes the sponge state: a magic prefix, the length-prefixed
// permutation name, the canonical encoding of every state element, then the
// absorb index and the number of absorbed elements as big-endian uint64s.
func (h *Hasher[E, P]) MarshalBinary() ([]byte, error) {
	if len(h.perm.Name()) > 255 {
		return nil, fmt.Errorf("%w: permutation name longer than 255 bytes", errInvalidState)
	}
	hdr := h.header()
	b := make([]byte, 0, len(hdr)+len(h.state)*field.ByteSize[E, P]()+marshaledTail)
	b = append(b, hdr...)
	b = append(b, field.Marshal[E, P](h.state)...)
	b = binary.BigEndian.AppendUint64(b, uint64(h.idx))
	b = binary.BigEndian.AppendUint64(b, h.absorbed)
	return b, nil
}

// UnmarshalBinary restores a state produced by MarshalBinary. States of
// another instantiation, non-canonical elements and inconsistent counters
// are rejected.
func (h *Hasher[E, P]) UnmarshalBinary(b []byte) error {
	if len(b) < len(magic)+1 || string(b[:len(magic)]) != magic {
		return fmt.Errorf("%w: missing prefix", errInvalidState)
	}
	hdr := h.header()
	if n := int(b[len(magic)]); len(b) < len(magic)+1+n || string(b[:len(magic)+1+n]) != string(hdr) {
		return fmt.Errorf("%w: not a state of %s", errInvalidState, h.perm.Name())
	}
	size := field.ByteSize[E, P]()
	want := len(hdr) + len(h.state)*size + marshaledTail
	if len(b) != want {
		return fmt.Errorf("%w: want %d bytes, got %d", errInvalidState, want, len(b))
	}
	b = b[len(hdr):]
	state, err := field.Unmarshal[E, P](b[:len(h.state)*size], len(h.state))
	if err != nil {
		return err
	}
	b = b[len(h.state)*size:]
	idx := binary.BigEndian.Uint64(b)
	absorbed := binary.BigEndian.Uint64(b[8:])
	if idx >= uint64(h.rate) || absorbed%uint64(h.rate) != idx {
		return fmt.Errorf("%w: absorb index %d inconsistent with %d absorbed elements", errInvalidState, idx, absorbed)
	}
	h.state = state
	h.idx = int(idx)
	h.absorbed = absorbed
	return nil
}
