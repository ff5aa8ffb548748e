package rescue

import (
	"fmt"

	"github.com/vocdoni/algohash/field"
	"github.com/vocdoni/algohash/sponge"
)

// Digest is a Rescue-Prime hash output.
type Digest[E any, P field.Element[E]] = sponge.Digest[E, P]

// NewHasher returns an empty streaming hasher.
func (r *Permutation[E, P]) NewHasher() *sponge.Hasher[E, P] {
	return sponge.New[E, P](r, r.params.Rate, r.params.DigestSize)
}

// Hash returns the digest of elems.
func (r *Permutation[E, P]) Hash(elems ...E) Digest[E, P] {
	h := r.NewHasher()
	h.Absorb(elems...)
	return h.Finalize()
}

// HashBytes returns the digest of the field encoding of data.
func (r *Permutation[E, P]) HashBytes(data []byte) Digest[E, P] {
	h := r.NewHasher()
	h.AbsorbBytes(data)
	return h.Finalize()
}

// Merge hashes two digests into one with a single permutation: a and b fill
// the first two digest-sized slots of a zero state.
func (r *Permutation[E, P]) Merge(a, b Digest[E, P]) Digest[E, P] {
	d := r.params.DigestSize
	r.checkDigest(a)
	r.checkDigest(b)
	state := make([]E, r.params.StateSize)
	copy(state[:d], a.Elements())
	copy(state[d:2*d], b.Elements())
	r.Permute(state)
	return sponge.NewDigest[E, P](state[:d])
}

// MergeWithInt hashes a digest together with an integer: seed fills the
// first slot, v follows it and the last state element is set to d+1.
func (r *Permutation[E, P]) MergeWithInt(seed Digest[E, P], v uint64) Digest[E, P] {
	d := r.params.DigestSize
	r.checkDigest(seed)
	state := make([]E, r.params.StateSize)
	copy(state[:d], seed.Elements())
	P(&state[d]).SetUint64(v)
	P(&state[len(state)-1]).SetUint64(uint64(d + 1))
	r.Permute(state)
	return sponge.NewDigest[E, P](state[:d])
}

func (r *Permutation[E, P]) checkDigest(dg Digest[E, P]) {
	if dg.Len() != r.params.DigestSize {
		panic(fmt.Sprintf("algohash: %s: digest has %d elements, want %d", r.params.Name, dg.Len(), r.params.DigestSize))
	}
}
