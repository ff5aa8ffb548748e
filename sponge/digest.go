package sponge

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/vocdoni/algohash/field"
)

// Digest is an immutable hash output.
type Digest[E any, P field.Element[E]] struct {
	elems []E
}

// NewDigest copies elems into a Digest.
func NewDigest[E any, P field.Element[E]](elems []E) Digest[E, P] {
	d := Digest[E, P]{elems: make([]E, len(elems))}
	copy(d.elems, elems)
	return d
}

// DecodeDigest parses the output of Digest.Bytes holding n elements.
func DecodeDigest[E any, P field.Element[E]](b []byte, n int) (Digest[E, P], error) {
	elems, err := field.Unmarshal[E, P](b, n)
	if err != nil {
		return Digest[E, P]{}, fmt.Errorf("decode digest: %w", err)
	}
	return Digest[E, P]{elems: elems}, nil
}

// Elements returns a copy of the digest elements.
func (d Digest[E, P]) Elements() []E {
	out := make([]E, len(d.elems))
	copy(out, d.elems)
	return out
}

// Len returns the number of elements.
func (d Digest[E, P]) Len() int { return len(d.elems) }

// Bytes returns the concatenated canonical big-endian encodings.
func (d Digest[E, P]) Bytes() []byte { return field.Marshal[E, P](d.elems) }

// Hex returns Bytes as a lowercase hex string.
func (d Digest[E, P]) Hex() string { return hex.EncodeToString(d.Bytes()) }

// Equal reports whether d and o hold the same elements.
func (d Digest[E, P]) Equal(o Digest[E, P]) bool { return field.Equal[E, P](d.elems, o.elems) }

func (d Digest[E, P]) String() string {
	return "[" + strings.Join(field.Strings[E, P](d.elems), ", ") + "]"
}

// Jive compresses two digests with one call to perm. The state a‖b must fill
// the whole permutation; output element i is a_i + b_i + s_i + s_{i+w/2}
// where s is the permuted state.
func Jive[E any, P field.Element[E]](perm Permutation[E], a, b Digest[E, P]) Digest[E, P] {
	w := perm.StateSize()
	if a.Len()+b.Len() != w || a.Len() != b.Len() {
		panic(fmt.Sprintf("algohash: jive needs two digests filling width %d, got %d and %d", w, a.Len(), b.Len()))
	}
	state := make([]E, 0, w)
	state = append(state, a.elems...)
	state = append(state, b.elems...)
	perm.Permute(state)
	out := make([]E, a.Len())
	for i := range out {
		P(&out[i]).Add(&a.elems[i], &b.elems[i])
		P(&out[i]).Add(&out[i], &state[i])
		P(&out[i]).Add(&out[i], &state[i+w/2])
	}
	return Digest[E, P]{elems: out}
}
