package field

import (
	"fmt"
	"math/big"
)

// ByteSize returns the width of the canonical encoding of E.
func ByteSize[E any, P Element[E]]() int {
	var z E
	return len(P(&z).Marshal())
}

// ChunkSize is the number of message bytes packed into one element of a
// field with the given modulus, so that every chunk plus its marker byte
// stays below the modulus.
func ChunkSize(modulus *big.Int) int {
	return (modulus.BitLen() - 1) / 8
}

// EncodeBytes maps a byte string injectively to field elements. The input is
// cut into ChunkSize chunks read as little-endian integers. The last chunk
// always carries a 0x01 marker right after its data, so the empty string
// maps to the single element 1.
func EncodeBytes[E any, P Element[E]](data []byte, modulus *big.Int) []E {
	k := ChunkSize(modulus)
	n := (len(data) + k - 1) / k
	if n == 0 {
		n = 1
	}
	out := make([]E, n)
	buf := make([]byte, k+1)
	v := new(big.Int)
	for i := range n {
		clear(buf)
		chunk := data[min(i*k, len(data)):min((i+1)*k, len(data))]
		copy(buf, chunk)
		if i == n-1 {
			buf[len(chunk)] = 1
		}
		fromLE(v, buf)
		P(&out[i]).SetBigInt(v)
	}
	return out
}

// fromLE sets v to the little-endian integer in b.
func fromLE(v *big.Int, b []byte) *big.Int {
	reversed := make([]byte, len(b))
	for i := range b {
		reversed[len(b)-1-i] = b[i]
	}
	return v.SetBytes(reversed)
}

// Marshal concatenates the canonical big-endian encodings of es.
func Marshal[E any, P Element[E]](es []E) []byte {
	out := make([]byte, 0, len(es)*ByteSize[E, P]())
	for i := range es {
		out = append(out, P(&es[i]).Marshal()...)
	}
	return out
}

// Unmarshal decodes exactly n canonical elements from b.
func Unmarshal[E any, P Element[E]](b []byte, n int) ([]E, error) {
	size := ByteSize[E, P]()
	if len(b) != n*size {
		return nil, fmt.Errorf("%w: want %d bytes for %d elements, got %d", ErrNonCanonical, n*size, n, len(b))
	}
	out := make([]E, n)
	for i := range n {
		if err := P(&out[i]).SetBytesCanonical(b[i*size : (i+1)*size]); err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", ErrNonCanonical, i, err)
		}
	}
	return out, nil
}
