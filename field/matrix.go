package field

import (
	"errors"
	"math/bits"
)

// ErrSingular is returned by Invert when the matrix has no inverse.
var ErrSingular = errors.New("algohash: singular matrix")

// MulVec sets dst = m·v for the n×n row-major matrix m. dst and v must not
// alias.
func MulVec[E any, P Element[E]](dst, m, v []E) {
	n := len(v)
	var t E
	for i := range n {
		row := m[i*n : (i+1)*n]
		acc := &dst[i]
		P(acc).SetZero()
		for j := range n {
			P(&t).Mul(&row[j], &v[j])
			P(acc).Add(acc, &t)
		}
	}
}

// AddVec adds c element-wise into dst.
func AddVec[E any, P Element[E]](dst, c []E) {
	for i := range dst {
		P(&dst[i]).Add(&dst[i], &c[i])
	}
}

// SubVec subtracts c element-wise from dst.
func SubVec[E any, P Element[E]](dst, c []E) {
	for i := range dst {
		P(&dst[i]).Sub(&dst[i], &c[i])
	}
}

// PowUint64 sets z = x^k using left-to-right square and multiply. It is
// meant for the small public S-box exponents.
func PowUint64[E any, P Element[E]](z *E, x *E, k uint64) *E {
	if k == 0 {
		return P(z).SetOne()
	}
	base := *x
	acc := base
	for i := bits.Len64(k) - 2; i >= 0; i-- {
		P(&acc).Square(&acc)
		if (k>>uint(i))&1 == 1 {
			P(&acc).Mul(&acc, &base)
		}
	}
	*z = acc
	return z
}

// Invert returns the inverse of the n×n row-major matrix m by Gauss-Jordan
// elimination. m is left untouched.
func Invert[E any, P Element[E]](m []E, n int) ([]E, error) {
	a := make([]E, len(m))
	copy(a, m)
	inv := make([]E, n*n)
	for i := range n {
		P(&inv[i*n+i]).SetOne()
	}
	var f, t E
	for c := range n {
		piv := -1
		for r := c; r < n; r++ {
			if !P(&a[r*n+c]).IsZero() {
				piv = r
				break
			}
		}
		if piv < 0 {
			return nil, ErrSingular
		}
		if piv != c {
			swapRows(a, n, piv, c)
			swapRows(inv, n, piv, c)
		}
		P(&f).Inverse(&a[c*n+c])
		for j := range n {
			P(&a[c*n+j]).Mul(&a[c*n+j], &f)
			P(&inv[c*n+j]).Mul(&inv[c*n+j], &f)
		}
		for r := range n {
			if r == c || P(&a[r*n+c]).IsZero() {
				continue
			}
			f = a[r*n+c]
			for j := range n {
				P(&t).Mul(&f, &a[c*n+j])
				P(&a[r*n+j]).Sub(&a[r*n+j], &t)
				P(&t).Mul(&f, &inv[c*n+j])
				P(&inv[r*n+j]).Sub(&inv[r*n+j], &t)
			}
		}
	}
	return inv, nil
}

func swapRows[E any](m []E, n, i, j int) {
	for k := range n {
		m[i*n+k], m[j*n+k] = m[j*n+k], m[i*n+k]
	}
}
