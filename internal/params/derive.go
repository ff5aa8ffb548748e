package params

import (
	"fmt"
	"math/big"

	"golang.org/x/crypto/sha3"
)

// Prime moduli and the factorisations of p-1 used to find generators.
var (
	GoldilocksModulus, _ = new(big.Int).SetString("18446744069414584321", 10)
	F63Modulus, _        = new(big.Int).SetString("4719772409484279809", 10)
	StarkModulus, _      = new(big.Int).SetString("3618502788666131213697322783095070105623107215331596699973092056135872020481", 10)

	GoldilocksFactors = bigs(2, 3, 5, 17, 257, 65537)
	F63Factors        = bigs(2, 131)
	StarkFactors      = bigs(2, 5, 7, 98714381, 166848103)
)

// RescueSpec describes how the constants of a Rescue-Prime instantiation
// are derived.
type RescueSpec struct {
	Ident     string // Go identifier prefix of the generated tables
	Name      string
	File      string // generated file holding the tables
	Modulus   *big.Int
	Factors   []*big.Int
	StateSize int
	Rate      int
	Rounds    int
	Security  int
}

// AnemoiSpec describes how the constants of an Anemoi instantiation are
// derived.
type AnemoiSpec struct {
	Ident   string
	Name    string
	File    string
	Modulus *big.Int
	Factors []*big.Int
	Columns int
	Alpha   uint64
	Rounds  int
}

// RescueSpecs lists every Rescue-Prime instantiation shipped by this module.
var RescueSpecs = []RescueSpec{
	{Ident: "rescue64x8x4", Name: "rescue-prime-64-8-4", File: "rescue_goldilocks.go", Modulus: GoldilocksModulus, Factors: GoldilocksFactors, StateSize: 8, Rate: 4, Rounds: 7, Security: 128},
	{Ident: "rescue64x12x8", Name: "rescue-prime-64-12-8", File: "rescue_goldilocks.go", Modulus: GoldilocksModulus, Factors: GoldilocksFactors, StateSize: 12, Rate: 8, Rounds: 7, Security: 128},
	{Ident: "rescue64x14x7", Name: "rescue-prime-64-14-7", File: "rescue_goldilocks.go", Modulus: GoldilocksModulus, Factors: GoldilocksFactors, StateSize: 14, Rate: 7, Rounds: 7, Security: 128},
	{Ident: "rescue63x8x4", Name: "rescue-prime-63-8-4", File: "rescue_f63.go", Modulus: F63Modulus, Factors: F63Factors, StateSize: 8, Rate: 4, Rounds: 7, Security: 128},
	{Ident: "rescue63x14x7", Name: "rescue-prime-63-14-7", File: "rescue_f63.go", Modulus: F63Modulus, Factors: F63Factors, StateSize: 14, Rate: 7, Rounds: 7, Security: 128},
	{Ident: "rescue252x4x2", Name: "rescue-prime-252-4-2", File: "rescue_stark.go", Modulus: StarkModulus, Factors: StarkFactors, StateSize: 4, Rate: 2, Rounds: 14, Security: 128},
}

// AnemoiSpecs lists every Anemoi instantiation shipped by this module.
var AnemoiSpecs = []AnemoiSpec{
	{Ident: "anemoi64x8x4", Name: "anemoi-64-8-4", File: "anemoi_goldilocks.go", Modulus: GoldilocksModulus, Factors: GoldilocksFactors, Columns: 4, Alpha: 7, Rounds: 10},
}

// Digits of pi used as nothing-up-my-sleeve seeds by the Anemoi constants.
var (
	anemoiPi0, _ = new(big.Int).SetString("1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679", 10)
	anemoiPi1, _ = new(big.Int).SetString("8214808651328230664709384460955058223172535940812848111745028410270193852110555964462294895493038196", 10)
)

// PrimitiveElement returns the smallest generator of GF(p)^*, given the
// distinct prime factors of p-1.
func PrimitiveElement(p *big.Int, factors []*big.Int) *big.Int {
	pm1 := new(big.Int).Sub(p, big.NewInt(1))
	e := new(big.Int)
	r := new(big.Int)
	for g := big.NewInt(2); g.Cmp(p) < 0; g.Add(g, big.NewInt(1)) {
		ok := true
		for _, f := range factors {
			e.Div(pm1, f)
			if r.Exp(g, e, p).Cmp(big.NewInt(1)) == 0 {
				ok = false
				break
			}
		}
		if ok {
			return g
		}
	}
	panic("algohash: no generator found")
}

// RescueMDS derives the m×m Rescue-Prime MDS matrix (row-major): the
// transpose of the right half of the echelon form of the m×2m Vandermonde
// matrix V[i][j] = g^(i·j).
func RescueMDS(p, g *big.Int, m int) []*big.Int {
	v := make([][]*big.Int, m)
	for i := range m {
		v[i] = make([]*big.Int, 2*m)
		for j := range 2 * m {
			v[i][j] = new(big.Int).Exp(g, big.NewInt(int64(i*j)), p)
		}
	}
	t := new(big.Int)
	for c := range m {
		piv := c
		for piv < m && v[piv][c].Sign() == 0 {
			piv++
		}
		if piv == m {
			panic("algohash: singular vandermonde matrix")
		}
		v[c], v[piv] = v[piv], v[c]
		inv := new(big.Int).ModInverse(v[c][c], p)
		for j := range 2 * m {
			v[c][j].Mul(v[c][j], inv).Mod(v[c][j], p)
		}
		for r := range m {
			if r == c || v[r][c].Sign() == 0 {
				continue
			}
			f := new(big.Int).Set(v[r][c])
			for j := range 2 * m {
				t.Mul(f, v[c][j])
				v[r][j].Sub(v[r][j], t).Mod(v[r][j], p)
			}
		}
	}
	out := make([]*big.Int, m*m)
	for i := range m {
		for j := range m {
			out[i*m+j] = v[j][m+i]
		}
	}
	return out
}

// RescueRoundConstants derives the 2·rounds·m round constants by reading
// SHAKE256("Rescue-XLIX(p,m,capacity,security)") in chunks of
// ceil(bitlen(p)/8)+1 bytes, each read little-endian and reduced mod p.
func RescueRoundConstants(p *big.Int, m, capacity, security, rounds int) []*big.Int {
	bytesPerInt := (p.BitLen()+7)/8 + 1
	n := 2 * m * rounds
	seed := fmt.Sprintf("Rescue-XLIX(%s,%d,%d,%d)", p.String(), m, capacity, security)
	buf := make([]byte, bytesPerInt*n)
	sha3.ShakeSum256(buf, []byte(seed))
	out := make([]*big.Int, n)
	for i := range n {
		chunk := buf[i*bytesPerInt : (i+1)*bytesPerInt]
		out[i] = leInt(chunk)
		out[i].Mod(out[i], p)
	}
	return out
}

// AnemoiMDS4 returns the 4×4 Anemoi linear layer for generator g.
func AnemoiMDS4(p, g *big.Int) []*big.Int {
	mod := func(x *big.Int) *big.Int { return x.Mod(x, p) }
	g2 := mod(new(big.Int).Mul(g, g))
	one := big.NewInt(1)
	gp1 := mod(new(big.Int).Add(g, one))
	g2g := mod(new(big.Int).Add(g2, g))
	tgp1 := mod(new(big.Int).Add(new(big.Int).Lsh(g, 1), one))
	return []*big.Int{
		one, gp1, g, g,
		g2, g2g, gp1, tgp1,
		g2, g2, one, gp1,
		gp1, tgp1, g, gp1,
	}
}

// AnemoiRoundConstants derives the C and D constants (rounds×columns, row
// major) from the pi seeds: with a = pi0^r and b = pi1^i,
// C[r][i] = g·a² + (a+b)^alpha and D[r][i] = g·b² + (a+b)^alpha + g^-1.
func AnemoiRoundConstants(p, g *big.Int, alpha uint64, rounds, columns int) (c, d []*big.Int) {
	pi0 := new(big.Int).Mod(anemoiPi0, p)
	pi1 := new(big.Int).Mod(anemoiPi1, p)
	gInv := new(big.Int).ModInverse(g, p)
	e := new(big.Int).SetUint64(alpha)
	for r := range rounds {
		a := new(big.Int).Exp(pi0, big.NewInt(int64(r)), p)
		for i := range columns {
			b := new(big.Int).Exp(pi1, big.NewInt(int64(i)), p)
			pa := new(big.Int).Add(a, b)
			pa.Exp(pa, e, p)

			ci := new(big.Int).Mul(a, a)
			ci.Mul(ci, g).Add(ci, pa).Mod(ci, p)
			di := new(big.Int).Mul(b, b)
			di.Mul(di, g).Add(di, pa).Add(di, gInv).Mod(di, p)

			c = append(c, ci)
			d = append(d, di)
		}
	}
	return c, d
}

// InverseExponent returns alpha^-1 mod (p-1).
func InverseExponent(p *big.Int, alpha uint64) *big.Int {
	pm1 := new(big.Int).Sub(p, big.NewInt(1))
	return new(big.Int).ModInverse(new(big.Int).SetUint64(alpha), pm1)
}

// SmallestCoprimeExponent returns the smallest alpha >= 3 with
// gcd(alpha, p-1) = 1, the Rescue-Prime choice of S-box exponent.
func SmallestCoprimeExponent(p *big.Int) uint64 {
	pm1 := new(big.Int).Sub(p, big.NewInt(1))
	gcd := new(big.Int)
	for a := uint64(3); ; a++ {
		if gcd.GCD(nil, nil, new(big.Int).SetUint64(a), pm1).Cmp(big.NewInt(1)) == 0 {
			return a
		}
	}
}

func leInt(b []byte) *big.Int {
	reversed := make([]byte, len(b))
	for i := range b {
		reversed[len(b)-1-i] = b[i]
	}
	return new(big.Int).SetBytes(reversed)
}

func bigs(vs ...int64) []*big.Int {
	out := make([]*big.Int, len(vs))
	for i, v := range vs {
		out[i] = big.NewInt(v)
	}
	return out
}
