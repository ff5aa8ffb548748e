package params

import (
	"fmt"
	"math/big"

	"github.com/vocdoni/algohash/field"
)

// ValidateRescue checks shape, sizes and the exponent pair of p.
func ValidateRescue[E any](p *Rescue[E]) error {
	if err := validateSponge(p.Name, p.StateSize, p.Rate, p.DigestSize); err != nil {
		return err
	}
	if p.Rounds < 1 {
		return fmt.Errorf("algohash: %s: need at least one round", p.Name)
	}
	if err := validateAlpha(p.Name, p.Modulus, p.Alpha); err != nil {
		return err
	}
	width := p.StateSize
	if len(p.MDS) != width*width {
		return fmt.Errorf("algohash: %s: mds length mismatch (%d != %d)", p.Name, len(p.MDS), width*width)
	}
	if len(p.ARK) != 2*p.Rounds*width {
		return fmt.Errorf("algohash: %s: round constant length mismatch (%d != %d)", p.Name, len(p.ARK), 2*p.Rounds*width)
	}
	return nil
}

// ValidateAnemoi checks shape, sizes and the exponent pair of p, and that
// Delta is the inverse of Beta.
func ValidateAnemoi[E any, P field.Element[E]](p *Anemoi[E]) error {
	if err := validateSponge(p.Name, p.StateSize(), p.Rate, p.DigestSize); err != nil {
		return err
	}
	if err := validateAlpha(p.Name, p.Modulus, p.Alpha); err != nil {
		return err
	}
	if len(p.MDS) != p.Columns*p.Columns {
		return fmt.Errorf("algohash: %s: mds length mismatch", p.Name)
	}
	if len(p.C) != p.Rounds*p.Columns || len(p.D) != p.Rounds*p.Columns {
		return fmt.Errorf("algohash: %s: round constant length mismatch", p.Name)
	}
	var one E
	P(&one).Mul(&p.Beta, &p.Delta)
	if !isOne[E, P](&one) {
		return fmt.Errorf("algohash: %s: delta is not the inverse of beta", p.Name)
	}
	return nil
}

// ValidateGriffin checks shape, sizes and the exponent pair of p.
func ValidateGriffin[E any](p *Griffin[E]) error {
	if err := validateSponge(p.Name, p.StateSize, p.Rate, p.DigestSize); err != nil {
		return err
	}
	if p.StateSize < 3 {
		return fmt.Errorf("algohash: %s: state too small for the nonlinear layer", p.Name)
	}
	if err := validateAlpha(p.Name, p.Modulus, p.D); err != nil {
		return err
	}
	width := p.StateSize
	if len(p.AlphaI) != width-2 || len(p.BetaI) != width-2 {
		return fmt.Errorf("algohash: %s: alpha/beta length mismatch", p.Name)
	}
	if len(p.MDS) != width*width {
		return fmt.Errorf("algohash: %s: mds length mismatch", p.Name)
	}
	if len(p.ARK) != (p.Rounds-1)*width {
		return fmt.Errorf("algohash: %s: round constant length mismatch", p.Name)
	}
	return nil
}

func validateSponge(name string, width, rate, digest int) error {
	if rate < 1 || rate >= width {
		return fmt.Errorf("algohash: %s: rate %d out of range for width %d", name, rate, width)
	}
	if digest < 1 || digest > rate {
		return fmt.Errorf("algohash: %s: digest size %d out of range for rate %d", name, digest, rate)
	}
	if 2*digest > width {
		return fmt.Errorf("algohash: %s: two digests (%d) do not fit in the state (%d)", name, 2*digest, width)
	}
	return nil
}

func validateAlpha(name string, modulus *big.Int, a Alpha) error {
	if modulus == nil || modulus.Sign() <= 0 {
		return fmt.Errorf("algohash: %s: missing modulus", name)
	}
	if a.Exponent < 2 || a.Inverse == nil {
		return fmt.Errorf("algohash: %s: invalid s-box exponent", name)
	}
	pm1 := new(big.Int).Sub(modulus, big.NewInt(1))
	prod := new(big.Int).SetUint64(a.Exponent)
	prod.Mul(prod, a.Inverse).Mod(prod, pm1)
	if prod.Cmp(big.NewInt(1)) != 0 {
		return fmt.Errorf("algohash: %s: %d * inverse exponent != 1 mod p-1", name, a.Exponent)
	}
	return nil
}

func isOne[E any, P field.Element[E]](x *E) bool {
	var one E
	P(&one).SetOne()
	return P(x).Equal(&one)
}
