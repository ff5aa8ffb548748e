package params

import (
	"math/big"
	"strings"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	"github.com/consensys/gnark-crypto/field/goldilocks"

	"github.com/vocdoni/algohash/field"
	"github.com/vocdoni/algohash/field/f63"
)

// rescueTables returns the compiled-in constants of a Rescue instantiation as
// integers.
func rescueTables(t *testing.T, name string) (mds, ark []*big.Int) {
	t.Helper()
	switch name {
	case "rescue-prime-64-8-4":
		p := Rescue64x8x4()
		return field.ToBigInts(p.MDS), field.ToBigInts(p.ARK)
	case "rescue-prime-64-12-8":
		p := Rescue64x12x8()
		return field.ToBigInts(p.MDS), field.ToBigInts(p.ARK)
	case "rescue-prime-64-14-7":
		p := Rescue64x14x7()
		return field.ToBigInts(p.MDS), field.ToBigInts(p.ARK)
	case "rescue-prime-63-8-4":
		p := Rescue63x8x4()
		return field.ToBigInts(p.MDS), field.ToBigInts(p.ARK)
	case "rescue-prime-63-14-7":
		p := Rescue63x14x7()
		return field.ToBigInts(p.MDS), field.ToBigInts(p.ARK)
	case "rescue-prime-252-4-2":
		p := Rescue252x4x2()
		return field.ToBigInts(p.MDS), field.ToBigInts(p.ARK)
	}
	t.Fatalf("unknown instantiation %s", name)
	return nil, nil
}

func equalBigs(a, b []*big.Int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}
	return true
}

func TestModuli(t *testing.T) {
	if GoldilocksModulus.Cmp(goldilocks.Modulus()) != 0 {
		t.Fatal("goldilocks modulus mismatch")
	}
	if F63Modulus.Cmp(f63.Modulus()) != 0 {
		t.Fatal("f63 modulus mismatch")
	}
	if StarkModulus.Cmp(fp.Modulus()) != 0 {
		t.Fatal("stark modulus mismatch")
	}
}

func TestPrimitiveElements(t *testing.T) {
	tests := []struct {
		name    string
		p       *big.Int
		factors []*big.Int
		want    int64
	}{
		{"goldilocks", GoldilocksModulus, GoldilocksFactors, 7},
		{"f63", F63Modulus, F63Factors, 3},
		{"stark", StarkModulus, StarkFactors, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// the factor list must cover p-1 completely
			rest := new(big.Int).Sub(tc.p, big.NewInt(1))
			for _, f := range tc.factors {
				for new(big.Int).Mod(rest, f).Sign() == 0 {
					rest.Div(rest, f)
				}
			}
			if rest.Cmp(big.NewInt(1)) != 0 {
				t.Fatalf("p-1 has an unlisted factor %s", rest)
			}
			if g := PrimitiveElement(tc.p, tc.factors); g.Int64() != tc.want {
				t.Fatalf("generator mismatch\nexpected %d\ngot      %s", tc.want, g)
			}
		})
	}
}

func TestRescueTablesMatchDerivation(t *testing.T) {
	for _, spec := range RescueSpecs {
		t.Run(spec.Name, func(t *testing.T) {
			g := PrimitiveElement(spec.Modulus, spec.Factors)
			mds, ark := rescueTables(t, spec.Name)
			if !equalBigs(mds, RescueMDS(spec.Modulus, g, spec.StateSize)) {
				t.Fatal("mds does not match its derivation")
			}
			derived := RescueRoundConstants(spec.Modulus, spec.StateSize, spec.StateSize-spec.Rate, spec.Security, spec.Rounds)
			if !equalBigs(ark, derived) {
				t.Fatal("round constants do not match their derivation")
			}
		})
	}
}

func TestAnemoiTablesMatchDerivation(t *testing.T) {
	spec := AnemoiSpecs[0]
	p := Anemoi64x8x4()
	g := PrimitiveElement(spec.Modulus, spec.Factors)
	if !equalBigs(field.ToBigInts(p.MDS), AnemoiMDS4(spec.Modulus, g)) {
		t.Fatal("anemoi mds mismatch")
	}
	c, d := AnemoiRoundConstants(spec.Modulus, g, spec.Alpha, spec.Rounds, spec.Columns)
	if !equalBigs(field.ToBigInts(p.C), c) || !equalBigs(field.ToBigInts(p.D), d) {
		t.Fatal("anemoi round constants mismatch")
	}
	if c[0].Int64() != 135 {
		t.Fatalf("C[0][0] expected 135, got %s", c[0])
	}
	var beta goldilocks.Element
	beta.SetBigInt(g)
	if !beta.Equal(&p.Beta) {
		t.Fatal("beta is not the field generator")
	}
}

func TestExponents(t *testing.T) {
	tests := []struct {
		p     *big.Int
		alpha uint64
		inv   *big.Int
	}{
		{GoldilocksModulus, 7, goldilocksInv7},
		{F63Modulus, 3, f63Inv3},
		{StarkModulus, 3, starkInv3},
	}
	for _, tc := range tests {
		if a := SmallestCoprimeExponent(tc.p); a != tc.alpha {
			t.Fatalf("alpha for %s: expected %d, got %d", tc.p, tc.alpha, a)
		}
		if inv := InverseExponent(tc.p, tc.alpha); inv.Cmp(tc.inv) != 0 {
			t.Fatalf("inverse exponent for %s: expected %s, got %s", tc.p, tc.inv, inv)
		}
	}
}

func TestGriffinCoefficients(t *testing.T) {
	p := Griffin64x8x4()
	// reference alpha_4 and beta_7 of the published instance
	if got := p.AlphaI[2].Uint64(); got != 463451752725960383 {
		t.Fatalf("alpha_4 mismatch: %d", got)
	}
	if got := p.BetaI[5].Uint64(); got != 2236440758620861945 {
		t.Fatalf("beta_7 mismatch: %d", got)
	}
}

func TestValidateShippedParameters(t *testing.T) {
	for _, p := range []*Rescue[goldilocks.Element]{Rescue64x8x4(), Rescue64x12x8(), Rescue64x14x7()} {
		if err := ValidateRescue(p); err != nil {
			t.Fatal(err)
		}
	}
	for _, p := range []*Rescue[f63.Element]{Rescue63x8x4(), Rescue63x14x7()} {
		if err := ValidateRescue(p); err != nil {
			t.Fatal(err)
		}
	}
	if err := ValidateRescue(Rescue252x4x2()); err != nil {
		t.Fatal(err)
	}
	if err := ValidateAnemoi(Anemoi64x8x4()); err != nil {
		t.Fatal(err)
	}
	if err := ValidateGriffin(Griffin64x8x4()); err != nil {
		t.Fatal(err)
	}
}

func TestValidateRejects(t *testing.T) {
	base := *Rescue64x8x4()
	tests := []struct {
		name   string
		mutate func(p *Rescue[goldilocks.Element])
		want   string
	}{
		{"rate", func(p *Rescue[goldilocks.Element]) { p.Rate = 8 }, "rate"},
		{"digest", func(p *Rescue[goldilocks.Element]) { p.DigestSize = 5 }, "digest"},
		{"alpha", func(p *Rescue[goldilocks.Element]) { p.Alpha = Alpha{Exponent: 3, Inverse: goldilocksInv7} }, "inverse exponent"},
		{"mds", func(p *Rescue[goldilocks.Element]) { p.MDS = p.MDS[:10] }, "mds"},
		{"ark", func(p *Rescue[goldilocks.Element]) { p.ARK = p.ARK[8:] }, "round constant"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := base
			tc.mutate(&p)
			err := ValidateRescue(&p)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}

	a := *Anemoi64x8x4()
	a.Delta = goldilocks.NewElement(2)
	if err := ValidateAnemoi(&a); err == nil {
		t.Fatal("accepted a delta that is not 1/beta")
	}
}
