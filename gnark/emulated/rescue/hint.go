package rescue

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/constraint/solver"
	"github.com/consensys/gnark/std/math/emulated"
)

func init() {
	solver.RegisterHint(GetHints()...)
}

// GetHints returns the hints used by the gadget, for provers that keep their
// own registry.
func GetHints() []solver.Hint {
	return []solver.Hint{inversePowerHint}
}

// inversePowerHint takes [alpha, x_0, ..., x_{n-1}] and returns
// x_i^(alpha^-1 mod p-1) for every i.
func inversePowerHint(_ *big.Int, nativeInputs, nativeOutputs []*big.Int) error {
	return emulated.UnwrapHint(nativeInputs, nativeOutputs, func(mod *big.Int, inputs, outputs []*big.Int) error {
		if len(inputs) != len(outputs)+1 {
			return fmt.Errorf("algohash: inverse power hint: %d inputs for %d outputs", len(inputs), len(outputs))
		}
		pm1 := new(big.Int).Sub(mod, big.NewInt(1))
		inv := new(big.Int).ModInverse(inputs[0], pm1)
		if inv == nil {
			return fmt.Errorf("algohash: inverse power hint: %s is not invertible mod p-1", inputs[0])
		}
		x := new(big.Int)
		for i := range outputs {
			x.Mod(inputs[i+1], mod)
			outputs[i].Exp(x, inv, mod)
		}
		return nil
	})
}
