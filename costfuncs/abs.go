package costfuncs

import (
	"math"
)

type abs struct{}

// Abs returns the Absolute Value cost function: the sum of |out - target|.
func Abs() abs {
	return abs{}
}

// L1 is a proxy for Abs
func L1() abs {
	return Abs()
}

func (a abs) TypeString() string {
	return "abs"
}

func (a abs) Cost(outs, targets []float64) (float64, error) {
	if err := checkLengths(a.TypeString(), outs, targets); err != nil {
		return 0, err
	}

	var sum float64
	for i := range outs {
		sum += math.Abs(outs[i] - targets[i])
	}

	return sum, nil
}

func (a abs) Deriv(outs, targets, ds []float64) error {
	if err := checkDerivLengths(a.TypeString(), outs, targets, ds); err != nil {
		return err
	}

	for i := range outs {
		d := outs[i] - targets[i]
		if d == 0 {
			ds[i] = 0
		} else {
			ds[i] = math.Copysign(1, d)
		}
	}

	return nil
}
