package costfuncs

import (
	"math"
)

type huber struct {
	δ float64
}

// Huber returns the Huber Loss Function. δ controls the bounds of the transition between
// SquaredError and Abs: errors smaller than δ are squared, larger ones grow linearly.
func Huber(δ float64) huber {
	return huber{δ: δ}
}

func (h huber) TypeString() string {
	return "huber"
}

func (h huber) Cost(outs, targets []float64) (float64, error) {
	if err := checkLengths(h.TypeString(), outs, targets); err != nil {
		return 0, err
	}

	var sum float64
	for i := range outs {
		d := math.Abs(outs[i] - targets[i])
		if d <= h.δ {
			sum += 0.5 * d * d
		} else {
			sum += h.δ*d - 0.5*h.δ*h.δ
		}
	}

	return sum, nil
}

func (h huber) Deriv(outs, targets, ds []float64) error {
	if err := checkDerivLengths(h.TypeString(), outs, targets, ds); err != nil {
		return err
	}

	for i := range outs {
		d := outs[i] - targets[i]
		if !(d < -h.δ || d > h.δ) { // d >= -h.δ && d <= h.δ
			ds[i] = d
		} else {
			ds[i] = h.δ * math.Copysign(1, d)
		}
	}

	return nil
}
