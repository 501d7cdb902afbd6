package costfuncs

type squaredError struct{}

// SquaredError returns the sum of squared errors cost function. Its derivative is that of half the
// sum, out - target, which makes the error term of an output unit (target - out) * f'(net).
func SquaredError() squaredError {
	return squaredError{}
}

// L2 is a proxy for SquaredError
func L2() squaredError {
	return SquaredError()
}

func (c squaredError) TypeString() string {
	return "squared-error"
}

func (c squaredError) Cost(outs, targets []float64) (float64, error) {
	if err := checkLengths(c.TypeString(), outs, targets); err != nil {
		return 0, err
	}

	var sum float64
	for i := range outs {
		d := targets[i] - outs[i]
		sum += d * d // faster than math.Pow
	}

	return sum, nil
}

func (c squaredError) Deriv(outs, targets, ds []float64) error {
	if err := checkDerivLengths(c.TypeString(), outs, targets, ds); err != nil {
		return err
	}

	for i := range outs {
		ds[i] = outs[i] - targets[i]
	}

	return nil
}
