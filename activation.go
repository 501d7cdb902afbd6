package neuralnetwork

import (
	"math"
)

// saturation is the magnitude of net value beyond which tanh is treated as exactly +/-1
const saturation float64 = 700

// squash is the activation function of every unit: tanh, clamped for large magnitudes so that the
// evaluation never overflows.
func squash(x float64) float64 {
	if x >= saturation {
		return 1
	} else if x <= -saturation {
		return -1
	}

	return math.Tanh(x)
}

// the derivative of tanh(x) is 1 - tanh(x)^2
func squashDeriv(activation float64) float64 {
	return 1 - activation*activation
}
