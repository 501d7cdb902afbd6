package neuralnetwork

import (
	"math"
	"sync/atomic"

	"github.com/pkg/errors"
)

var numericTraps atomic.Bool

// EnableNumericTraps makes every Network check the values it computes, and fail with
// ErrNumericTrap at the first NaN or infinity instead of letting it spread through training. The
// setting is process-wide and is meant to be set once at startup, as a debugging aid.
func EnableNumericTraps() {
	numericTraps.Store(true)
}

// DisableNumericTraps turns off the checks enabled by EnableNumericTraps.
func DisableNumericTraps() {
	numericTraps.Store(false)
}

// NumericTrapsEnabled returns whether or not EnableNumericTraps is in effect.
func NumericTrapsEnabled() bool {
	return numericTraps.Load()
}

// trap returns ErrNumericTrap if traps are enabled and vals holds a NaN or an infinity.
func trap(vals []float64, what string, layer int) error {
	if !numericTraps.Load() {
		return nil
	}

	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrNumericTrap, "%s %d of layer %d is %v", what, i, layer, v)
		}
	}

	return nil
}
