package initializers

import (
	"math"

	"github.com/jpuck/neural-network/rng"
)

type varianceScaling struct {
	factor float64
	trunc  float64
}

const defaultTrunc float64 = 2.0

// VarianceScaling returns an Initializer that draws from a normal distribution truncated at two
// standard deviations, with variance factor/fanIn.
func VarianceScaling(factor float64) *varianceScaling {
	return &varianceScaling{factor, defaultTrunc}
}

// LeCun is VarianceScaling(1).
func LeCun() *varianceScaling {
	return VarianceScaling(1)
}

// He is VarianceScaling(2).
func He() *varianceScaling {
	return VarianceScaling(2)
}

// Trunc sets the number of standard deviations to keep on either side. Trunc will panic if given
// sds <= 0.
func (v *varianceScaling) Trunc(sds float64) *varianceScaling {
	if sds <= 0 {
		panic("given number of standard deviations to truncate after is <= 0")
	}

	v.trunc = sds
	return v
}

func (v *varianceScaling) TypeString() string {
	return "variance-scaling"
}

func (v *varianceScaling) Set(r *rng.Stream, fanIn int, ws []float64) {
	sd := math.Sqrt(v.factor / float64(fanIn))
	for i := range ws {
		for {
			x := r.Normal()
			if x >= -v.trunc && x <= v.trunc {
				ws[i] = x * sd
				break
			}
		}
	}
}
