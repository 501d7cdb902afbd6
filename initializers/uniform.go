package initializers

import (
	"github.com/jpuck/neural-network/rng"
)

type uniform struct {
	lower, upper float64
}

// Uniform returns an Initializer that draws uniformly from [lower, upper). Zero weights are
// discarded and drawn again.
func Uniform(lower, upper float64) *uniform {
	if lower > upper {
		lower, upper = upper, lower
	}

	return &uniform{lower, upper}
}

func (u *uniform) TypeString() string {
	return "uniform"
}

func (u *uniform) Set(r *rng.Stream, fanIn int, ws []float64) {
	if u.lower == u.upper {
		for i := range ws {
			ws[i] = u.lower
		}
		return
	}

	for i := 0; i < len(ws); i++ {
		w := r.Uniform()*(u.upper-u.lower) + u.lower
		if w == 0 {
			// discard and try again
			i--
			continue
		}
		ws[i] = w
	}
}
