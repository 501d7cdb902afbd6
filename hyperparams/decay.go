package hyperparams

import (
	"sync"
)

type decay struct {
	base, factor float64

	mux sync.Mutex
	// rates[e] is the value at epoch e, built by repeated multiplication
	rates []float64
}

// Decay returns a HyperParameter that starts at base and is multiplied by factor after every
// epoch. Values are the running product base * factor * factor ..., not base * factor^epoch, so
// they match a schedule that multiplies the rate in place once per epoch bit for bit.
func Decay(base, factor float64) *decay {
	return &decay{base: base, factor: factor, rates: []float64{base}}
}

func (d *decay) TypeString() string {
	return "decay"
}

func (d *decay) Value(epoch int) float64 {
	if epoch < 0 {
		epoch = 0
	}

	d.mux.Lock()
	defer d.mux.Unlock()

	for len(d.rates) <= epoch {
		d.rates = append(d.rates, d.rates[len(d.rates)-1]*d.factor)
	}
	return d.rates[epoch]
}
