// Package initializers provides the ways of setting the starting weights of a layer. Every
// Initializer draws from an rng.Stream, so that initialization is reproducible from a seed.
package initializers

import (
	"math"

	"github.com/jpuck/neural-network/rng"
)

// Initializer sets the given weights of a unit with fanIn inputs. It is also used to set biases,
// in which case ws holds the bias of every unit in the layer.
type Initializer interface {
	TypeString() string

	Set(r *rng.Stream, fanIn int, ws []float64)
}

// DefaultFloor is the smallest deviation used by the default Initializer.
const DefaultFloor float64 = 0.3

// Default returns the Initializer used by layers unless told otherwise: ScaledNormal(DefaultFloor).
func Default() Initializer {
	return ScaledNormal(DefaultFloor)
}

type scaledNormal struct {
	floor float64
}

// ScaledNormal returns an Initializer that draws from a normal distribution centered on zero,
// with deviation max(floor, 1/fanIn). The floor keeps layers with small fan-in from starting with
// vanishingly small weights.
func ScaledNormal(floor float64) scaledNormal {
	return scaledNormal{floor}
}

func (s scaledNormal) TypeString() string {
	return "scaled-normal"
}

// Dev returns the deviation used for a unit with the given fan-in.
func (s scaledNormal) Dev(fanIn int) float64 {
	return math.Max(s.floor, 1/float64(fanIn))
}

func (s scaledNormal) Set(r *rng.Stream, fanIn int, ws []float64) {
	dev := s.Dev(fanIn)
	for i := range ws {
		ws[i] = dev * r.Normal()
	}
}
