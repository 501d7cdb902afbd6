package rng

import (
	"math"
)

func squaredMagnitude(v []float64) float64 {
	var mag float64
	for _, x := range v {
		mag += x * x
	}

	return mag
}

func scale(v []float64, f float64) {
	for i := range v {
		v[i] *= f
	}
}

// Spherical fills out with a point drawn uniformly from the surface of a len(out)-dimensional unit
// sphere.
func (s *Stream) Spherical(out []float64) {
	if len(out) == 0 {
		return
	}

	for {
		for i := range out {
			out[i] = s.Normal()
		}

		// a zero vector can't be normalized; draw a fresh one
		if mag := squaredMagnitude(out); mag > 0 {
			scale(out, 1/math.Sqrt(mag))
			return
		}
	}
}

// SphericalVolume fills out with a point drawn uniformly from within the volume of a
// len(out)-dimensional unit sphere.
func (s *Stream) SphericalVolume(out []float64) {
	if len(out) == 0 {
		return
	}

	s.Spherical(out)
	scale(out, math.Pow(s.Uniform(), 1/float64(len(out))))
}

// Cubical fills out with a point drawn uniformly from within a len(out)-dimensional unit cube.
func (s *Stream) Cubical(out []float64) {
	for i := range out {
		out[i] = s.Uniform()
	}
}
