package initializers

import (
	"math"
	"testing"

	"github.com/jpuck/neural-network/rng"
)

func TestScaledNormalDev(t *testing.T) {
	s := ScaledNormal(DefaultFloor)
	cases := map[int]float64{1: 1, 2: 0.5, 3: 1.0 / 3, 4: 0.3, 16: 0.3, 1000: 0.3}
	for fanIn, want := range cases {
		if got := s.Dev(fanIn); got != want {
			t.Errorf("Dev(%d) = %v, want %v", fanIn, got, want)
		}
	}
}

func TestScaledNormalDrawsFromStream(t *testing.T) {
	ws := make([]float64, 10)
	ScaledNormal(DefaultFloor).Set(rng.New(42), 16, ws)

	r := rng.New(42)
	for i, w := range ws {
		if want := 0.3 * r.Normal(); w != want {
			t.Errorf("weight %d = %v, want %v", i, w, want)
		}
	}
}

func TestUniformBounds(t *testing.T) {
	ws := make([]float64, 1000)
	Uniform(0.5, -0.5).Set(rng.New(1), 3, ws)
	for i, w := range ws {
		if w < -0.5 || w >= 0.5 || w == 0 {
			t.Fatalf("weight %d = %v outside [-0.5, 0.5)", i, w)
		}
	}
}

func TestVarianceScalingTruncates(t *testing.T) {
	ws := make([]float64, 2000)
	He().Set(rng.New(9), 8, ws)

	sd := math.Sqrt(2.0 / 8)
	for i, w := range ws {
		if math.Abs(w) > 2*sd {
			t.Fatalf("weight %d = %v beyond two deviations", i, w)
		}
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		init, err := ByName(name)
		if err != nil {
			t.Fatal(err)
		}

		ws := make([]float64, 5)
		init.Set(rng.New(3), 4, ws)
		for i, w := range ws {
			if w == 0 || math.IsNaN(w) {
				t.Errorf("%s: weight %d = %v", name, i, w)
			}
		}
	}

	if _, err := ByName("zeros"); err == nil {
		t.Errorf("ByName accepted an unknown initializer")
	}
}
